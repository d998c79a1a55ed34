package grammar

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Escape-sequence decoding for grammar literals and character classes.
// See:
//   http://en.wikipedia.org/wiki/Escape_sequences_in_C
// No question mark escape supported because there are no trigraphs in
// PEG.

// Unescape translates the bytes between the delimiters of a grammar
// literal or class into the byte sequence they denote. Recognized
// forms, longest match first:
//
//   \uXXXX  (4 hex digits)   the codepoint, encoded as UTF-8
//   \xXX    (2 hex digits)   the single byte of that value
//   \ooo    (3 octal digits) the single byte of that value
//   \a \b \f \n \r \t \v \0 \' \" \\   the canonical single byte
//
// Any other \c passes through as the two bytes '\' and c; non-escape
// bytes are copied verbatim. Malformed digits after a prefix leave the
// prefix unchanged. A \u or \ooo sequence with well-formed digits that
// denote no valid codepoint or byte is a grammar-author mistake and
// returns an error.
func Unescape(input []byte) ([]byte, error) {
	final := make([]byte, 0, len(input))
	index := 0
	for index < len(input) {
		if input[index] != '\\' {
			final = append(final, input[index])
			index++
			continue
		}
		past := len(input) - index - 1

		if past >= 5 && input[index+1] == 'u' &&
			isHex(input[index+2]) && isHex(input[index+3]) &&
			isHex(input[index+4]) && isHex(input[index+5]) {
			var err error
			final, err = appendCodepoint(final, input[index+2:index+6])
			if err != nil {
				return nil, err
			}
			index += 6
			continue
		}

		if past >= 3 && input[index+1] == 'x' &&
			isHex(input[index+2]) && isHex(input[index+3]) {
			value, err := strconv.ParseUint(string(input[index+2:index+4]), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid hex escape sequence: \\x%s", input[index+2:index+4])
			}
			final = append(final, byte(value))
			index += 4
			continue
		}

		if past >= 3 && isOctal(input[index+1]) && isOctal(input[index+2]) && isOctal(input[index+3]) {
			value, err := strconv.ParseUint(string(input[index+1:index+4]), 8, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid octal escape sequence: \\%s", input[index+1:index+4])
			}
			final = append(final, byte(value))
			index += 4
			continue
		}

		if past >= 1 {
			final = appendEscapedByte(final, input[index+1])
			index += 2
			continue
		}

		// lone trailing backslash
		final = append(final, '\\')
		index++
	}
	return final, nil
}

// UnescapeString is Unescape over strings.
func UnescapeString(input string) (string, error) {
	decoded, err := Unescape([]byte(input))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func isOctal(b byte) bool {
	return b >= '0' && b <= '7'
}

func isHex(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func appendCodepoint(final []byte, digits []byte) ([]byte, error) {
	value, err := strconv.ParseUint(string(digits), 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid unicode escape sequence: \\u%s", digits)
	}
	cp := rune(value)
	if !utf8.ValidRune(cp) {
		return nil, fmt.Errorf("invalid unicode code point: %x", value)
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], cp)
	return append(final, buf[:n]...), nil
}

func appendEscapedByte(final []byte, b byte) []byte {
	switch b {
	case 'a':
		return append(final, 0x07)
	case 'b':
		return append(final, 0x08)
	case 'f':
		return append(final, 0x0c)
	case 'n':
		return append(final, '\n')
	case 'r':
		return append(final, '\r')
	case 't':
		return append(final, '\t')
	case 'v':
		return append(final, 0x0b)
	case '0':
		return append(final, 0x00)
	case '\'':
		return append(final, '\'')
	case '"':
		return append(final, '"')
	case '\\':
		return append(final, '\\')
	}
	return append(final, '\\', b)
}
