package peg

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "bytes"

// --- Literal ----------------------------------------------------------

type literal struct {
	text []byte
}

// Lit matches the given text verbatim. On success it produces one
// anonymous leaf spanning exactly those bytes. Lit("") succeeds on any
// input, consuming nothing.
func Lit(text string) Matcher {
	return literal{text: []byte(text)}
}

// LitBytes is Lit for non-textual byte sequences.
func LitBytes(text []byte) Matcher {
	return literal{text: text}
}

func (l literal) Apply(s State) (Result, bool) {
	if len(s.input) < len(l.text) || !bytes.Equal(s.input[:len(l.text)], l.text) {
		return Result{}, false
	}
	return s.leafTo(s.offset + len(l.text))
}

// --- Dot --------------------------------------------------------------

type dot struct{}

// Dot consumes exactly one character: a whole UTF-8 codepoint when the
// input starts with one, a single raw octet otherwise. It fails only on
// empty input.
var Dot Matcher = dot{}

func (dot) Apply(s State) (Result, bool) {
	if _, ok := readCodepoint(s.input); ok {
		numFollowing, _ := bytesFollowing(s.input[0])
		return s.leafTo(s.offset + numFollowing + 1)
	}
	if len(s.input) > 0 {
		return s.leafTo(s.offset + 1)
	}
	return Result{}, false
}
