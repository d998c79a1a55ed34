package peg

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// CharClass matches one character against a set of singleton codepoints
// and inclusive codepoint ranges, parsed once from the square-bracket
// contents of a grammar class expression.
//
// Matching first attempts to decode a UTF-8 codepoint at the current
// position; if that fails, or the decoded codepoint is not a member,
// the first input byte is re-tested as a raw octet. The fallback lets
// the same class expression match both text and binary content, with
// non-UTF-8 bytes (e.g. 0xFF) listed as single-byte members.
type CharClass struct {
	singles *treeset.Set    // singleton codepoints (rune members)
	ranges  *arraylist.List // charRange members, in given order
}

// charRange is an inclusive [lo, hi] codepoint range. Degenerate ranges
// (hi < lo) are retained as given and never match.
type charRange struct {
	lo, hi rune
}

// Class parses the inner content of square brackets, so for [a-z], send
// "a-z". Whenever three consecutive codepoints are X, '-', Y, they form
// the range [X, Y]; any other codepoint is a singleton. A leading or
// trailing '-' is a singleton '-'.
func Class(contents string) *CharClass {
	return NewCharClass([]byte(contents))
}

// NewCharClass is Class over raw bytes, for classes listing non-UTF-8
// octets.
func NewCharClass(contents []byte) *CharClass {
	chars := scanCodepoints(contents)
	cc := &CharClass{
		singles: treeset.NewWith(utils.RuneComparator),
		ranges:  arraylist.New(),
	}
	for i := 0; i < len(chars); {
		if i+2 < len(chars) && chars[i+1] == '-' {
			cc.ranges.Add(charRange{lo: chars[i], hi: chars[i+2]})
			i += 3
			continue
		}
		cc.singles.Add(chars[i])
		i++
	}
	return cc
}

// scanCodepoints reads the class contents as codepoints where possible,
// falling back to one raw octet per undecodable byte.
func scanCodepoints(input []byte) []rune {
	var out []rune
	for i := 0; i < len(input); {
		if numFollowing, ok := bytesFollowing(input[i]); ok && numFollowing > 0 {
			if cp, ok := readCodepoint(input[i:]); ok {
				out = append(out, cp)
				i += numFollowing + 1
				continue
			}
		}
		out = append(out, rune(input[i]))
		i++
	}
	return out
}

// Matches tests class membership of a single codepoint (or raw octet
// stored as a codepoint).
func (cc *CharClass) Matches(ch rune) bool {
	if cc.singles.Contains(ch) {
		return true
	}
	match := false
	cc.ranges.Each(func(_ int, value interface{}) {
		r := value.(charRange)
		if ch >= r.lo && ch <= r.hi {
			match = true
		}
	})
	return match
}

func (cc *CharClass) applyToUTF8(s State) (Result, bool) {
	cp, ok := readCodepoint(s.input)
	if !ok || !cc.Matches(cp) {
		return Result{}, false
	}
	numFollowing, _ := bytesFollowing(s.input[0])
	return s.leafTo(s.offset + numFollowing + 1)
}

func (cc *CharClass) applyToBytes(s State) (Result, bool) {
	if len(s.input) == 0 || !cc.Matches(rune(s.input[0])) {
		return Result{}, false
	}
	return s.leafTo(s.offset + 1)
}

func (cc *CharClass) Apply(s State) (Result, bool) {
	if result, ok := cc.applyToUTF8(s); ok {
		return result, true
	}
	return cc.applyToBytes(s)
}
