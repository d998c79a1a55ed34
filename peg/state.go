package peg

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"github.com/npillmayer/gopeg"
)

// State is an immutable cursor into the parse input: the unconsumed
// tail of the input plus the absolute byte offset of that tail within
// the whole input. Matchers never mutate a state; on success they
// return a new one whose input is a suffix of the original buffer.
// A state is a slice header plus an int, copying it freely is cheap.
type State struct {
	input  []byte // unconsumed input from the "main" slice
	offset int    // offset of input[0] from the start of the "main" slice
}

// NewState creates a parse state at the beginning of input.
func NewState(input []byte) State {
	return State{input: input}
}

// Rest returns the unconsumed input.
func (s State) Rest() []byte {
	return s.input
}

// Offset returns the byte position of the unconsumed input within the
// whole parse input.
func (s State) Offset() int {
	return s.offset
}

// AtEnd tells if the state has no input left.
func (s State) AtEnd() bool {
	return len(s.input) == 0
}

// AdvanceTo returns a state positioned at absolute offset newOffset.
// The new state's input is carved from the same underlying buffer.
func (s State) AdvanceTo(newOffset int) State {
	return State{
		input:  s.input[newOffset-s.offset:],
		offset: newOffset,
	}
}

// SliceTo returns the input bytes between the current position and
// absolute offset newOffset.
func (s State) SliceTo(newOffset int) []byte {
	return s.input[:newOffset-s.offset]
}

// leafTo builds the canonical primitive-matcher result: one anonymous
// leaf covering the input up to absolute offset newOffset, plus the
// advanced state.
func (s State) leafTo(newOffset int) (Result, bool) {
	node := gopeg.Leaf(s.offset, newOffset, s.SliceTo(newOffset))
	return Result{Nodes: []*gopeg.Node{node}, State: s.AdvanceTo(newOffset)}, true
}
