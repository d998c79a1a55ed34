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

// Matcher is the uniform contract every runtime expression fulfills.
// Success means the matcher consumed some (possibly zero) bytes at the
// current offset, returning the produced nodes and the advanced state.
// Failure (ok == false) means the matcher declined; it must leave no
// caller-visible trace.
type Matcher interface {
	Apply(State) (Result, bool)
}

// Result is the outcome of a successful match: the nodes produced by
// this match, in scan order, plus the advanced parse state. Primitive
// matchers produce exactly one anonymous leaf; predicates produce no
// nodes; combinators concatenate their children's node lists.
type Result struct {
	Nodes []*gopeg.Node
	State State
}

// resultAt is a zero-node success at the given state.
func resultAt(s State) Result {
	return Result{State: s}
}

// Rule is a named grammar rule in function form. Generated parsers and
// the meta-grammar bootstrap consist of functions of this type, one per
// rule, mutually recursive through R.
type Rule func(State) (Result, bool)

// wrapEx adapts a rule function into expression position.
type wrapEx struct {
	rule Rule
}

func (w wrapEx) Apply(s State) (Result, bool) {
	return w.rule(s)
}

// R lets a named rule function be used wherever a Matcher is expected.
func R(rule Rule) Matcher {
	return wrapEx{rule: rule}
}

// Apply performs the named-rule step: it applies the inner matcher and,
// on success, wraps the returned node list into a single parent node
// carrying the rule's name. A lone anonymous node is renamed in place
// instead of being nested (see gopeg.Parent).
func Apply(name string, m Matcher, s State) (Result, bool) {
	result, ok := m.Apply(s)
	if !ok {
		return Result{}, false
	}
	node := gopeg.Parent(name, result.Nodes)
	return Result{Nodes: []*gopeg.Node{node}, State: result.State}, true
}
