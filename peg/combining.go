package peg

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Combinator matchers. All of them hold references to inner matchers
// and are pure with respect to the input buffer: on failure the
// caller's state is untouched, no partial consumption is visible.

// --- Sequence ---------------------------------------------------------

type sequence struct {
	exprs []Matcher
}

// Seq applies each expression in order, threading the state, and
// concatenates the node lists. Any failure fails the whole sequence.
func Seq(exprs ...Matcher) Matcher {
	return sequence{exprs: exprs}
}

func (q sequence) Apply(s State) (Result, bool) {
	final := resultAt(s)
	for _, expr := range q.exprs {
		result, ok := expr.Apply(final.State)
		if !ok {
			return Result{}, false
		}
		final.State = result.State
		final.Nodes = append(final.Nodes, result.Nodes...)
	}
	return final, true
}

// --- Ordered choice ---------------------------------------------------

type orderedChoice struct {
	exprs []Matcher
}

// Or tries each expression in order and commits to the first success.
// Later alternatives are never tried once one matched. It fails iff all
// alternatives fail.
func Or(exprs ...Matcher) Matcher {
	return orderedChoice{exprs: exprs}
}

func (o orderedChoice) Apply(s State) (Result, bool) {
	for _, expr := range o.exprs {
		if result, ok := expr.Apply(s); ok {
			return result, true
		}
	}
	return Result{}, false
}

// --- Optional ---------------------------------------------------------

type optional struct {
	expr Matcher
}

// Opt tries the expression; on failure it succeeds anyway with zero
// nodes and an unchanged state.
func Opt(expr Matcher) Matcher {
	return optional{expr: expr}
}

func (o optional) Apply(s State) (Result, bool) {
	if result, ok := o.expr.Apply(s); ok {
		return result, true
	}
	return resultAt(s), true
}

// --- Repetition -------------------------------------------------------

type star struct {
	expr Matcher
}

// Star applies the expression repeatedly and greedily until it fails;
// it always succeeds. An iteration that succeeds without consuming
// input terminates the repetition, so that nullable inner expressions
// cannot loop forever.
func Star(expr Matcher) Matcher {
	return star{expr: expr}
}

func (r star) Apply(s State) (Result, bool) {
	final := resultAt(s)
	for {
		result, ok := r.expr.Apply(final.State)
		if !ok {
			break
		}
		progressed := result.State.offset > final.State.offset
		final.State = result.State
		final.Nodes = append(final.Nodes, result.Nodes...)
		if !progressed {
			break
		}
	}
	return final, true
}

type plus struct {
	expr Matcher
}

// Plus is Star with at least one required iteration: it succeeds iff
// the first application of the expression succeeds.
func Plus(expr Matcher) Matcher {
	return plus{expr: expr}
}

func (r plus) Apply(s State) (Result, bool) {
	final := resultAt(s)
	numMatches := 0
	for {
		result, ok := r.expr.Apply(final.State)
		if !ok {
			break
		}
		progressed := result.State.offset > final.State.offset
		final.State = result.State
		final.Nodes = append(final.Nodes, result.Nodes...)
		numMatches++
		if !progressed {
			break
		}
	}
	if numMatches == 0 {
		return Result{}, false
	}
	return final, true
}

// --- Predicates -------------------------------------------------------

type andPredicate struct {
	expr Matcher
}

// And is the syntactic and-predicate &e: it succeeds iff the expression
// matches, but consumes nothing and produces no nodes.
func And(expr Matcher) Matcher {
	return andPredicate{expr: expr}
}

func (p andPredicate) Apply(s State) (Result, bool) {
	if _, ok := p.expr.Apply(s); !ok {
		return Result{}, false
	}
	return resultAt(s), true
}

type notPredicate struct {
	expr Matcher
}

// Not is the syntactic not-predicate !e: it succeeds iff the expression
// does not match, consuming nothing and producing no nodes.
func Not(expr Matcher) Matcher {
	return notPredicate{expr: expr}
}

func (p notPredicate) Apply(s State) (Result, bool) {
	if _, ok := p.expr.Apply(s); ok {
		return Result{}, false
	}
	return resultAt(s), true
}

// --- Fuse -------------------------------------------------------------

type fuse struct {
	expr Matcher
}

// Fuse applies the expression, discards the node structure it built and
// replaces it with a single anonymous leaf covering the exact input
// span the expression consumed. Lexical rules use it to collapse their
// internals into one textual leaf.
func Fuse(expr Matcher) Matcher {
	return fuse{expr: expr}
}

func (f fuse) Apply(s State) (Result, bool) {
	result, ok := f.expr.Apply(s)
	if !ok {
		return Result{}, false
	}
	return s.leafTo(result.State.offset)
}
