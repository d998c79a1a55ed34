/*
Package interp interprets parsed PEG grammars directly.

Where package codegen writes a grammar's matcher composition out as Go
source, this package builds the same composition in memory: the syntax
tree of a grammar is compiled into a live matcher graph over the peg
runtime, with rule references resolved by name at apply time. A
reference to an undefined rule is not an error at build time — the
lookup simply won't resolve, and the reference fails to match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package interp

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/grammar"
	"github.com/npillmayer/gopeg/peg"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopeg.interp'.
func tracer() tracing.Trace {
	return tracing.Select("gopeg.interp")
}

// Grammar is an interpreted PEG grammar, ready to parse input. The
// entry rule is the first rule defined in the grammar source.
type Grammar struct {
	rules map[string]peg.Matcher
	entry string
}

// NewGrammar parses src with the meta-grammar and compiles the
// resulting tree into an interpreted grammar.
func NewGrammar(src []byte) (*Grammar, error) {
	root, ok := grammar.Parse(src)
	if !ok {
		return nil, fmt.Errorf("not a valid PEG grammar")
	}
	return FromTree(root)
}

// FromTree compiles an already-parsed grammar tree.
func FromTree(root *gopeg.Node) (*Grammar, error) {
	g := &Grammar{rules: make(map[string]peg.Matcher)}
	for _, child := range root.Children {
		if child.Name != "Definition" {
			continue
		}
		if err := g.addDefinition(child); err != nil {
			return nil, err
		}
	}
	if g.entry == "" {
		return nil, fmt.Errorf("grammar defines no rules")
	}
	tracer().Debugf("compiled %d grammar rules, entry %q", len(g.rules), g.entry)
	return g, nil
}

// EntryRule returns the name of the grammar's first rule.
func (g *Grammar) EntryRule() string {
	return g.entry
}

// Parse applies the grammar's entry rule to input. The returned root
// node is named after that rule. A partial match still returns a tree;
// grammars reject trailing input with a final '!.'.
func (g *Grammar) Parse(input []byte) (*gopeg.Node, bool) {
	result, ok := g.lookup(g.entry).Apply(peg.NewState(input))
	if !ok {
		return nil, false
	}
	return result.Nodes[0], true
}

func (g *Grammar) addDefinition(node *gopeg.Node) error {
	if len(node.Children) != 3 {
		return fmt.Errorf("malformed Definition node at %s", node.Span)
	}
	name := identifierName(node.Children[0])
	expr, err := g.matcherFor(node.Children[2])
	if err != nil {
		return err
	}
	if node.Children[1].Name == "FUSEARROW" {
		expr = peg.Fuse(expr)
	}
	g.rules[name] = expr
	if g.entry == "" {
		g.entry = name
	}
	return nil
}

// lookup returns the apply-time reference to a named rule, including
// the node-labeling step.
func (g *Grammar) lookup(name string) peg.Matcher {
	return ruleRef{grammar: g, name: name}
}

// ruleRef defers rule resolution to apply time.
type ruleRef struct {
	grammar *Grammar
	name    string
}

func (r ruleRef) Apply(s peg.State) (peg.Result, bool) {
	expr, ok := r.grammar.rules[r.name]
	if !ok {
		tracer().Debugf("reference to undefined rule %q", r.name)
		return peg.Result{}, false
	}
	return peg.Apply(r.name, expr, s)
}

// matcherFor builds the matcher graph for one expression node, by the
// same node-name dispatch the code generator uses.
func (g *Grammar) matcherFor(node *gopeg.Node) (peg.Matcher, error) {
	switch node.Name {
	case "Expression":
		return g.nested(node, "Sequence", peg.Or)
	case "Sequence":
		return g.nested(node, "Prefix", peg.Seq)
	case "Prefix":
		return g.prefixMatcher(node)
	case "Suffix":
		return g.suffixMatcher(node)
	case "Primary":
		return g.primaryMatcher(node)
	case "Literal":
		text, err := stringContent(node)
		if err != nil {
			return nil, err
		}
		return peg.LitBytes(text), nil
	case "Class":
		text, err := stringContent(node)
		if err != nil {
			return nil, err
		}
		// the escaped square brackets revert to their literal shape
		text = bytes.Replace(text, []byte(`\]`), []byte(`]`), -1)
		text = bytes.Replace(text, []byte(`\[`), []byte(`[`), -1)
		return peg.NewCharClass(text), nil
	case "DOT":
		return peg.Dot, nil
	}
	return nil, fmt.Errorf("unexpected grammar node %q at %s", node.Name, node.Span)
}

// nested handles Expression and Sequence nodes: a single inner node
// passes through, several combine with the given constructor.
func (g *Grammar) nested(node *gopeg.Node, childName string, combine func(...peg.Matcher) peg.Matcher) (peg.Matcher, error) {
	var inner []peg.Matcher
	for _, child := range node.Children {
		if child.Name != childName {
			continue
		}
		m, err := g.matcherFor(child)
		if err != nil {
			return nil, err
		}
		inner = append(inner, m)
	}
	switch len(inner) {
	case 0:
		return nil, fmt.Errorf("empty %s node at %s", node.Name, node.Span)
	case 1:
		return inner[0], nil
	}
	return combine(inner...), nil
}

func (g *Grammar) prefixMatcher(node *gopeg.Node) (peg.Matcher, error) {
	if len(node.Children) == 1 {
		return g.matcherFor(node.Children[0])
	}
	if len(node.Children) != 2 {
		return nil, fmt.Errorf("malformed Prefix node at %s", node.Span)
	}
	inner, err := g.matcherFor(node.Children[1])
	if err != nil {
		return nil, err
	}
	switch node.Children[0].Name {
	case "AND":
		return peg.And(inner), nil
	case "NOT":
		return peg.Not(inner), nil
	case "FUSE":
		return peg.Fuse(inner), nil
	}
	return nil, fmt.Errorf("bad prefix operator %q", node.Children[0].Name)
}

func (g *Grammar) suffixMatcher(node *gopeg.Node) (peg.Matcher, error) {
	if len(node.Children) == 1 {
		return g.matcherFor(node.Children[0])
	}
	if len(node.Children) != 2 {
		return nil, fmt.Errorf("malformed Suffix node at %s", node.Span)
	}
	inner, err := g.matcherFor(node.Children[0])
	if err != nil {
		return nil, err
	}
	switch node.Children[1].Name {
	case "QUESTION":
		return peg.Opt(inner), nil
	case "STAR":
		return peg.Star(inner), nil
	case "PLUS":
		return peg.Plus(inner), nil
	}
	return nil, fmt.Errorf("bad suffix operator %q", node.Children[1].Name)
}

func (g *Grammar) primaryMatcher(node *gopeg.Node) (peg.Matcher, error) {
	if len(node.Children) > 0 && node.Children[0].Name == "Identifier" {
		return g.lookup(identifierName(node.Children[0])), nil
	}
	for _, child := range node.Children {
		switch child.Name {
		case "OPEN", "CLOSE", "Spacing":
			continue
		}
		return g.matcherFor(child)
	}
	return nil, fmt.Errorf("empty Primary node at %s", node.Span)
}

// stringContent extracts and decodes the contents of a Literal or Class
// node: delimiters stripped, escape sequences translated.
func stringContent(node *gopeg.Node) ([]byte, error) {
	full := textContent(node)
	if len(full) < 2 {
		return nil, fmt.Errorf("malformed %s node at %s", node.Name, node.Span)
	}
	return grammar.Unescape([]byte(full[1 : len(full)-1]))
}

// textContent reconstructs the matched text beneath a node, skipping
// trailing spacing and comments.
func textContent(node *gopeg.Node) string {
	if node.IsLeaf() {
		return string(node.Data)
	}
	if node.Name == "Spacing" || node.Name == "Comment" {
		return ""
	}
	text := ""
	for _, child := range node.Children {
		text += textContent(child)
	}
	return text
}

func identifierName(node *gopeg.Node) string {
	if name := node.Find("IdentName"); name != nil {
		return string(name.MatchedData())
	}
	return textContent(node)
}
