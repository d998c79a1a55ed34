package codegen

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gopeg"
	"github.com/npillmayer/gopeg/grammar"
)

// Generate emits the complete source of a parser for the grammar tree,
// ready to be compiled against the runtime: the prelude (parse entry
// point and printer main, with the first defined rule substituted as
// entry rule) followed by one rule function per definition.
func Generate(root *gopeg.Node) (string, error) {
	entry, err := FirstRuleName(root)
	if err != nil {
		return "", err
	}
	rules, err := CodeForNode(root)
	if err != nil {
		return "", err
	}
	fingerprint, err := Fingerprint(root)
	if err != nil {
		return "", err
	}
	tracer().Infof("generating parser with entry rule %q", entry)
	source := strings.Replace(prelude, fingerprintPlaceholder, fingerprint, 1)
	source = strings.Replace(source, entryPlaceholder, entry, -1)
	return source + "\n" + rules, nil
}

// FirstRuleName returns the name of the first rule defined in the
// grammar tree; it becomes the generated parser's entry rule.
func FirstRuleName(root *gopeg.Node) (string, error) {
	name := root.Find("IdentName")
	if name == nil {
		return "", fmt.Errorf("grammar tree holds no rule definition")
	}
	return strings.TrimSpace(string(name.MatchedData())), nil
}

// CodeForNode translates one syntax-tree node into target source by
// node-name dispatch. Unknown node names pass through to their
// children's output.
func CodeForNode(node *gopeg.Node) (string, error) {
	switch node.Name {
	case "Grammar":
		return grammarOutput(node)
	case "Definition":
		return definitionOutput(node)
	case "Expression":
		return expressionOutput(node)
	case "Sequence":
		return sequenceOutput(node)
	case "Prefix":
		return prefixOutput(node)
	case "Suffix":
		return suffixOutput(node)
	case "Primary":
		return primaryOutput(node)
	case "Literal":
		return literalOutput(node)
	case "Class":
		return classOutput(node)
	case "DOT":
		return "peg.Dot", nil
	case "Spacing", "Comment", "Space", "EndOfLine", "EndOfFile",
		"LEFTARROW", "FUSEARROW", "SLASH", "OPEN", "CLOSE":
		return "", nil
	}
	return childrenOutput(node)
}

func childrenOutput(node *gopeg.Node) (string, error) {
	if node.IsLeaf() {
		return string(node.Data), nil
	}
	var sb strings.Builder
	for _, child := range node.Children {
		code, err := CodeForNode(child)
		if err != nil {
			return "", err
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

func grammarOutput(node *gopeg.Node) (string, error) {
	var blocks []string
	for _, child := range node.Children {
		if child.Name != "Definition" {
			continue
		}
		code, err := definitionOutput(child)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, code)
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

func definitionOutput(node *gopeg.Node) (string, error) {
	if len(node.Children) != 3 {
		return "", fmt.Errorf("malformed Definition node at %s", node.Span)
	}
	name := identifierName(node.Children[0])
	exprCode, err := CodeForNode(node.Children[2])
	if err != nil {
		return "", err
	}
	if node.Children[1].Name == "FUSEARROW" {
		exprCode = "peg.Fuse(" + exprCode + ")"
	}
	return fmt.Sprintf("func rule%s(st peg.State) (peg.Result, bool) {\n\treturn peg.Apply(%q, %s, st)\n}",
		name, name, exprCode), nil
}

func expressionOutput(node *gopeg.Node) (string, error) {
	return wrapAlternatives(node, "Sequence", "peg.Or")
}

func sequenceOutput(node *gopeg.Node) (string, error) {
	return wrapAlternatives(node, "Prefix", "peg.Seq")
}

// wrapAlternatives joins the inner-node children with the given
// constructor when there is more than one, and passes a single child
// through unwrapped.
func wrapAlternatives(node *gopeg.Node, childName, constructor string) (string, error) {
	var codes []string
	for _, child := range node.Children {
		if child.Name != childName {
			continue
		}
		code, err := CodeForNode(child)
		if err != nil {
			return "", err
		}
		codes = append(codes, code)
	}
	switch len(codes) {
	case 0:
		return childrenOutput(node)
	case 1:
		return codes[0], nil
	}
	return constructor + "(" + strings.Join(codes, ", ") + ")", nil
}

func prefixOutput(node *gopeg.Node) (string, error) {
	if len(node.Children) != 2 {
		return childrenOutput(node)
	}
	var constructor string
	switch node.Children[0].Name {
	case "AND":
		constructor = "peg.And"
	case "NOT":
		constructor = "peg.Not"
	case "FUSE":
		constructor = "peg.Fuse"
	default:
		return "", fmt.Errorf("bad prefix operator %q", node.Children[0].Name)
	}
	inner, err := CodeForNode(node.Children[1])
	if err != nil {
		return "", err
	}
	return constructor + "(" + inner + ")", nil
}

func suffixOutput(node *gopeg.Node) (string, error) {
	if len(node.Children) != 2 {
		return childrenOutput(node)
	}
	var constructor string
	switch node.Children[1].Name {
	case "QUESTION":
		constructor = "peg.Opt"
	case "STAR":
		constructor = "peg.Star"
	case "PLUS":
		constructor = "peg.Plus"
	default:
		return "", fmt.Errorf("bad suffix operator %q", node.Children[1].Name)
	}
	inner, err := CodeForNode(node.Children[0])
	if err != nil {
		return "", err
	}
	return constructor + "(" + inner + ")", nil
}

func primaryOutput(node *gopeg.Node) (string, error) {
	if len(node.Children) > 0 && node.Children[0].Name == "Identifier" {
		return "peg.R(rule" + identifierName(node.Children[0]) + ")", nil
	}
	return childrenOutput(node)
}

func literalOutput(node *gopeg.Node) (string, error) {
	return stringBasedOutput(node, "peg.Lit", false)
}

func classOutput(node *gopeg.Node) (string, error) {
	return stringBasedOutput(node, "peg.Class", true)
}

// stringBasedOutput emits a constructor call over the text content of a
// literal or class node: the delimiters are stripped, the meta-escapes
// decoded and the result re-escaped as a Go string literal. For classes
// the escaped forms of the square brackets revert to their literal
// shape, which the class parser expects.
func stringBasedOutput(node *gopeg.Node, constructor string, unescapeBrackets bool) (string, error) {
	full := textContent(node)
	if len(full) < 2 {
		return "", fmt.Errorf("malformed %s node at %s", node.Name, node.Span)
	}
	decoded, err := grammar.Unescape([]byte(full[1 : len(full)-1]))
	if err != nil {
		return "", err
	}
	content := escapeGoString(string(decoded))
	if unescapeBrackets {
		content = strings.Replace(content, `\\]`, `]`, -1)
		content = strings.Replace(content, `\\[`, `[`, -1)
	}
	return constructor + `("` + content + `")`, nil
}

// escapeGoString re-escapes decoded content into Go string-literal
// syntax: backslash, newline, tab, carriage return and double quote.
var goEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
	`"`, `\"`,
)

func escapeGoString(input string) string {
	return goEscaper.Replace(input)
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
	var sb strings.Builder
	for _, child := range node.Children {
		sb.WriteString(textContent(child))
	}
	return sb.String()
}

// identifierName extracts the rule name from an Identifier node (its
// fused name leaf, without the trailing spacing).
func identifierName(node *gopeg.Node) string {
	if name := node.Find("IdentName"); name != nil {
		return strings.TrimSpace(string(name.MatchedData()))
	}
	return strings.TrimSpace(textContent(node))
}
