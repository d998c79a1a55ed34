package gopeg

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// noName is the display name for anonymous nodes.
const noName = "<none>"

// --- Syntax-tree nodes ------------------------------------------------

// Node is a typed syntax-tree node. Nodes come in two flavors: leaf
// nodes carry a byte slice borrowed from the parse input, parent nodes
// carry child nodes. The parse input has to stay alive for as long as
// the tree is in use; leaf contents are never copied.
type Node struct {
	// Name of the node. It is the name of the grammar rule that produced
	// the node, or empty for anonymous leaves produced by primitive
	// matchers.
	Name string

	// Span covers the input range this node matched, as byte (not char)
	// offsets into the parse input, half-open.
	Span Span

	// Data is the matched input slice for leaf nodes, nil for parents.
	Data []byte

	// Children are the sub-nodes for parent nodes, nil for leaves.
	// Children appear in left-to-right scan order.
	Children []*Node
}

// Leaf creates a leaf node with an empty name.
func Leaf(start, end int, data []byte) *Node {
	if data == nil {
		data = []byte{}
	}
	return &Node{Span: MakeSpan(start, end), Data: data}
}

// Parent creates a node with the provided name and makes it a parent of
// the provided children. In case children holds exactly one node with an
// empty name, no new node is allocated: the child is renamed in place
// and returned. This keeps single-production rules from nesting.
func Parent(name string, children []*Node) *Node {
	if len(children) == 1 && children[0].Name == "" {
		child := children[0]
		child.Name = name
		return child
	}
	var span Span
	if len(children) > 0 {
		span = MakeSpan(children[0].Span.From(), children[len(children)-1].Span.To())
	}
	if children == nil {
		children = []*Node{}
	}
	return &Node{Name: name, Span: span, Children: children}
}

// IsLeaf tells if a node carries matched input data rather than children.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// DisplayName returns the node name if set, or "<none>" if unset.
func (n *Node) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	return noName
}

// PreOrder traverses the tree rooted at the node in pre-order. visitor
// is called on every node; traversal stops when visitor returns false.
func (n *Node) PreOrder(visitor func(*Node) bool) {
	n.preOrder(visitor)
}

func (n *Node) preOrder(visitor func(*Node) bool) bool {
	if !visitor(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.preOrder(visitor) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given name in pre-order, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.PreOrder(func(node *Node) bool {
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// MatchedData concatenates the data slices of all leaves beneath the
// node, recovering the full input substring the node matched.
func (n *Node) MatchedData() []byte {
	if n.IsLeaf() {
		return n.Data
	}
	var data []byte
	n.PreOrder(func(node *Node) bool {
		if node.IsLeaf() {
			data = append(data, node.Data...)
		}
		return true
	})
	if data == nil {
		data = []byte{}
	}
	return data
}

// --- Tree dump --------------------------------------------------------

// TreeString renders the tree rooted at the node as an indented dump:
// one node per line, indented by depth, with name, half-open byte span
// and, for leaves, the matched text.
func (n *Node) TreeString() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat(" ", depth))
	if n.IsLeaf() {
		fmt.Fprintf(sb, "Node {name: %s, start: %d, end: %d, contents: %s}\n",
			n.DisplayName(), n.Span.From(), n.Span.To(), contentsString(n.Data))
	} else {
		fmt.Fprintf(sb, "Node {name: %s, start: %d, end: %d}\n",
			n.DisplayName(), n.Span.From(), n.Span.To())
		for _, child := range n.Children {
			child.dump(sb, depth+1)
		}
	}
}

func contentsString(data []byte) string {
	if utf8.Valid(data) {
		return fmt.Sprintf("%q", string(data))
	}
	return fmt.Sprintf("%v", data)
}

func (n *Node) String() string {
	return n.TreeString()
}
