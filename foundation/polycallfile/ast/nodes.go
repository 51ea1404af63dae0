// File: nodes.go
// Title: Polycallfile AST Node Definitions
// Description: Defines the parent-linked abstract syntax tree used by the
//              Polycallfile parser, macro expander and evaluator. Every
//              construct of the language is represented by the same Node
//              type, discriminated by a NodeKind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial AST implementation

package ast

import (
	"fmt"
	"strings"
)

// NodeKind discriminates the role a Node plays in the tree
type NodeKind int

const (
	// KindSection is a named block of statements; the tree root is a
	// section named RootName
	KindSection NodeKind = iota
	// KindStatement is a key/value assignment; the value is the sole child
	KindStatement
	// KindValueString is a string literal with quotes stripped
	KindValueString
	// KindValueNumber is a numeric literal kept verbatim, including any
	// unit suffix such as "100ms" or "5GB"
	KindValueNumber
	// KindValueBoolean is the literal true or false
	KindValueBoolean
	// KindValueNull is the literal null
	KindValueNull
	// KindValueArray is an ordered list of value children
	KindValueArray
	// KindDirective is an @-construct; the name carries the directive
	// keyword without the leading @
	KindDirective
	// KindIdentifier is a bare or dotted name used as a value, a macro
	// reference or an expression operand
	KindIdentifier
	// KindComment is a # line comment
	KindComment
	// KindExprBinary is a binary expression; the name is the operator and
	// the children are the left and right operands
	KindExprBinary
	// KindExprUnary is a unary expression; the name is the operator and
	// the sole child is the operand
	KindExprUnary
	// KindError marks a subtree the parser could not make sense of
	KindError
)

// String returns a human-readable kind name
func (k NodeKind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindStatement:
		return "statement"
	case KindValueString:
		return "string"
	case KindValueNumber:
		return "number"
	case KindValueBoolean:
		return "boolean"
	case KindValueNull:
		return "null"
	case KindValueArray:
		return "array"
	case KindDirective:
		return "directive"
	case KindIdentifier:
		return "identifier"
	case KindComment:
		return "comment"
	case KindExprBinary:
		return "binary"
	case KindExprUnary:
		return "unary"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// RootName is the name of the synthetic section at the top of every tree
const RootName = "root"

// Position locates a node in the source text
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// String returns the position in line:column format
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is a single vertex of the syntax tree. Children are owned and
// ordered; Parent is a non-owning backlink maintained by the tree
// operations and never followed when cloning or releasing a subtree.
type Node struct {
	Kind     NodeKind
	Name     string
	Parent   *Node
	Children []*Node
	Pos      Position
}

// New creates a detached node of the given kind and name
func New(kind NodeKind, name string) *Node {
	return &Node{Kind: kind, Name: name}
}

// NewAt creates a detached node carrying a source position
func NewAt(kind NodeKind, name string, pos Position) *Node {
	return &Node{Kind: kind, Name: name, Pos: pos}
}

// NewRoot creates the synthetic root section every parse result hangs off
func NewRoot() *Node {
	return New(KindSection, RootName)
}

// String returns a short descriptor of the node for logs and diagnostics
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Name == "" {
		return n.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", n.Kind, n.Name)
}

// IsRoot reports whether the node is the top of its tree
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// IsValue reports whether the node represents a literal value
func (n *Node) IsValue() bool {
	switch n.Kind {
	case KindValueString, KindValueNumber, KindValueBoolean, KindValueNull, KindValueArray:
		return true
	default:
		return false
	}
}

// AddChild appends a child and rebinds its parent link
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AddChildren appends several children in order
func (n *Node) AddChildren(children ...*Node) {
	for _, child := range children {
		n.AddChild(child)
	}
}

// Value returns the first child or nil. For statements this is the
// assigned value, for unary expressions the operand.
func (n *Node) Value() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// FindChild returns the first direct child with the given name. The
// match is case-sensitive; nil means no child matched.
func (n *Node) FindChild(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// FindPath resolves a dot-separated path such as "server.net.port"
// relative to the receiver. The empty path resolves to the receiver
// itself; any missing segment yields nil.
func (n *Node) FindPath(path string) *Node {
	if path == "" {
		return n
	}
	current := n
	for _, segment := range strings.Split(path, ".") {
		current = current.FindChild(segment)
		if current == nil {
			return nil
		}
	}
	return current
}

// IndexOf returns the position of child among the direct children, or -1
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// RemoveChild unlinks a direct child and clears its parent pointer.
// Returns false when the node is not a direct child.
func (n *Node) RemoveChild(child *Node) bool {
	i := n.IndexOf(child)
	if i < 0 {
		return false
	}
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	child.Parent = nil
	return true
}

// ReplaceChild swaps one direct child for another in place
func (n *Node) ReplaceChild(old, repl *Node) bool {
	i := n.IndexOf(old)
	if i < 0 {
		return false
	}
	repl.Parent = n
	n.Children[i] = repl
	old.Parent = nil
	return true
}

// Splice replaces one direct child with zero or more nodes at the same
// position, preserving the order of the surrounding siblings
func (n *Node) Splice(old *Node, repl ...*Node) bool {
	i := n.IndexOf(old)
	if i < 0 {
		return false
	}
	for _, r := range repl {
		r.Parent = n
	}
	old.Parent = nil
	updated := make([]*Node, 0, len(n.Children)-1+len(repl))
	updated = append(updated, n.Children[:i]...)
	updated = append(updated, repl...)
	updated = append(updated, n.Children[i+1:]...)
	n.Children = updated
	return true
}

// Detach removes the node from its parent, leaving it as the root of its
// own subtree. Detaching a root is a no-op.
func (n *Node) Detach() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Clone returns a deep copy of the subtree. The copy's root has no
// parent; all internal parent links point inside the copy.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		Kind: n.Kind,
		Name: n.Name,
		Pos:  n.Pos,
	}
	for _, child := range n.Children {
		clone.AddChild(child.Clone())
	}
	return clone
}

// Equal reports whether two subtrees match in kind, name and child
// structure. Positions and parent links are ignored, so a printed and
// re-parsed tree compares equal to the tree it was printed from.
func (n *Node) Equal(other *Node) bool {
	return equalNodes(n, other, false)
}

// EqualIgnoringComments is Equal with comment nodes excluded from the
// comparison on both sides.
func (n *Node) EqualIgnoringComments(other *Node) bool {
	return equalNodes(n, other, true)
}

func equalNodes(a, b *Node, skipComments bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Name != b.Name {
		return false
	}
	i, j := 0, 0
	for {
		if skipComments {
			for i < len(a.Children) && a.Children[i].Kind == KindComment {
				i++
			}
			for j < len(b.Children) && b.Children[j].Kind == KindComment {
				j++
			}
		}
		if i >= len(a.Children) || j >= len(b.Children) {
			return i >= len(a.Children) && j >= len(b.Children)
		}
		if !equalNodes(a.Children[i], b.Children[j], skipComments) {
			return false
		}
		i++
		j++
	}
}

// Path returns the dotted path from the root to this node, skipping the
// synthetic root segment. Nodes without a name contribute their kind.
func (n *Node) Path() string {
	var segments []string
	for current := n; current != nil && !current.IsRoot(); current = current.Parent {
		name := current.Name
		if name == "" {
			name = current.Kind.String()
		}
		segments = append(segments, name)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, ".")
}

// Validate checks the structural invariants of a single node. Child
// subtrees are not descended into; use ValidateTree for whole trees.
func (n *Node) Validate() error {
	for _, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%s has a nil child", n)
		}
		if child.Parent != n {
			return fmt.Errorf("%s has child %s with a broken parent link", n, child)
		}
	}
	switch n.Kind {
	case KindSection:
		if n.Name == "" {
			return fmt.Errorf("section without a name at %s", n.Pos)
		}
	case KindStatement:
		if n.Name == "" {
			return fmt.Errorf("statement without a name at %s", n.Pos)
		}
		if len(n.Children) != 1 {
			return fmt.Errorf("statement %q must have exactly one value, has %d", n.Name, len(n.Children))
		}
	case KindDirective:
		switch n.Name {
		case "define", "import", "if", "for":
		default:
			return fmt.Errorf("unknown directive %q at %s", n.Name, n.Pos)
		}
	case KindExprBinary:
		if len(n.Children) != 2 {
			return fmt.Errorf("binary expression %q must have two operands, has %d", n.Name, len(n.Children))
		}
	case KindExprUnary:
		if len(n.Children) != 1 {
			return fmt.Errorf("unary expression %q must have one operand, has %d", n.Name, len(n.Children))
		}
	case KindIdentifier:
		if n.Name == "" {
			return fmt.Errorf("identifier without a name at %s", n.Pos)
		}
	}
	return nil
}
