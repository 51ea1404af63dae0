// File: visitor.go
// Title: Polycallfile AST Traversal
// Description: Implements pre-order traversal over the parent-linked tree
//              together with the common visitors used across the language
//              pipeline: node collection, tree dumps for inspection and
//              whole-tree validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial traversal implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor is invoked for every node during a Walk. Returning false stops
// the descent into the node's children; siblings are still visited.
type Visitor interface {
	Visit(node *Node) bool
}

// VisitorFunc adapts a plain function to the Visitor interface
type VisitorFunc func(node *Node) bool

// Visit calls the wrapped function
func (f VisitorFunc) Visit(node *Node) bool {
	return f(node)
}

// Walk traverses the subtree in pre-order, parents before children,
// siblings in document order
func Walk(v Visitor, node *Node) {
	if node == nil {
		return
	}
	if !v.Visit(node) {
		return
	}
	for _, child := range node.Children {
		Walk(v, child)
	}
}

// WalkFunc traverses the subtree with a plain function
func WalkFunc(node *Node, fn func(node *Node) bool) {
	Walk(VisitorFunc(fn), node)
}

// CollectorVisitor gathers nodes of selected kinds during a walk
type CollectorVisitor struct {
	kinds map[NodeKind]bool
	Nodes []*Node
}

// NewCollectorVisitor creates a collector for the given kinds. With no
// kinds every node is collected.
func NewCollectorVisitor(kinds ...NodeKind) *CollectorVisitor {
	cv := &CollectorVisitor{Nodes: make([]*Node, 0)}
	if len(kinds) > 0 {
		cv.kinds = make(map[NodeKind]bool, len(kinds))
		for _, kind := range kinds {
			cv.kinds[kind] = true
		}
	}
	return cv
}

// Visit records matching nodes and always descends
func (cv *CollectorVisitor) Visit(node *Node) bool {
	if cv.kinds == nil || cv.kinds[node.Kind] {
		cv.Nodes = append(cv.Nodes, node)
	}
	return true
}

// Reset clears the collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Nodes = cv.Nodes[:0]
}

// Collect returns all nodes of the given kinds in document order
func Collect(node *Node, kinds ...NodeKind) []*Node {
	visitor := NewCollectorVisitor(kinds...)
	Walk(visitor, node)
	return visitor.Nodes
}

// Count returns the number of nodes in the subtree, the root included
func Count(node *Node) int {
	total := 0
	WalkFunc(node, func(*Node) bool {
		total++
		return true
	})
	return total
}

// Depth returns the height of the subtree; a leaf has depth 1
func Depth(node *Node) int {
	if node == nil {
		return 0
	}
	deepest := 0
	for _, child := range node.Children {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// DumpVisitor renders the tree as an indented kind/name listing, one
// node per line. The output is meant for inspection and debugging, not
// for re-parsing; use the Printer for canonical source output.
type DumpVisitor struct {
	buffer strings.Builder
	root   *Node
}

// NewDumpVisitor creates a dump visitor
func NewDumpVisitor() *DumpVisitor {
	return &DumpVisitor{}
}

// String returns the rendered dump
func (dv *DumpVisitor) String() string {
	return dv.buffer.String()
}

// Reset clears the internal buffer
func (dv *DumpVisitor) Reset() {
	dv.buffer.Reset()
	dv.root = nil
}

// Visit writes one line per node, indented by tree depth
func (dv *DumpVisitor) Visit(node *Node) bool {
	if dv.root == nil {
		dv.root = node
	}
	depth := 0
	for current := node; current != dv.root && current.Parent != nil; current = current.Parent {
		depth++
	}
	for i := 0; i < depth; i++ {
		dv.buffer.WriteString("  ")
	}
	if node.Name == "" {
		dv.buffer.WriteString(node.Kind.String())
	} else {
		dv.buffer.WriteString(fmt.Sprintf("%s %q", node.Kind, node.Name))
	}
	dv.buffer.WriteString("\n")
	return true
}

// Dump renders the subtree as an indented kind/name listing
func Dump(node *Node) string {
	visitor := NewDumpVisitor()
	Walk(visitor, node)
	return visitor.String()
}

// ValidateTree validates every node in the subtree and returns all
// violations found, in document order
func ValidateTree(node *Node) []error {
	var errs []error
	WalkFunc(node, func(n *Node) bool {
		if err := n.Validate(); err != nil {
			errs = append(errs, err)
		}
		return true
	})
	return errs
}
