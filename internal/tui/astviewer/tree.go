// ============================================================================
// polycall - Polyglotte RPC-Plattform
// ============================================================================
//
// Package:     astviewer
// Description: Tree flattening and labeling for the AST viewer TUI
// Author:      msto63
// Created:     2026-08-17
// License:     MIT
// ============================================================================

package astviewer

import (
	"fmt"

	"github.com/msto63/polycall/foundation/polycallfile/ast"
)

// row is one visible line of the tree: a node together with its indent
// depth and fold state
type row struct {
	node       *ast.Node
	depth      int
	expandable bool
	expanded   bool
}

// flattenTree walks the tree in document order and returns the rows that
// are visible under the given fold state. Children of a collapsed node
// are skipped entirely.
func flattenTree(root *ast.Node, collapsed map[*ast.Node]bool) []row {
	if root == nil {
		return nil
	}

	rows := make([]row, 0, ast.Count(root))
	var walk func(node *ast.Node, depth int)
	walk = func(node *ast.Node, depth int) {
		expandable := len(node.Children) > 0
		expanded := expandable && !collapsed[node]
		rows = append(rows, row{
			node:       node,
			depth:      depth,
			expandable: expandable,
			expanded:   expanded,
		})
		if expanded {
			for _, child := range node.Children {
				walk(child, depth+1)
			}
		}
	}
	walk(root, 0)
	return rows
}

// collapseBelowRoot folds every inner node except the root itself, so the
// viewer shows the top-level entries only
func collapseBelowRoot(root *ast.Node, collapsed map[*ast.Node]bool) {
	ast.WalkFunc(root, func(node *ast.Node) bool {
		if node != root && len(node.Children) > 0 {
			collapsed[node] = true
		}
		return true
	})
}

// nodeLabel returns the display text for a node, without styling
func nodeLabel(node *ast.Node) string {
	switch node.Kind {
	case ast.KindValueString:
		return fmt.Sprintf("%q", node.Name)
	case ast.KindValueNull:
		return "null"
	case ast.KindDirective:
		return "@" + node.Name
	case ast.KindValueArray:
		return fmt.Sprintf("[%d Elemente]", len(node.Children))
	default:
		return node.Name
	}
}
