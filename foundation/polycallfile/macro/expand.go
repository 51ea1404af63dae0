// File: expand.go
// Title: Macro Expansion
// Description: Rewrites syntax trees by substituting macro references
//              with deep clones of their definitions. Substituted subtrees
//              are processed again so macros may reference other macros;
//              a depth limit turns self-referential definitions into
//              errors instead of endless loops.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial expansion implementation

package macro

import (
	"fmt"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	pclog "github.com/msto63/polycall/foundation/core/log"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
)

// DefaultMaxExpansionDepth bounds substitution chains; a macro whose
// definition leads back to itself hits this limit
const DefaultMaxExpansionDepth = 64

// ExpandOptions configures expansion behavior
type ExpandOptions struct {
	// Logger for expansion operations (uses default if nil)
	Logger *pclog.Logger

	// MaxDepth limits how many substitutions one reference may trigger
	MaxDepth int
}

// Expander substitutes macro references in syntax trees
type Expander struct {
	table    *Table
	logger   *pclog.Logger
	maxDepth int
	count    int
}

// NewExpander creates an expander over the given table
func NewExpander(table *Table, opts ExpandOptions) *Expander {
	if opts.Logger == nil {
		opts.Logger = pclog.GetDefault()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxExpansionDepth
	}

	return &Expander{
		table:    table,
		logger:   opts.Logger.WithField("component", "polycallfile-macro"),
		maxDepth: opts.MaxDepth,
	}
}

// Expand rewrites the tree in place, replacing every identifier that
// names a registered macro with a deep clone of its expansion. Each
// clone is processed again at the same position, so definitions may
// reference other macros. depth counts substitutions along one chain,
// not tree levels; sibling references each start fresh.
func (e *Expander) Expand(root *ast.Node) error {
	if root == nil {
		return nil
	}

	e.count = 0
	if _, err := e.expandNode(root, 0); err != nil {
		return err
	}

	if e.count > 0 {
		e.logger.Debug("macros expanded", pclog.Fields{"substitutions": e.count})
	}
	return nil
}

// Count returns the number of substitutions performed by the last
// Expand call
func (e *Expander) Count() int {
	return e.count
}

func (e *Expander) expandNode(node *ast.Node, depth int) (*ast.Node, error) {
	if node.Kind == ast.KindIdentifier && node.Parent != nil {
		def := e.table.Find(node.Name)
		if def == nil {
			return node, nil
		}
		if depth >= e.maxDepth {
			return nil, pcerror.NewMacro(fmt.Sprintf(
				"Expansion of macro '%s' exceeded depth %d", node.Name, e.maxDepth))
		}

		replacement := def.Expansion.Clone()
		node.Parent.ReplaceChild(node, replacement)
		e.count++
		return e.expandNode(replacement, depth+1)
	}

	for _, child := range node.Children {
		if _, err := e.expandNode(child, depth); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// ExpandAST expands root against table with default limits
func ExpandAST(table *Table, root *ast.Node) error {
	return NewExpander(table, ExpandOptions{}).Expand(root)
}

// CollectDefinitions registers every define directive reachable in the
// tree and detaches the directive nodes afterwards, so the tree handed
// to expansion carries no macro residue. Definitions register in
// document order; a duplicate name aborts the pass. Returns how many
// definitions were collected.
func CollectDefinitions(table *Table, root *ast.Node) (int, error) {
	if root == nil {
		return 0, nil
	}

	var defines []*ast.Node
	for _, directive := range ast.Collect(root, ast.KindDirective) {
		if directive.Name == "define" {
			defines = append(defines, directive)
		}
	}

	for _, directive := range defines {
		if len(directive.Children) != 2 || directive.Children[0].Kind != ast.KindIdentifier {
			return 0, pcerror.NewMacro(fmt.Sprintf(
				"Malformed define directive at %s", directive.Pos))
		}

		name := directive.Children[0].Name
		if err := table.RegisterNode(name, directive.Children[1].Clone()); err != nil {
			return 0, err
		}
		directive.Detach()
	}

	return len(defines), nil
}
