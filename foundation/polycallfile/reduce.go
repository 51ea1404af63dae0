// File: reduce.go
// Title: Conditional Reduction
// Description: Folds if directives into plain configuration by evaluating
//              their conditions against the surrounding tree and splicing
//              the selected branch into place.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial conditional reduction implementation

package polycallfile

import (
	"fmt"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	pclog "github.com/msto63/polycall/foundation/core/log"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
	"github.com/msto63/polycall/foundation/polycallfile/eval"
)

// ReduceOptions configures conditional reduction
type ReduceOptions struct {
	// Logger receives reduction logs; defaults to the package default
	Logger *pclog.Logger

	// Lenient lets unresolved references inside conditions evaluate to
	// Null instead of failing the reduction
	Lenient bool
}

// Reduce folds every if directive in the tree into the branch selected
// by its condition. Conditions are evaluated against the tree itself, so
// a statement anywhere in the configuration can steer a conditional
// block. The walk repeats until no if directive remains, which resolves
// nested conditionals exposed by an outer splice. An evaluation failure
// aborts the reduction and leaves the tree partially reduced.
//
// for directives are left in place; loop unrolling is not implemented.
// import directives are likewise untouched, their resolution belongs to
// the caller.
func Reduce(root *ast.Node, opts ReduceOptions) error {
	if root == nil {
		return nil
	}

	logger := opts.Logger
	if logger == nil {
		logger = pclog.GetDefault()
	}
	logger = logger.WithField("component", "polycallfile-reducer")

	evaluator := eval.NewEvaluator(root, eval.Options{
		Logger:  opts.Logger,
		Lenient: opts.Lenient,
	})

	reduced := 0
	for {
		directive := findDirective(root, "if")
		if directive == nil {
			break
		}
		if err := reduceIf(directive, evaluator, logger); err != nil {
			return err
		}
		reduced++
	}

	for _, directive := range ast.Collect(root, ast.KindDirective) {
		if directive.Name == "for" {
			logger.Warn("for directive left in place, loop unrolling is not implemented",
				pclog.Fields{"position": directive.Pos.String()})
		}
	}

	if reduced > 0 {
		logger.Debug("conditionals reduced", pclog.Fields{"reduced": reduced})
	}
	return nil
}

// reduceIf resolves one if directive. Children are the condition, the
// then-block and an optional else-block; the chosen block's contents
// replace the directive in its parent so the surrounding siblings keep
// their relative order.
func reduceIf(directive *ast.Node, evaluator *eval.Evaluator, logger *pclog.Logger) error {
	if len(directive.Children) < 2 || directive.Parent == nil {
		return pcerror.NewEval(fmt.Sprintf("Malformed if directive at %s", directive.Pos))
	}

	condition := directive.Children[0]
	value, err := evaluator.Evaluate(condition)
	if err != nil {
		return err
	}

	parent := directive.Parent
	switch {
	case value.AsBoolean():
		parent.Splice(directive, directive.Children[1].Children...)
		logger.Debug("conditional kept then branch", pclog.Fields{
			"position": directive.Pos.String(),
		})
	case len(directive.Children) > 2:
		parent.Splice(directive, directive.Children[2].Children...)
		logger.Debug("conditional kept else branch", pclog.Fields{
			"position": directive.Pos.String(),
		})
	default:
		parent.Splice(directive)
		logger.Debug("conditional removed", pclog.Fields{
			"position": directive.Pos.String(),
		})
	}
	return nil
}

// findDirective returns the first directive with the given name in
// document order, or nil
func findDirective(node *ast.Node, name string) *ast.Node {
	if node == nil {
		return nil
	}
	if node.Kind == ast.KindDirective && node.Name == name {
		return node
	}
	for _, child := range node.Children {
		if found := findDirective(child, name); found != nil {
			return found
		}
	}
	return nil
}
