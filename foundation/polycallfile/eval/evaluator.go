// File: evaluator.go
// Title: Expression Evaluator
// Description: Evaluates expression subtrees against a bound syntax tree.
//              Literals map to typed values, identifiers resolve through
//              dotted-path lookup, and operators follow C-like semantics
//              with float promotion and epsilon equality. Both operands of
//              the logical operators are always evaluated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial evaluator implementation

package eval

import (
	"fmt"
	"math"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	pclog "github.com/msto63/polycall/foundation/core/log"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
)

// floatEpsilon is the tolerance for float equality
const floatEpsilon = 1e-10

// maxResolveDepth bounds identifier chains; statements referencing each
// other in a cycle fail instead of recursing forever
const maxResolveDepth = 64

// Options configures evaluator behavior
type Options struct {
	// Logger for evaluation operations (uses default if nil)
	Logger *pclog.Logger

	// Lenient makes unresolved references evaluate to null instead of
	// failing; the default is strict
	Lenient bool
}

// Evaluator computes typed values for expression subtrees. References
// resolve against the tree bound at construction time.
type Evaluator struct {
	boundAST  *ast.Node
	strict    bool
	lastError error
	logger    *pclog.Logger
}

// NewEvaluator creates an evaluator resolving references against bound
func NewEvaluator(bound *ast.Node, opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = pclog.GetDefault()
	}

	return &Evaluator{
		boundAST: bound,
		strict:   !opts.Lenient,
		logger:   opts.Logger.WithField("component", "polycallfile-eval"),
	}
}

// Evaluate computes the value of an expression subtree. The previous
// run's error is cleared first; a failing run records its error for
// LastError and returns null alongside it.
func (ev *Evaluator) Evaluate(node *ast.Node) (Value, error) {
	ev.lastError = nil

	value, err := ev.eval(node, 0)
	if err != nil {
		ev.lastError = err
		ev.logger.Debug("evaluation failed", pclog.Fields{"error": err.Error()})
		return NullValue(), err
	}
	return value, nil
}

// LastError returns the error recorded by the most recent Evaluate call
func (ev *Evaluator) LastError() error {
	return ev.lastError
}

// eval dispatches on node kind. depth counts identifier resolutions
// along the current chain.
func (ev *Evaluator) eval(node *ast.Node, depth int) (Value, error) {
	if node == nil {
		return NullValue(), pcerror.NewEval("Cannot evaluate empty expression")
	}

	switch node.Kind {
	case ast.KindValueNull:
		return NullValue(), nil
	case ast.KindValueBoolean:
		return BooleanValue(node.Name == "true"), nil
	case ast.KindValueNumber:
		return numberValue(node.Name), nil
	case ast.KindValueString:
		return StringValue(node.Name), nil
	case ast.KindIdentifier:
		return ev.resolve(node, depth)
	case ast.KindExprBinary:
		return ev.evalBinary(node, depth)
	case ast.KindExprUnary:
		return ev.evalUnary(node, depth)
	default:
		return NullValue(), pcerror.NewEval(fmt.Sprintf("Cannot evaluate %s node", node.Kind))
	}
}

// resolve looks an identifier up in the bound tree and evaluates the
// located node's first child, so a statement reference yields its value
func (ev *Evaluator) resolve(node *ast.Node, depth int) (Value, error) {
	if depth >= maxResolveDepth {
		return NullValue(), pcerror.NewEval(fmt.Sprintf(
			"Reference chain for '%s' exceeded depth %d", node.Name, maxResolveDepth))
	}
	if ev.boundAST == nil {
		return ev.unresolved(fmt.Sprintf("Unresolved reference '%s'", node.Name))
	}

	target := ev.boundAST.FindPath(node.Name)
	if target == nil {
		return ev.unresolved(fmt.Sprintf("Unresolved reference '%s'", node.Name))
	}

	definition := target.Value()
	if definition == nil {
		return ev.unresolved(fmt.Sprintf("Reference '%s' has no value", node.Name))
	}

	return ev.eval(definition, depth+1)
}

// unresolved applies the strictness policy to a failed lookup
func (ev *Evaluator) unresolved(message string) (Value, error) {
	if ev.strict {
		return NullValue(), pcerror.NewEval(message)
	}
	return NullValue(), nil
}

func (ev *Evaluator) evalBinary(node *ast.Node, depth int) (Value, error) {
	if len(node.Children) != 2 {
		return NullValue(), pcerror.NewEval("Malformed binary expression")
	}

	// Both operands are evaluated before the operator is applied; the
	// logical operators do not short-circuit
	left, err := ev.eval(node.Children[0], depth)
	if err != nil {
		return NullValue(), err
	}
	right, err := ev.eval(node.Children[1], depth)
	if err != nil {
		return NullValue(), err
	}

	switch node.Name {
	case "+":
		return add(left, right), nil
	case "-":
		if isFloatPair(left, right) {
			return FloatValue(left.AsFloat() - right.AsFloat()), nil
		}
		return IntegerValue(left.AsInteger() - right.AsInteger()), nil
	case "*":
		if isFloatPair(left, right) {
			return FloatValue(left.AsFloat() * right.AsFloat()), nil
		}
		return IntegerValue(left.AsInteger() * right.AsInteger()), nil
	case "/":
		divisor := right.AsFloat()
		if divisor == 0 {
			return NullValue(), pcerror.NewEval("Division by zero")
		}
		return FloatValue(left.AsFloat() / divisor), nil
	case "%":
		divisor := right.AsInteger()
		if divisor == 0 {
			return NullValue(), pcerror.NewEval("Modulo by zero")
		}
		return IntegerValue(left.AsInteger() % divisor), nil
	case "==":
		return BooleanValue(equals(left, right)), nil
	case "!=":
		return BooleanValue(!equals(left, right)), nil
	case "<", "<=", ">", ">=":
		return BooleanValue(compare(node.Name, left, right)), nil
	case "&&":
		return BooleanValue(left.AsBoolean() && right.AsBoolean()), nil
	case "||":
		return BooleanValue(left.AsBoolean() || right.AsBoolean()), nil
	default:
		return NullValue(), pcerror.NewEval(fmt.Sprintf("Unknown operation '%s'", node.Name))
	}
}

func (ev *Evaluator) evalUnary(node *ast.Node, depth int) (Value, error) {
	if len(node.Children) != 1 {
		return NullValue(), pcerror.NewEval("Malformed unary expression")
	}

	operand, err := ev.eval(node.Children[0], depth)
	if err != nil {
		return NullValue(), err
	}

	switch node.Name {
	case "-":
		if operand.Type == ValueTypeFloat {
			return FloatValue(-operand.AsFloat()), nil
		}
		return IntegerValue(-operand.AsInteger()), nil
	case "!":
		return BooleanValue(!operand.AsBoolean()), nil
	default:
		return NullValue(), pcerror.NewEval(fmt.Sprintf("Unknown operation '%s'", node.Name))
	}
}

// add concatenates when either operand is a string, otherwise it is
// numeric addition with float promotion
func add(left, right Value) Value {
	if left.Type == ValueTypeString || right.Type == ValueTypeString {
		return StringValue(left.AsString() + right.AsString())
	}
	if isFloatPair(left, right) {
		return FloatValue(left.AsFloat() + right.AsFloat())
	}
	return IntegerValue(left.AsInteger() + right.AsInteger())
}

// equals compares as strings when both operands are strings, with an
// epsilon when either is a float, and as integers otherwise
func equals(left, right Value) bool {
	if left.Type == ValueTypeString && right.Type == ValueTypeString {
		return left.AsString() == right.AsString()
	}
	if isFloatPair(left, right) {
		return math.Abs(left.AsFloat()-right.AsFloat()) < floatEpsilon
	}
	return left.AsInteger() == right.AsInteger()
}

// compare orders operands with the same type dispatch as equals but
// without the epsilon
func compare(op string, left, right Value) bool {
	if left.Type == ValueTypeString && right.Type == ValueTypeString {
		l, r := left.AsString(), right.AsString()
		switch op {
		case "<":
			return l < r
		case "<=":
			return l <= r
		case ">":
			return l > r
		default:
			return l >= r
		}
	}

	if isFloatPair(left, right) {
		l, r := left.AsFloat(), right.AsFloat()
		switch op {
		case "<":
			return l < r
		case "<=":
			return l <= r
		case ">":
			return l > r
		default:
			return l >= r
		}
	}

	l, r := left.AsInteger(), right.AsInteger()
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	default:
		return l >= r
	}
}

// isFloatPair reports whether an operation on the pair promotes to float
func isFloatPair(left, right Value) bool {
	return left.Type == ValueTypeFloat || right.Type == ValueTypeFloat
}
