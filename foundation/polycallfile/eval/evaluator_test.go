// File: evaluator_test.go
// Title: Evaluator Unit Tests
// Description: Tests literal evaluation, arithmetic with float promotion,
//              string concatenation, epsilon equality, logical operators
//              without short-circuiting, reference resolution and the
//              strictness policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial test implementation

package eval

import (
	"strings"
	"testing"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
)

func number(text string) *ast.Node     { return ast.New(ast.KindValueNumber, text) }
func str(text string) *ast.Node        { return ast.New(ast.KindValueString, text) }
func boolean(text string) *ast.Node    { return ast.New(ast.KindValueBoolean, text) }
func nullLit() *ast.Node               { return ast.New(ast.KindValueNull, "null") }
func identifier(name string) *ast.Node { return ast.New(ast.KindIdentifier, name) }

func binary(op string, left, right *ast.Node) *ast.Node {
	node := ast.New(ast.KindExprBinary, op)
	node.AddChildren(left, right)
	return node
}

func unary(op string, operand *ast.Node) *ast.Node {
	node := ast.New(ast.KindExprUnary, op)
	node.AddChild(operand)
	return node
}

func newStatement(name string, value *ast.Node) *ast.Node {
	statement := ast.New(ast.KindStatement, name)
	statement.AddChild(value)
	return statement
}

// newBoundTree builds the reference tree used by resolution tests:
// net { port = 8080, host = "localhost" }, timeout = 30, alias = net.port
func newBoundTree() *ast.Node {
	root := ast.NewRoot()
	net := ast.New(ast.KindSection, "net")
	net.AddChild(newStatement("port", number("8080")))
	net.AddChild(newStatement("host", str("localhost")))
	root.AddChild(net)
	root.AddChild(newStatement("timeout", number("30")))
	root.AddChild(newStatement("alias", identifier("net.port")))
	return root
}

func evaluate(t *testing.T, node *ast.Node) Value {
	t.Helper()
	value, err := NewEvaluator(nil, Options{}).Evaluate(node)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	return value
}

func assertValue(t *testing.T, got Value, wantType ValueType, want string) {
	t.Helper()
	if got.Type != wantType {
		t.Errorf("value type = %v, want %v", got.Type, wantType)
	}
	if got.AsString() != want {
		t.Errorf("value = %q, want %q", got.AsString(), want)
	}
}

func TestEvaluator_Literals(t *testing.T) {
	tests := []struct {
		name     string
		node     *ast.Node
		wantType ValueType
		want     string
	}{
		{"Null", nullLit(), ValueTypeNull, "null"},
		{"True", boolean("true"), ValueTypeBoolean, "true"},
		{"False", boolean("false"), ValueTypeBoolean, "false"},
		{"Integer", number("42"), ValueTypeInteger, "42"},
		{"Float", number("2.5"), ValueTypeFloat, "2.5"},
		{"Unit suffix", number("250ms"), ValueTypeInteger, "250"},
		{"String", str("hello"), ValueTypeString, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValue(t, evaluate(t, tt.node), tt.wantType, tt.want)
		})
	}
}

func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		node     *ast.Node
		wantType ValueType
		want     string
	}{
		{"Integer addition", binary("+", number("1"), number("2")), ValueTypeInteger, "3"},
		{"Float promotion", binary("+", number("1"), number("2.0")), ValueTypeFloat, "3"},
		{"String concatenation left", binary("+", str("a"), number("1")), ValueTypeString, "a1"},
		{"String concatenation right", binary("+", number("1"), str("b")), ValueTypeString, "1b"},
		{"Subtraction", binary("-", number("5"), number("3")), ValueTypeInteger, "2"},
		{"Float subtraction", binary("-", number("5.5"), number("0.5")), ValueTypeFloat, "5"},
		{"Multiplication", binary("*", number("4"), number("3")), ValueTypeInteger, "12"},
		{"Float multiplication", binary("*", number("2"), number("2.5")), ValueTypeFloat, "5"},
		{"Division is always float", binary("/", number("6"), number("3")), ValueTypeFloat, "2"},
		{"Fractional division", binary("/", number("7"), number("2")), ValueTypeFloat, "3.5"},
		{"Modulo", binary("%", number("7"), number("3")), ValueTypeInteger, "1"},
		{"Modulo coerces floats", binary("%", number("7.9"), number("3")), ValueTypeInteger, "1"},
		{"Unary minus integer", unary("-", number("5")), ValueTypeInteger, "-5"},
		{"Unary minus keeps float", unary("-", number("2.5")), ValueTypeFloat, "-2.5"},
		{"Boolean in arithmetic", binary("+", boolean("true"), number("1")), ValueTypeInteger, "2"},
		{"Null in arithmetic", binary("+", nullLit(), number("1")), ValueTypeInteger, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValue(t, evaluate(t, tt.node), tt.wantType, tt.want)
		})
	}
}

func TestEvaluator_DivisionByZero(t *testing.T) {
	ev := NewEvaluator(nil, Options{})

	value, err := ev.Evaluate(binary("/", number("5"), number("0")))
	if err == nil {
		t.Fatal("division by zero succeeded")
	}
	if !strings.Contains(err.Error(), "Division by zero") {
		t.Errorf("error = %q, want division message", err.Error())
	}
	if !pcerror.HasCode(err, pcerror.CodeEvalError) {
		t.Errorf("error code = %v, want %v", pcerror.GetCode(err), pcerror.CodeEvalError)
	}
	if !value.IsNull() {
		t.Errorf("value = %v alongside error, want null", value)
	}
	if ev.LastError() == nil {
		t.Error("LastError() not recorded")
	}

	if _, err := ev.Evaluate(binary("/", number("5"), number("0.0"))); err == nil {
		t.Error("division by float zero succeeded")
	}
}

func TestEvaluator_ModuloByZero(t *testing.T) {
	ev := NewEvaluator(nil, Options{})

	_, err := ev.Evaluate(binary("%", number("5"), number("0")))
	if err == nil {
		t.Fatal("modulo by zero succeeded")
	}
	if !strings.Contains(err.Error(), "Modulo by zero") {
		t.Errorf("error = %q, want modulo message", err.Error())
	}

	// The divisor is integer-coerced, so a fractional divisor under one
	// is zero as well
	if _, err := ev.Evaluate(binary("%", number("5"), number("0.9"))); err == nil {
		t.Error("modulo by coerced zero succeeded")
	}
}

func TestEvaluator_Equality(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want bool
	}{
		{"Equal strings", binary("==", str("a"), str("a")), true},
		{"Different strings", binary("==", str("a"), str("b")), false},
		{"Equal integers", binary("==", number("1"), number("1")), true},
		{"Different integers", binary("==", number("1"), number("2")), false},
		{"Integer and float", binary("==", number("1"), number("1.0")), true},
		{"Epsilon absorbs rounding", binary("==", binary("+", number("0.1"), number("0.2")), number("0.3")), true},
		{"Not equal", binary("!=", number("1"), number("2")), true},
		{"Not equal on equal", binary("!=", str("x"), str("x")), false},
		{"Boolean against integer", binary("==", boolean("true"), number("1")), true},
		{"Numeric string against integer", binary("==", str("1"), number("1")), true},
		{"Null against zero", binary("==", nullLit(), number("0")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := evaluate(t, tt.node)
			if value.Type != ValueTypeBoolean {
				t.Fatalf("value type = %v, want boolean", value.Type)
			}
			if value.AsBoolean() != tt.want {
				t.Errorf("result = %v, want %v", value.AsBoolean(), tt.want)
			}
		})
	}
}

func TestEvaluator_Comparisons(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want bool
	}{
		{"Less", binary("<", number("1"), number("2")), true},
		{"Less on equal", binary("<", number("2"), number("2")), false},
		{"Less or equal", binary("<=", number("2"), number("2")), true},
		{"Greater", binary(">", number("3"), number("2")), true},
		{"Greater or equal fails", binary(">=", number("2"), number("3")), false},
		{"Float comparison", binary(">", number("2.5"), number("2")), true},
		{"String ordering", binary("<", str("abc"), str("abd")), true},
		{"String ordering reversed", binary(">", str("b"), str("a")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := evaluate(t, tt.node)
			if value.AsBoolean() != tt.want {
				t.Errorf("result = %v, want %v", value.AsBoolean(), tt.want)
			}
		})
	}
}

func TestEvaluator_Logical(t *testing.T) {
	tests := []struct {
		name string
		node *ast.Node
		want bool
	}{
		{"And true", binary("&&", boolean("true"), boolean("true")), true},
		{"And false", binary("&&", boolean("true"), boolean("false")), false},
		{"Or true", binary("||", boolean("false"), boolean("true")), true},
		{"Or false", binary("||", boolean("false"), boolean("false")), false},
		{"Truthy operands", binary("&&", number("1"), str("x")), true},
		{"Zero is falsy", binary("||", number("0"), boolean("false")), false},
		{"Null is falsy", binary("||", nullLit(), number("1")), true},
		{"Not true", unary("!", boolean("true")), false},
		{"Not zero", unary("!", number("0")), true},
		{"Not empty string", unary("!", str("")), true},
		{"Not null", unary("!", nullLit()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := evaluate(t, tt.node)
			if value.Type != ValueTypeBoolean {
				t.Fatalf("value type = %v, want boolean", value.Type)
			}
			if value.AsBoolean() != tt.want {
				t.Errorf("result = %v, want %v", value.AsBoolean(), tt.want)
			}
		})
	}
}

func TestEvaluator_NoShortCircuit(t *testing.T) {
	ev := NewEvaluator(nil, Options{})

	// Both operands are always evaluated, so a failing right operand
	// surfaces even when the left already decides the result
	node := binary("&&", boolean("false"), binary("/", number("1"), number("0")))
	if _, err := ev.Evaluate(node); err == nil {
		t.Error("failing right operand of && swallowed")
	}

	node = binary("||", boolean("true"), binary("%", number("1"), number("0")))
	if _, err := ev.Evaluate(node); err == nil {
		t.Error("failing right operand of || swallowed")
	}
}

func TestEvaluator_References(t *testing.T) {
	bound := newBoundTree()
	ev := NewEvaluator(bound, Options{})

	tests := []struct {
		name     string
		node     *ast.Node
		wantType ValueType
		want     string
	}{
		{"Dotted path", identifier("net.port"), ValueTypeInteger, "8080"},
		{"String statement", identifier("net.host"), ValueTypeString, "localhost"},
		{"Top-level statement", identifier("timeout"), ValueTypeInteger, "30"},
		{"Reference chain", identifier("alias"), ValueTypeInteger, "8080"},
		{"Reference in expression", binary("<", identifier("net.port"), number("10000")), ValueTypeBoolean, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ev.Evaluate(tt.node)
			if err != nil {
				t.Fatalf("Evaluate failed: %v", err)
			}
			assertValue(t, value, tt.wantType, tt.want)
		})
	}
}

func TestEvaluator_UnresolvedStrict(t *testing.T) {
	ev := NewEvaluator(newBoundTree(), Options{})

	value, err := ev.Evaluate(identifier("missing"))
	if err == nil {
		t.Fatal("unresolved reference succeeded in strict mode")
	}
	if !strings.Contains(err.Error(), "Unresolved reference 'missing'") {
		t.Errorf("error = %q", err.Error())
	}
	if !pcerror.HasCode(err, pcerror.CodeEvalError) {
		t.Errorf("error code = %v, want %v", pcerror.GetCode(err), pcerror.CodeEvalError)
	}
	if !value.IsNull() {
		t.Errorf("value = %v alongside error", value)
	}
}

func TestEvaluator_UnresolvedLenient(t *testing.T) {
	ev := NewEvaluator(newBoundTree(), Options{Lenient: true})

	value, err := ev.Evaluate(identifier("missing"))
	if err != nil {
		t.Fatalf("lenient evaluation failed: %v", err)
	}
	if !value.IsNull() {
		t.Errorf("value = %v, want null", value)
	}

	// Lenient nulls flow through expressions
	value, err = ev.Evaluate(binary("||", identifier("missing"), boolean("true")))
	if err != nil {
		t.Fatalf("lenient expression failed: %v", err)
	}
	if !value.AsBoolean() {
		t.Error("null reference did not combine as false")
	}
}

func TestEvaluator_ChildlessReference(t *testing.T) {
	root := ast.NewRoot()
	root.AddChild(ast.New(ast.KindStatement, "empty"))

	strict := NewEvaluator(root, Options{})
	if _, err := strict.Evaluate(identifier("empty")); err == nil {
		t.Error("childless reference succeeded in strict mode")
	} else if !strings.Contains(err.Error(), "has no value") {
		t.Errorf("error = %q", err.Error())
	}

	lenient := NewEvaluator(root, Options{Lenient: true})
	if value, err := lenient.Evaluate(identifier("empty")); err != nil || !value.IsNull() {
		t.Errorf("lenient childless reference = (%v, %v), want (null, nil)", value, err)
	}
}

func TestEvaluator_ReferenceCycle(t *testing.T) {
	root := ast.NewRoot()
	root.AddChild(newStatement("a", identifier("b")))
	root.AddChild(newStatement("b", identifier("a")))

	ev := NewEvaluator(root, Options{})
	_, err := ev.Evaluate(identifier("a"))
	if err == nil {
		t.Fatal("cyclic references succeeded")
	}
	if !strings.Contains(err.Error(), "exceeded depth") {
		t.Errorf("error = %q, want depth message", err.Error())
	}
}

func TestEvaluator_SectionReference(t *testing.T) {
	ev := NewEvaluator(newBoundTree(), Options{})

	// net resolves to a section; its first child is a statement, which
	// is not evaluable
	_, err := ev.Evaluate(identifier("net"))
	if err == nil {
		t.Fatal("section reference evaluated")
	}
	if !strings.Contains(err.Error(), "Cannot evaluate") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestEvaluator_UnknownOperation(t *testing.T) {
	ev := NewEvaluator(nil, Options{})

	_, err := ev.Evaluate(binary("**", number("2"), number("3")))
	if err == nil || !strings.Contains(err.Error(), "Unknown operation '**'") {
		t.Errorf("binary error = %v, want unknown operation", err)
	}

	_, err = ev.Evaluate(unary("~", number("1")))
	if err == nil || !strings.Contains(err.Error(), "Unknown operation '~'") {
		t.Errorf("unary error = %v, want unknown operation", err)
	}
}

func TestEvaluator_Malformed(t *testing.T) {
	ev := NewEvaluator(nil, Options{})

	lonely := ast.New(ast.KindExprBinary, "+")
	lonely.AddChild(number("1"))
	if _, err := ev.Evaluate(lonely); err == nil {
		t.Error("one-legged binary expression evaluated")
	}

	if _, err := ev.Evaluate(ast.New(ast.KindExprUnary, "-")); err == nil {
		t.Error("empty unary expression evaluated")
	}

	if _, err := ev.Evaluate(nil); err == nil {
		t.Error("nil node evaluated")
	}

	if _, err := ev.Evaluate(ast.New(ast.KindValueArray, "")); err == nil {
		t.Error("array node evaluated")
	}
}

func TestEvaluator_LastErrorReset(t *testing.T) {
	ev := NewEvaluator(nil, Options{})

	if _, err := ev.Evaluate(binary("/", number("1"), number("0"))); err == nil {
		t.Fatal("division by zero succeeded")
	}
	if ev.LastError() == nil {
		t.Fatal("LastError() nil after failure")
	}

	if _, err := ev.Evaluate(number("1")); err != nil {
		t.Fatalf("literal evaluation failed: %v", err)
	}
	if ev.LastError() != nil {
		t.Errorf("LastError() = %v after success, want nil", ev.LastError())
	}
}

func BenchmarkEvaluator_Evaluate(b *testing.B) {
	bound := newBoundTree()
	ev := NewEvaluator(bound, Options{})

	// (1 + 2) * 3 == 9 && net.port < 10000
	node := binary("&&",
		binary("==", binary("*", binary("+", number("1"), number("2")), number("3")), number("9")),
		binary("<", identifier("net.port"), number("10000")))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ev.Evaluate(node); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}
