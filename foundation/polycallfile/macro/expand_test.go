// File: expand_test.go
// Title: Macro Expansion Unit Tests
// Description: Tests reference substitution, chained and composite
//              expansions, the depth guard against self-reference, and
//              the definition collection pass.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial test implementation

package macro

import (
	"strings"
	"testing"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
)

func identifier(name string) *ast.Node { return ast.New(ast.KindIdentifier, name) }
func number(text string) *ast.Node     { return ast.New(ast.KindValueNumber, text) }

func newStatement(name string, value *ast.Node) *ast.Node {
	statement := ast.New(ast.KindStatement, name)
	statement.AddChild(value)
	return statement
}

func newDefine(name string, value *ast.Node) *ast.Node {
	directive := ast.New(ast.KindDirective, "define")
	directive.AddChild(ast.New(ast.KindIdentifier, name))
	directive.AddChild(value)
	return directive
}

func TestExpander_SimpleSubstitution(t *testing.T) {
	table := NewTable(Options{})
	if err := table.Register("TIMEOUT", "30"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	root := ast.NewRoot()
	root.AddChild(newStatement("t", identifier("TIMEOUT")))

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}

	value := root.FindPath("t").Value()
	if value == nil {
		t.Fatal("statement lost its value")
	}
	if value.Kind != ast.KindValueNumber || value.Name != "30" {
		t.Errorf("value = %v, want number(30)", value)
	}
	if value.Parent == nil || value.Parent.Name != "t" {
		t.Error("substitution broke the parent link")
	}
}

func TestExpander_ChainedMacros(t *testing.T) {
	table := NewTable(Options{})
	if err := table.RegisterNode("ALIAS", identifier("TARGET")); err != nil {
		t.Fatalf("RegisterNode failed: %v", err)
	}
	if err := table.Register("TARGET", "30"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	root := ast.NewRoot()
	root.AddChild(newStatement("t", identifier("ALIAS")))

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}

	value := root.FindPath("t").Value()
	if value.Kind != ast.KindValueNumber || value.Name != "30" {
		t.Errorf("value = %v, want number(30) through the chain", value)
	}
}

func TestExpander_SelfReference(t *testing.T) {
	table := NewTable(Options{})
	if err := table.RegisterNode("LOOP", identifier("LOOP")); err != nil {
		t.Fatalf("RegisterNode failed: %v", err)
	}

	root := ast.NewRoot()
	root.AddChild(newStatement("x", identifier("LOOP")))

	err := ExpandAST(table, root)
	if err == nil {
		t.Fatal("self-referential expansion succeeded")
	}
	if !pcerror.HasCode(err, pcerror.CodeMacroError) {
		t.Errorf("error code = %v, want %v", pcerror.GetCode(err), pcerror.CodeMacroError)
	}
	if !strings.Contains(err.Error(), "exceeded depth") {
		t.Errorf("error = %q, want depth message", err.Error())
	}
}

func TestExpander_MutualRecursion(t *testing.T) {
	table := NewTable(Options{})
	table.RegisterNode("PING", identifier("PONG"))
	table.RegisterNode("PONG", identifier("PING"))

	root := ast.NewRoot()
	root.AddChild(newStatement("x", identifier("PING")))

	if err := ExpandAST(table, root); err == nil {
		t.Fatal("mutually recursive expansion succeeded")
	}
}

func TestExpander_DepthLimit(t *testing.T) {
	table := NewTable(Options{})
	table.RegisterNode("A", identifier("B"))
	table.RegisterNode("B", identifier("C"))
	table.Register("C", "1")

	// The chain A -> B -> C -> 1 needs three substitutions
	root := ast.NewRoot()
	root.AddChild(newStatement("x", identifier("A")))
	err := NewExpander(table, ExpandOptions{MaxDepth: 2}).Expand(root)
	if err == nil {
		t.Fatal("chain deeper than the limit succeeded")
	}

	root = ast.NewRoot()
	root.AddChild(newStatement("x", identifier("A")))
	if err := NewExpander(table, ExpandOptions{MaxDepth: 3}).Expand(root); err != nil {
		t.Fatalf("chain within the limit failed: %v", err)
	}
	if v := root.FindPath("x").Value(); v.Name != "1" {
		t.Errorf("value = %v, want 1", v)
	}
}

func TestExpander_CompositeExpansion(t *testing.T) {
	table := NewTable(Options{})
	array := ast.New(ast.KindValueArray, "")
	array.AddChild(number("80"))
	array.AddChild(number("443"))
	if err := table.RegisterNode("PORTS", array); err != nil {
		t.Fatalf("RegisterNode failed: %v", err)
	}

	root := ast.NewRoot()
	root.AddChild(newStatement("p1", identifier("PORTS")))
	root.AddChild(newStatement("p2", identifier("PORTS")))

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}

	first := root.FindPath("p1").Value()
	second := root.FindPath("p2").Value()
	if first.Kind != ast.KindValueArray || second.Kind != ast.KindValueArray {
		t.Fatal("references not replaced by array expansions")
	}

	// Each reference gets an independent clone
	first.Children[0].Name = "8080"
	if second.Children[0].Name != "80" {
		t.Error("substituted arrays share nodes")
	}
	if table.Find("PORTS").Expansion.Children[0].Name != "80" {
		t.Error("substitution mutated the registered definition")
	}
}

func TestExpander_ReferenceInsideExpansion(t *testing.T) {
	table := NewTable(Options{})
	table.Register("BASE", "8000")
	array := ast.New(ast.KindValueArray, "")
	array.AddChild(identifier("BASE"))
	array.AddChild(number("9000"))
	table.RegisterNode("PORTS", array)

	root := ast.NewRoot()
	root.AddChild(newStatement("p", identifier("PORTS")))

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}

	value := root.FindPath("p").Value()
	if len(value.Children) != 2 {
		t.Fatalf("array has %d elements, want 2", len(value.Children))
	}
	if value.Children[0].Kind != ast.KindValueNumber || value.Children[0].Name != "8000" {
		t.Errorf("element 0 = %v, want number(8000)", value.Children[0])
	}
	if value.Children[1].Name != "9000" {
		t.Errorf("element 1 = %v, want number(9000)", value.Children[1])
	}
}

func TestExpander_UnknownIdentifierUntouched(t *testing.T) {
	table := NewTable(Options{})
	table.Register("KNOWN", "1")

	root := ast.NewRoot()
	root.AddChild(newStatement("x", identifier("UNKNOWN")))

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}

	value := root.FindPath("x").Value()
	if value.Kind != ast.KindIdentifier || value.Name != "UNKNOWN" {
		t.Errorf("value = %v, want untouched identifier", value)
	}
}

func TestExpander_Idempotence(t *testing.T) {
	table := NewTable(Options{})
	table.Register("TIMEOUT", "30")

	root := ast.NewRoot()
	section := ast.New(ast.KindSection, "net")
	section.AddChild(newStatement("port", number("8080")))
	section.AddChild(newStatement("t", identifier("TIMEOUT")))
	root.AddChild(section)

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}
	expanded := root.Clone()

	// The expanded tree holds no references, so a second pass must not
	// change it
	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("second ExpandAST failed: %v", err)
	}
	if !root.Equal(expanded) {
		t.Error("re-expanding an expanded tree changed it")
	}

	// A tree that never had references is equally a no-op
	plain := ast.NewRoot()
	plain.AddChild(newStatement("port", number("9090")))
	before := plain.Clone()

	if err := ExpandAST(table, plain); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}
	if !plain.Equal(before) {
		t.Error("expanding a macro-free tree changed it")
	}
}

func TestExpander_StatementNamesUntouched(t *testing.T) {
	table := NewTable(Options{})
	table.Register("TIMEOUT", "30")

	// A statement that happens to carry a macro's name keeps it; only
	// identifier value nodes are substituted
	root := ast.NewRoot()
	root.AddChild(newStatement("TIMEOUT", identifier("TIMEOUT")))

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}

	statement := root.Children[0]
	if statement.Name != "TIMEOUT" {
		t.Errorf("statement name = %q, want TIMEOUT", statement.Name)
	}
	if v := statement.Value(); v.Kind != ast.KindValueNumber || v.Name != "30" {
		t.Errorf("value = %v, want number(30)", v)
	}
}

func TestExpander_ConditionExpansion(t *testing.T) {
	table := NewTable(Options{})
	table.Register("THRESHOLD", "5")

	condition := ast.New(ast.KindExprBinary, "<")
	condition.AddChildren(identifier("THRESHOLD"), number("10"))
	directive := ast.New(ast.KindDirective, "if")
	directive.AddChildren(condition, ast.New(ast.KindSection, "then"))

	root := ast.NewRoot()
	root.AddChild(directive)

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}

	left := condition.Children[0]
	if left.Kind != ast.KindValueNumber || left.Name != "5" {
		t.Errorf("condition operand = %v, want number(5)", left)
	}
}

func TestExpander_ParameterizedPattern(t *testing.T) {
	table := NewTable(Options{})
	err := table.RegisterParameterized("GREETING", "hello ${who}", []Param{{Name: "who", Default: "world"}})
	if err != nil {
		t.Fatalf("RegisterParameterized failed: %v", err)
	}

	root := ast.NewRoot()
	root.AddChild(newStatement("g", identifier("GREETING")))

	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}

	// The opaque pattern is substituted as-is; no argument binding
	value := root.FindPath("g").Value()
	if value.Kind != ast.KindValueString || value.Name != "hello ${who}" {
		t.Errorf("value = %v, want string(hello ${who})", value)
	}
}

func TestExpander_Count(t *testing.T) {
	table := NewTable(Options{})
	table.Register("A", "1")
	table.RegisterNode("B", identifier("A"))

	root := ast.NewRoot()
	root.AddChild(newStatement("x", identifier("A")))
	root.AddChild(newStatement("y", identifier("B")))

	expander := NewExpander(table, ExpandOptions{})
	if err := expander.Expand(root); err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	// x needs one substitution, y needs two through the chain
	if expander.Count() != 3 {
		t.Errorf("Count() = %d, want 3", expander.Count())
	}
}

func TestExpander_NilRoot(t *testing.T) {
	table := NewTable(Options{})
	if err := ExpandAST(table, nil); err != nil {
		t.Errorf("ExpandAST(nil) = %v, want nil", err)
	}
}

func TestCollectDefinitions(t *testing.T) {
	table := NewTable(Options{})

	root := ast.NewRoot()
	root.AddChild(newDefine("TIMEOUT", number("30")))
	section := ast.New(ast.KindSection, "net")
	section.AddChild(newDefine("HOST", ast.New(ast.KindValueString, "localhost")))
	section.AddChild(newStatement("port", identifier("TIMEOUT")))
	root.AddChild(section)

	count, err := CollectDefinitions(table, root)
	if err != nil {
		t.Fatalf("CollectDefinitions failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if table.Len() != 2 {
		t.Errorf("table length = %d, want 2", table.Len())
	}
	if table.Find("TIMEOUT") == nil || table.Find("HOST") == nil {
		t.Error("collected definitions not findable")
	}

	// The directives are gone from the tree
	if left := ast.Collect(root, ast.KindDirective); len(left) != 0 {
		t.Errorf("%d directives remain after collection", len(left))
	}
	if len(root.Children) != 1 || len(section.Children) != 1 {
		t.Error("detaching directives disturbed other children")
	}

	// Expansion completes the pipeline
	if err := ExpandAST(table, root); err != nil {
		t.Fatalf("ExpandAST failed: %v", err)
	}
	if v := root.FindPath("net.port").Value(); v == nil || v.Name != "30" {
		t.Errorf("net.port = %v, want 30", v)
	}
}

func TestCollectDefinitions_Duplicate(t *testing.T) {
	table := NewTable(Options{})

	root := ast.NewRoot()
	root.AddChild(newDefine("X", number("1")))
	root.AddChild(newDefine("X", number("2")))

	count, err := CollectDefinitions(table, root)
	if err == nil {
		t.Fatal("duplicate definitions collected without error")
	}
	if count != 0 {
		t.Errorf("count = %d on error, want 0", count)
	}
	if !pcerror.HasCode(err, pcerror.CodeMacroError) {
		t.Errorf("error code = %v, want %v", pcerror.GetCode(err), pcerror.CodeMacroError)
	}
}

func TestCollectDefinitions_CloneIsolation(t *testing.T) {
	table := NewTable(Options{})

	value := number("30")
	define := newDefine("TIMEOUT", value)
	root := ast.NewRoot()
	root.AddChild(define)

	if _, err := CollectDefinitions(table, root); err != nil {
		t.Fatalf("CollectDefinitions failed: %v", err)
	}

	// The registered expansion is a clone of the directive's value
	value.Name = "999"
	if table.Find("TIMEOUT").Expansion.Name != "30" {
		t.Error("registered expansion aliases the directive's value node")
	}
}

func TestCollectDefinitions_InsideDirectiveBlocks(t *testing.T) {
	table := NewTable(Options{})

	thenBlock := ast.New(ast.KindSection, "then")
	thenBlock.AddChild(newDefine("NESTED", number("1")))
	directive := ast.New(ast.KindDirective, "if")
	directive.AddChildren(ast.New(ast.KindValueBoolean, "true"), thenBlock)

	root := ast.NewRoot()
	root.AddChild(directive)

	count, err := CollectDefinitions(table, root)
	if err != nil {
		t.Fatalf("CollectDefinitions failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if table.Find("NESTED") == nil {
		t.Error("definition inside directive block not collected")
	}
	if len(thenBlock.Children) != 0 {
		t.Error("define directive not detached from block")
	}
}

func TestCollectDefinitions_Malformed(t *testing.T) {
	table := NewTable(Options{})

	directive := ast.New(ast.KindDirective, "define")
	directive.AddChild(ast.New(ast.KindIdentifier, "ONLY_NAME"))
	root := ast.NewRoot()
	root.AddChild(directive)

	if _, err := CollectDefinitions(table, root); err == nil {
		t.Fatal("malformed define collected without error")
	} else if !strings.Contains(err.Error(), "Malformed define directive") {
		t.Errorf("error = %q", err.Error())
	}
}

func BenchmarkExpander_Expand(b *testing.B) {
	table := NewTable(Options{})
	table.Register("TIMEOUT", "30")
	table.Register("HOST", "localhost")
	table.RegisterNode("ALIAS", identifier("TIMEOUT"))

	proto := ast.NewRoot()
	section := ast.New(ast.KindSection, "net")
	section.AddChild(newStatement("t", identifier("TIMEOUT")))
	section.AddChild(newStatement("h", identifier("HOST")))
	section.AddChild(newStatement("a", identifier("ALIAS")))
	proto.AddChild(section)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root := proto.Clone()
		if err := ExpandAST(table, root); err != nil {
			b.Fatalf("ExpandAST failed: %v", err)
		}
	}
}
