// File: table.go
// Title: Macro Definition Table
// Description: Ordered table of macro definitions collected from @define
//              directives. Registration classifies literal values, rejects
//              duplicate names and supports a single scope level whose
//              definitions are discarded on exit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial macro table implementation

package macro

import (
	"fmt"
	"sync"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	pclog "github.com/msto63/polycall/foundation/core/log"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
	"github.com/msto63/polycall/foundation/utils/stringx"
)

// Param describes one declared parameter of a parameterized macro
type Param struct {
	Name    string // Parameter name
	Default string // Default literal, empty when none declared
}

// MacroDef is a single macro definition
type MacroDef struct {
	Name            string    // Macro name as written after @define
	Expansion       *ast.Node // Subtree substituted for references
	Params          []Param   // Declared parameters (parameterized only)
	IsParameterized bool      // True for pattern macros with parameters
}

// Options configures table behavior
type Options struct {
	// Logger for table operations (uses default if nil)
	Logger *pclog.Logger
}

// Table holds macro definitions in registration order. Order matters:
// lookups take the first match and scope exit truncates the tail, so
// the table is a slice scanned linearly rather than a map.
type Table struct {
	defs     []*MacroDef
	scopeEnd int
	tracking bool
	logger   *pclog.Logger
	mutex    sync.RWMutex
}

// NewTable creates an empty macro table
func NewTable(opts Options) *Table {
	if opts.Logger == nil {
		opts.Logger = pclog.GetDefault()
	}

	return &Table{
		logger: opts.Logger.WithField("component", "polycallfile-macro"),
	}
}

// Register adds a macro whose expansion is built from a literal string.
// The literal is classified: true and false become boolean nodes, a
// leading digit makes a number node, everything else a string node.
func (t *Table) Register(name, literal string) error {
	return t.RegisterNode(name, ast.New(classifyLiteral(literal), literal))
}

// RegisterNode adds a macro with an already-built expansion subtree,
// typically the value node of a parsed @define directive
func (t *Table) RegisterNode(name string, expansion *ast.Node) error {
	if stringx.IsBlank(name) {
		return pcerror.NewMacro("Macro name cannot be empty")
	}
	if expansion == nil {
		return pcerror.NewMacro(fmt.Sprintf("Macro '%s' has no expansion", name))
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.find(name) != nil {
		return pcerror.NewMacro(fmt.Sprintf("Macro '%s' is already defined", name))
	}

	t.defs = append(t.defs, &MacroDef{
		Name:      name,
		Expansion: expansion,
	})

	t.logger.Debug("macro registered", pclog.Fields{
		"name": name,
		"kind": expansion.Kind.String(),
	})

	return nil
}

// RegisterParameterized adds a pattern macro with declared parameters.
// The pattern is stored as an opaque string expansion; references
// substitute it unchanged, argument binding is not performed.
func (t *Table) RegisterParameterized(name, pattern string, params []Param) error {
	if stringx.IsBlank(name) {
		return pcerror.NewMacro("Macro name cannot be empty")
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.find(name) != nil {
		return pcerror.NewMacro(fmt.Sprintf("Macro '%s' is already defined", name))
	}

	t.defs = append(t.defs, &MacroDef{
		Name:            name,
		Expansion:       ast.New(ast.KindValueString, pattern),
		Params:          append([]Param(nil), params...),
		IsParameterized: true,
	})

	t.logger.Debug("parameterized macro registered", pclog.Fields{
		"name":   name,
		"params": len(params),
	})

	return nil
}

// Find returns the definition for name, or nil when none is registered.
// Misses are the common case during expansion, so none is not an error.
// Matching is case-sensitive.
func (t *Table) Find(name string) *MacroDef {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.find(name)
}

// find expects the lock to be held
func (t *Table) find(name string) *MacroDef {
	for _, def := range t.defs {
		if def.Name == name {
			return def
		}
	}
	return nil
}

// EnterScope marks the current table length as the scope watermark.
// Definitions registered afterwards are discarded by ExitScope. The
// table tracks a single scope level; entering again moves the mark.
func (t *Table) EnterScope() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.scopeEnd = len(t.defs)
	t.tracking = true
}

// ExitScope removes every definition registered since EnterScope. A
// call without a prior EnterScope is a no-op.
func (t *Table) ExitScope() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if !t.tracking {
		return
	}

	removed := len(t.defs) - t.scopeEnd
	t.defs = t.defs[:t.scopeEnd]
	t.tracking = false

	if removed > 0 {
		t.logger.Debug("macro scope exited", pclog.Fields{"removed": removed})
	}
}

// Len returns the number of registered macros
func (t *Table) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return len(t.defs)
}

// Names returns the macro names in registration order
func (t *Table) Names() []string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	names := make([]string, len(t.defs))
	for i, def := range t.defs {
		names[i] = def.Name
	}
	return names
}

// Defs returns the definitions in registration order. The slice is a
// copy; the definitions themselves are shared.
func (t *Table) Defs() []*MacroDef {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	defs := make([]*MacroDef, len(t.defs))
	copy(defs, t.defs)
	return defs
}

// classifyLiteral picks the value kind for a literal registered via
// Register. Only true and false are booleans and only a leading digit
// makes a number; signed forms like -5 stay strings.
func classifyLiteral(literal string) ast.NodeKind {
	switch {
	case literal == "true" || literal == "false":
		return ast.KindValueBoolean
	case len(literal) > 0 && literal[0] >= '0' && literal[0] <= '9':
		return ast.KindValueNumber
	default:
		return ast.KindValueString
	}
}
