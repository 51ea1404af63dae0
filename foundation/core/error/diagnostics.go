// File: diagnostics.go
// Title: Language Diagnostic Constructors
// Description: Convenience constructors for the four diagnostic variants the
//              language front-end raises: lexical, syntactic, macro, and
//              evaluation errors. Lexical and syntactic diagnostics carry the
//              source line and column as details so tools can point at the
//              offending input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial diagnostic constructors

package error

// Detail keys used by the diagnostic constructors
const (
	DetailLine   = "line"
	DetailColumn = "column"
)

// NewLex creates a lexical diagnostic positioned at the given line and column
func NewLex(message string, line, column int) *Error {
	return New(message).
		WithCode(CodeLexError).
		WithDetail(DetailLine, line).
		WithDetail(DetailColumn, column)
}

// NewSyntax creates a syntactic diagnostic positioned at the given line and column
func NewSyntax(message string, line, column int) *Error {
	return New(message).
		WithCode(CodeSyntaxError).
		WithDetail(DetailLine, line).
		WithDetail(DetailColumn, column)
}

// NewMacro creates a macro diagnostic
func NewMacro(message string) *Error {
	return New(message).WithCode(CodeMacroError)
}

// NewEval creates an evaluation diagnostic
func NewEval(message string) *Error {
	return New(message).WithCode(CodeEvalError)
}

// Position extracts the source position from a diagnostic error. The ok
// result is false for errors that carry no position details.
func Position(err error) (line, column int, ok bool) {
	pcErr, isStructured := err.(*Error)
	if !isStructured {
		return 0, 0, false
	}

	line, lineOK := pcErr.details[DetailLine].(int)
	column, columnOK := pcErr.details[DetailColumn].(int)
	if !lineOK || !columnOK {
		return 0, 0, false
	}

	return line, column, true
}

// IsDiagnostic reports whether an error was raised by the language front-end
func IsDiagnostic(err error) bool {
	return GetCode(err).Category() == "language"
}
