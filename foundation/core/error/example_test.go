// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the PolyCall error handling system.
//              These examples demonstrate common use cases and best practices.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation with comprehensive examples

package error

import (
	"errors"
	"fmt"
	"strings"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("unreadable tool configuration").
		WithCode(CodeConfigError).
		WithDetail("path", "polycall.toml").
		WithDetail("format", "toml")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: unreadable tool configuration
	// Code: CONFIG_ERROR
	// Severity: high
}

// ExampleWrap demonstrates wrapping an existing error with context
func ExampleWrap() {
	// Simulate an I/O error
	ioErr := errors.New("open service.pcf: no such file or directory")

	// Wrap with processing context
	err := Wrap(ioErr, "loading configuration source failed").
		WithCode(CodeFileNotFound).
		WithDetail("source", "service.pcf").
		WithOperation("ProcessFile")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: loading configuration source failed: open service.pcf: no such file or directory
	// Code: FILE_NOT_FOUND
}

// ExampleNewSyntax demonstrates positioned diagnostics
func ExampleNewSyntax() {
	err := NewSyntax("Expected '=' after key", 4, 12)

	line, column, ok := Position(err)
	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Printf("Position: %d:%d (ok=%t)\n", line, column, ok)

	// Output:
	// Error: Expected '=' after key
	// Code: SYNTAX_ERROR
	// Position: 4:12 (ok=true)
}

// ExampleHasCode demonstrates checking for specific error codes
func ExampleHasCode() {
	err := New("Division by zero").
		WithCode(CodeEvalError)

	if HasCode(err, CodeEvalError) {
		fmt.Println("This is an evaluation error")
	}

	if HasCode(err, CodeLexError) {
		fmt.Println("This is a lexical error")
	} else {
		fmt.Println("This is not a lexical error")
	}

	// Output:
	// This is an evaluation error
	// This is not a lexical error
}

// ExampleGetSeverityFromCode demonstrates automatic severity assignment
func ExampleGetSeverityFromCode() {
	codes := []Code{
		CodeInternal,
		CodeConfigError,
		CodeIOError,
		CodeSyntaxError,
	}

	for _, code := range codes {
		severity := GetSeverityFromCode(code)
		fmt.Printf("Code: %s -> Severity: %s (Should Alert: %t)\n",
			code, severity, severity.ShouldAlert())
	}

	// Output:
	// Code: INTERNAL -> Severity: critical (Should Alert: true)
	// Code: CONFIG_ERROR -> Severity: high (Should Alert: true)
	// Code: IO_ERROR -> Severity: medium (Should Alert: false)
	// Code: SYNTAX_ERROR -> Severity: low (Should Alert: false)
}

// ExampleError_RootCause demonstrates finding the root cause of error chains
func ExampleError_RootCause() {
	// Create an error chain
	original := NewLex("Unterminated string", 7, 3)
	middle := Wrap(original, "tokenization failed")
	top := Wrap(middle, "processing failed")

	fmt.Println("Top error:", top.Error())
	fmt.Println("Root cause:", top.RootCause().Error())
	fmt.Println("Root cause code:", GetCode(top.RootCause()))

	// Output:
	// Top error: processing failed: tokenization failed: Unterminated string
	// Root cause: Unterminated string
	// Root cause code: LEX_ERROR
}

// Example_sourceDiagnostic demonstrates diagnostic handling for rejected input
func Example_sourceDiagnostic() {
	// Simulate checking a single key-value statement
	checkStatement := func(statement string) error {
		if strings.TrimSpace(statement) == "" {
			return New("empty statement").
				WithCode(CodeInvalidInput)
		}

		if !strings.Contains(statement, "=") {
			return NewSyntax("Expected '=' after key", 1, len(statement)).
				WithDetail("statement", statement)
		}

		return nil
	}

	// Test a statement missing its assignment
	err := checkStatement("port 8080")
	if err != nil {
		fmt.Println("Check error:", err.Error())
		fmt.Println("Category:", GetCode(err).Category())
		fmt.Println("Exit code:", GetCode(err).ExitCode())
	}

	// Output:
	// Check error: Expected '=' after key
	// Category: language
	// Exit code: 2
}
