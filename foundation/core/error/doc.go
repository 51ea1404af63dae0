// Package error provides structured error handling for the PolyCall tooling.
//
// Package: error
// Title: PolyCall Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, severities, and stack
//              traces. It carries the diagnostics raised by the configuration
//              language front-end (lexical, syntactic, macro, evaluation) as
//              well as the configuration and I/O errors of the tools built on
//              top of it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes grouped by concern
// - Source-position details for lexical and syntactic diagnostics
// - Stack trace capture for debugging
// - Error severity levels and CLI exit code mapping
//
// Usage:
//   import "github.com/msto63/polycall/foundation/core/error"
//
//   // Create a positioned diagnostic
//   err := error.NewSyntax("Expected '=' after key", 4, 12)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "processing failed").
//     WithOperation("Process").
//     WithDetail("source", "service.pcf")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeSyntaxError) {
//     line, column, _ := error.Position(err)
//     _ = line
//     _ = column
//   }
package error
