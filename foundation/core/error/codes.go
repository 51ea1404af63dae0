// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the PolyCall tooling,
//              grouped by concern. Language front-end codes identify the
//              processing stage that rejected the input; the remaining groups
//              cover configuration, validation, and I/O concerns of the tools
//              built on top of the front-end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial error code catalog

package error

// Code represents a machine-readable error code
type Code string

// General error codes
const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"
	CodeCancelled    Code = "CANCELLED"
)

// Language front-end error codes
const (
	// CodeLexError indicates the tokenizer rejected the input; details carry
	// the line and column of the offending lexeme
	CodeLexError Code = "LEX_ERROR"

	// CodeSyntaxError indicates the parser rejected the token stream; details
	// carry the line and column of the offending token
	CodeSyntaxError Code = "SYNTAX_ERROR"

	// CodeMacroError indicates macro registration or expansion failed
	CodeMacroError Code = "MACRO_ERROR"

	// CodeEvalError indicates expression evaluation failed
	CodeEvalError Code = "EVAL_ERROR"
)

// Configuration error codes
const (
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// Validation error codes
const (
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// I/O error codes
const (
	CodeIOError      Code = "IO_ERROR"
	CodeFileNotFound Code = "FILE_NOT_FOUND"
	CodeFileTooLarge Code = "FILE_TOO_LARGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeTimeout, CodeCancelled,
		CodeLexError, CodeSyntaxError, CodeMacroError, CodeEvalError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange,
		CodeIOError, CodeFileNotFound, CodeFileTooLarge:
		return true
	default:
		return false
	}
}

// Category returns the category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeTimeout, CodeCancelled:
		return "general"
	case CodeLexError, CodeSyntaxError, CodeMacroError, CodeEvalError:
		return "language"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return "validation"
	case CodeIOError, CodeFileNotFound, CodeFileTooLarge:
		return "io"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit code the CLI tools should use when a
// run fails with this error code
func (c Code) ExitCode() int {
	switch c {
	case CodeLexError, CodeSyntaxError:
		return 2
	case CodeMacroError, CodeEvalError:
		return 3
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 4
	case CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange,
		CodeInvalidInput:
		return 5
	case CodeIOError, CodeFileNotFound, CodeFileTooLarge, CodeNotFound:
		return 6
	case CodeTimeout, CodeCancelled:
		return 7
	default:
		return 1
	}
}
