// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              and logging. Errors raised by user input stay low, while internal
//              failures of the tooling itself are ranked high.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed input files, unresolved names, rejected values
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: missing optional configuration, recoverable I/O failures
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: invalid tool configuration, unreadable configuration sources
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the tooling unusable
	// Examples: internal invariant violations, corrupted state
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// ShouldLog returns true if this severity level should be logged
func (s Severity) ShouldLog() bool {
	return true // All severities should be logged
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical internal errors
	case CodeInternal:
		return SeverityCritical

	// High severity errors
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	// Medium severity errors
	case CodeIOError, CodeFileNotFound, CodeFileTooLarge,
		CodeTimeout, CodeCancelled:
		return SeverityMedium

	// Low severity errors raised by rejected input
	case CodeInvalidInput, CodeNotFound,
		CodeLexError, CodeSyntaxError, CodeMacroError, CodeEvalError,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
