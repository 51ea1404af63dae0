// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string utilities shared across the
//              PolyCall foundation packages, covering validation, diagnostic
//              truncation, and line handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation

// Package stringx provides extended string operations for the PolyCall tooling.
//
// The package deliberately stays small: it carries only the helpers the
// configuration front-end and the CLI actually need. Blank checking backs
// input validation, Truncate keeps source excerpts in diagnostics bounded,
// and SplitLines normalizes line endings for error context display.
//
// All functions are Unicode-aware and never panic on empty input.
package stringx
