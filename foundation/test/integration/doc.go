// Package integration provides integration tests for the polycall foundation library.
//
// Package: integration
// Title: polycall Foundation Integration Tests
// Description: This package contains integration tests that verify the correct
//              interaction between different polycall foundation modules,
//              ensuring consistent behavior, error handling, and performance
//              characteristics across module boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation of integration test suite
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - Error flow from the language pipeline into the shared error framework
// - Configuration values driving engine construction (config → polycallfile)
// - Structured log output of the processing pipeline (polycallfile → log)
// - Realistic configuration files moving through filex and the engine
//
// Error Integration Tests (error_integration_test.go):
// - Standardized diagnostic constructors and position reporting
// - Error code and exit code consistency for every pipeline stage
// - Error wrapping and unwrapping through module boundaries
// - Context preservation in error chains
//
// Performance Integration Tests (performance_test.go):
// - Processing pipeline benchmarks over realistic sources
// - File-based processing chains
// - Scalability with growing configuration sizes
//
// Running Integration Tests:
//
// To run all integration tests:
//   go test -v ./foundation/test/integration/
//
// To run performance benchmarks:
//   go test -v ./foundation/test/integration/ -bench=.
//
// Dependencies:
//
// These integration tests depend on:
// - foundation/core/error: Structured error framework
// - foundation/core/log: Structured logging
// - foundation/core/config: Configuration loading
// - foundation/polycallfile: The configuration language pipeline
// - foundation/utils/filex: File operations
// - foundation/utils/stringx: String utilities
package integration
