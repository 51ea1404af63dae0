// Package log provides structured logging capabilities for the PolyCall tooling.
//
// Package: log
// Title: PolyCall Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels, and
//              tight integration with the PolyCall error handling system. It
//              supports performance timing of the processing pipeline and audit
//              trails for configuration runs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with request IDs and custom fields
// - Integration with the PolyCall error system for automatic error logging
// - Performance metrics and timing measurements with checkpoints
// - Audit trail capabilities for configuration processing runs
//
// Usage:
//   import pclog "github.com/msto63/polycall/foundation/core/log"
//
//   // Create a logger with context
//   logger := pclog.New().
//     WithLevel(pclog.LevelInfo).
//     WithFormat(pclog.FormatJSON).
//     WithField("component", "polycallfile").
//     WithRequestID("req-123")
//
//   // Log messages with different levels
//   logger.Info("configuration parsed", pclog.Field("sections", 4))
//   logger.ErrorWithErr("processing failed", err)
//   logger.Debug("tokenizing input", pclog.Fields{
//     "source": "service.pcf",
//     "bytes":  1024,
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("process")
//   timer.Checkpoint("parsed")
//   // ... expand and reduce
//   timer.Stop()
package log
