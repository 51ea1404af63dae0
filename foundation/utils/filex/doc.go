// Package filex implements file operation utilities for the polycall platform.
//
// Package: filex
// Title: File Operations for Configuration Handling
// Description: This package provides the file system surface the polycall
//              tooling needs for configuration files: existence and type
//              checks, whole-file reading, plain and atomic writing, and
//              human-readable size formatting. The atomic write is what the
//              formatter uses to rewrite files in place without readers ever
//              seeing a truncated intermediate state.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial implementation with configuration file utilities
//
// # File Existence and Information
//
// Functions for checking file existence and retrieving file information:
//   - Exists: Check if file or directory exists
//   - IsFile/IsDir: Check file type
//   - IsReadable: Check read access
//   - Size: File size in bytes
//   - FormatSize: Human-readable size strings for log output
//
// # Reading and Writing
//
// Whole-file operations with wrapped errors that keep the underlying
// cause inspectable through errors.Is:
//   - ReadFile/ReadString: Read complete file contents
//   - WriteFile/WriteString: Write complete file contents
//   - WriteFileAtomic: Temp-file-and-rename write for in-place rewrites
//
// Usage:
//
//	source, err := filex.ReadString("service.pcf")
//	if err != nil {
//		return err
//	}
//	// ... process source ...
//	if err := filex.WriteFileAtomic("service.pcf", formatted, 0644); err != nil {
//		return err
//	}
package filex
