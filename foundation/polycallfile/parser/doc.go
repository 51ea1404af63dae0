// File: doc.go
// Title: Polycallfile Parser Package Documentation
// Description: Implements the lexical analyzer and parser for Polycallfile
//              sources. Converts configuration text into parent-linked
//              syntax trees with error recovery and position reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for Polycallfile sources.

This package implements a recursive descent parser that converts configuration
text into the uniform syntax tree defined by the ast package. It includes:

  • Lexical analyzer for the Polycallfile token set, including directive
    markers, unit-suffixed numbers and both string quote styles
  • Recursive descent parser for sections, statements, values and the
    @define, @import, @if and @for directives
  • Expression parsing with C-style operator precedence
  • Error recovery that resynchronizes at statement and block boundaries,
    so one run reports every syntax error in a file

The lexer never fails: malformed input produces error tokens that the parser
turns into positioned diagnostics. A parse with any recorded error yields no
tree; callers inspect Errors for the full list.
*/
package parser
