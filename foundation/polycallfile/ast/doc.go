// File: doc.go
// Title: Polycallfile AST Package Documentation
// Description: Defines the parent-linked syntax tree for Polycallfile
//              sources together with traversal, validation and canonical
//              printing utilities.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial AST implementation

/*
Package ast defines the syntax tree for Polycallfile configuration sources.

Unlike ASTs with one struct per construct, the whole tree is built from a
single Node type discriminated by NodeKind. This keeps macro expansion and
conditional reduction simple: rewriting the tree is splicing child slices,
with the parent backlinks maintained by the tree operations.

The AST enables:
  • Structured representation of parsed configuration
  • Path lookups such as FindPath("server.net.port")
  • In-place rewriting by the macro expander and reducer
  • Canonical re-printing of sources for formatting tools
*/
package ast
