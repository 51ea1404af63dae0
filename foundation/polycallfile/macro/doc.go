// File: doc.go
// Title: Macro Package Documentation
// Description: Documents the macro definition table and the expansion
//              pass that rewrites syntax trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial macro implementation

/*
Package macro implements @define handling for Polycallfile trees.

Definitions live in an ordered Table: registration order is lookup order,
duplicates are rejected, and a single scope watermark lets a caller discard
definitions added since EnterScope. Expansion is a destructive tree rewrite:

  • CollectDefinitions registers every define directive in a parsed tree
    and detaches the directive nodes
  • ExpandAST replaces identifier nodes that name a registered macro with
    deep clones of the definition's expansion
  • Substituted subtrees are processed again, so definitions may reference
    other macros; a configurable depth limit (64 by default) turns
    self-referential chains into macro errors

Parameterized macros are registered with their declared parameters, but a
reference substitutes the stored pattern unchanged; call-site argument
binding is not implemented.
*/
package macro
