// File: doc.go
// Title: Polycallfile Package Documentation
// Description: Implements the Polycallfile configuration language parser,
//              AST, macro expander, and evaluator for the polycall
//              platform. Polycallfile provides sectioned key/value
//              configuration with macros and conditional blocks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial Polycallfile implementation

/*
Package polycallfile implements the Polycallfile configuration language for the polycall platform.

Package: polycallfile
Title: Polycallfile Configuration Language Implementation
Description: Provides parsing, AST generation, macro expansion, expression
             evaluation, and conditional reduction for Polycallfile
             sources. Polycallfile is a domain-specific configuration
             language with named sections, typed values, reusable macros,
             and conditional blocks resolved at load time.
Author: msto63
Version: v0.1.0
Created: 2026-08-17
Modified: 2026-08-17

Change History:
- 2026-08-17 v0.1.0: Initial Polycallfile implementation

Key Features:
  • Sectioned key/value configuration (server { port = 8080 })
  • Typed values: strings, numbers, booleans, null, and arrays
  • Reusable macros (@define TIMEOUT 30) expanded before evaluation
  • Conditional blocks (@if/else) folded into plain configuration
  • Typed expression evaluation with references into the tree
  • Error recovery parsing that reports every syntax error in one pass
  • Canonical printing for formatting tools

# Language Overview

A Polycallfile source is a sequence of sections, statements, and
directives. Sections group related statements under a name and nest to
any depth; statements bind a key to a typed value.

## Basic Syntax

	server {
	    host = "localhost"
	    port = 8080
	    tls = false
	}

	network {
	    endpoints = ["10.0.0.1", "10.0.0.2"]
	    timeout = 250ms
	}

## Macros

Macros name a literal once and reuse it anywhere a value or expression
operand appears. Definitions are collected from the whole tree before
expansion, so placement does not matter.

	@define TIMEOUT 30
	@define REGION "eu-west"

	client {
	    timeout = TIMEOUT
	    region = REGION
	}

## Conditional Blocks

Conditions are full expressions evaluated against the configuration
itself. The selected branch's contents replace the directive; the other
branch is discarded.

	@if (server.port == 8080) {
	    mode = "standard"
	} else {
	    mode = "custom"
	}

## Expressions

Expressions support arithmetic, comparison, and logical operators with
conventional precedence. Division always yields a float; string operands
turn + into concatenation; == on floats uses an epsilon tolerance.

# Processing Pipeline

The Engine runs four stages over each source: parsing, macro definition
collection, macro expansion, and conditional reduction.

	engine, err := polycallfile.NewEngine()
	if err != nil {
	    return err
	}

	root, err := engine.Process(source)
	if err != nil {
	    return err
	}

	port := root.FindPath("server.port")

Parse runs only the first stage and keeps directives in the tree, which
is what formatting and inspection tools want. ProcessFile reads a file
and processes its contents; it is the only entry point that performs
I/O.

Subpackages hold the individual stages: parser (tokenizer and
recursive-descent parser), ast (tree model, traversal, printer), macro
(definition table and expander), and eval (typed values and expression
evaluation).
*/
package polycallfile
