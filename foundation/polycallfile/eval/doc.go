// File: doc.go
// Title: Eval Package Documentation
// Description: Documents the typed value model and expression evaluator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial evaluator implementation

/*
Package eval computes typed values for Polycallfile expressions.

Values are null, boolean, integer, float or string, with total conversions
between all variants. The evaluator walks expression subtrees and resolves
identifier references against a bound syntax tree by dotted-path lookup,
evaluating the located node's first child.

Operator semantics follow the configuration language:

  • + concatenates when either operand is a string, otherwise numeric
    with float promotion
  • / always yields a float and rejects zero divisors; % works on
    integer-coerced operands
  • == and != compare strings when both operands are strings, use an
    epsilon of 1e-10 when either is a float, and compare as integers
    otherwise; the ordering operators use the same dispatch without
    the epsilon
  • && and || evaluate both operands and never short-circuit

Strict mode (the default) turns unresolved references into evaluation
errors; lenient mode yields null for them instead.
*/
package eval
