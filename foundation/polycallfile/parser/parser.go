// File: parser.go
// Title: Polycallfile Recursive Descent Parser
// Description: Implements the syntactic analysis phase of Polycallfile
//              processing. Builds the parent-linked syntax tree from the
//              token stream with one token of lookahead. Syntax errors do
//              not abort the parse; the parser records them, resynchronizes
//              at statement and block boundaries and keeps going, so a
//              single run reports every problem in a file.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	pclog "github.com/msto63/polycall/foundation/core/log"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
)

const (
	// DefaultMaxInputLength bounds the accepted source size
	DefaultMaxInputLength = 1 << 20

	// DefaultMaxErrors caps how many syntax errors are recorded before
	// further ones are dropped
	DefaultMaxErrors = 16
)

// ParseError describes a single syntax error with its source location
type ParseError struct {
	Message  string // Error description
	Position int    // Byte position in input
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Token    string // Token text near the error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		e.Line, e.Column, e.Message, e.Token)
}

// Options configures parser behavior
type Options struct {
	// Logger for parser operations (uses default if nil)
	Logger *pclog.Logger

	// MaxInputLength limits the source size in bytes
	MaxInputLength int

	// MaxErrors limits how many syntax errors are collected per parse
	MaxErrors int
}

// Parser analyzes Polycallfile sources and builds syntax trees
type Parser struct {
	lexer    *Lexer
	current  Token
	previous Token
	logger   *pclog.Logger
	options  Options
	errors   []*ParseError
	hadError bool
}

// New creates a new parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = pclog.GetDefault()
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxErrors <= 0 {
		opts.MaxErrors = DefaultMaxErrors
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "polycallfile-parser"),
		options: opts,
	}, nil
}

// Parse analyzes the input and returns the syntax tree hanging off a
// synthetic root section. When the input contains syntax errors the
// partial tree is discarded: the result is nil together with the first
// recorded error, and Errors exposes the full list.
func (p *Parser) Parse(input string) (*ast.Node, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)
	}

	p.lexer = NewLexer(input)
	p.errors = nil
	p.hadError = false

	p.logger.Debug("parse started", pclog.Fields{"input_length": len(input)})

	p.advance() // Load the first token
	root := ast.NewRoot()
	p.parseConfig(root)

	if p.hadError {
		p.logger.Debug("parse failed", pclog.Fields{"errors": len(p.errors)})
		return nil, p.errors[0]
	}

	p.logger.Debug("parse finished", pclog.Fields{"nodes": ast.Count(root)})
	return root, nil
}

// Errors returns all syntax errors recorded by the last Parse call
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// parseConfig handles the top level of a source file. Comments may
// appear here and are dropped; inside sections the grammar has no room
// for them.
func (p *Parser) parseConfig(root *ast.Node) {
	for p.current.Type != TokenEOF {
		switch p.current.Type {
		case TokenComment:
			// Top-level comments carry no configuration
			p.advance()
		case TokenDirective:
			p.parseDirective(root)
		case TokenIdentifier:
			p.parseSectionOrStatement(root)
		case TokenError:
			p.report(p.current, p.current.Value)
			p.attachError(root)
			p.advance()
			p.synchronize()
		default:
			p.report(p.current, fmt.Sprintf("Unexpected token %s at top level", tokenText(p.current)))
			p.attachError(root)
			p.advance()
			p.synchronize()
		}
	}
}

// parseBody handles the entries between the braces of a section or a
// directive block
func (p *Parser) parseBody(section *ast.Node) {
	for p.current.Type != TokenRightBrace && p.current.Type != TokenEOF {
		switch p.current.Type {
		case TokenDirective:
			p.parseDirective(section)
		case TokenIdentifier:
			p.parseSectionOrStatement(section)
		case TokenComment:
			p.report(p.current, "Comments are not allowed inside sections")
			p.attachError(section)
			p.advance()
		case TokenError:
			p.report(p.current, p.current.Value)
			p.attachError(section)
			p.advance()
			p.synchronize()
		default:
			p.report(p.current, fmt.Sprintf("Unexpected token %s in section body", tokenText(p.current)))
			p.attachError(section)
			p.advance()
			p.synchronize()
		}
	}
}

// parseSectionOrStatement disambiguates the two identifier-led forms:
// a brace opens a section, an equals sign starts a statement
func (p *Parser) parseSectionOrStatement(parent *ast.Node) {
	name := p.current
	p.advance()

	switch p.current.Type {
	case TokenLeftBrace:
		p.parseSection(parent, name)
	case TokenEquals:
		p.parseStatement(parent, name)
	default:
		p.report(p.current, fmt.Sprintf("Expected '{' or '=' after '%s', got %s",
			name.Value, tokenText(p.current)))
		p.attachError(parent)
		p.synchronize()
	}
}

func (p *Parser) parseSection(parent *ast.Node, name Token) {
	section := ast.NewAt(ast.KindSection, name.Value, tokenPos(name))
	parent.AddChild(section)

	p.advance() // consume '{'
	p.parseBody(section)

	if p.current.Type != TokenRightBrace {
		p.report(p.current, fmt.Sprintf("Expected '}' to close section '%s'", name.Value))
		p.attachError(section)
		return
	}
	p.advance() // consume '}'
}

func (p *Parser) parseStatement(parent *ast.Node, name Token) {
	statement := ast.NewAt(ast.KindStatement, name.Value, tokenPos(name))

	p.advance() // consume '='
	value := p.parseValue()
	if value == nil {
		p.attachError(parent)
		p.synchronize()
		return
	}
	statement.AddChild(value)
	parent.AddChild(statement)

	if p.current.Type == TokenSemicolon {
		p.advance() // the separator is optional
	}
}

// parseDirective dispatches on the directive name carried by the token
func (p *Parser) parseDirective(parent *ast.Node) {
	switch p.current.Value {
	case "define":
		p.parseDefine(parent)
	case "import":
		p.parseImport(parent)
	case "if":
		p.parseIf(parent)
	case "for":
		p.parseFor(parent)
	default:
		p.report(p.current, fmt.Sprintf("Unknown directive '@%s'", p.current.Value))
		p.attachError(parent)
		p.advance()
		p.synchronize()
	}
}

// parseDefine handles @define NAME value
func (p *Parser) parseDefine(parent *ast.Node) {
	directive := ast.NewAt(ast.KindDirective, "define", tokenPos(p.current))
	p.advance() // consume @define

	if p.current.Type != TokenIdentifier {
		p.report(p.current, fmt.Sprintf("Expected macro name after @define, got %s", tokenText(p.current)))
		p.attachError(parent)
		p.synchronize()
		return
	}
	directive.AddChild(ast.NewAt(ast.KindIdentifier, p.current.Value, tokenPos(p.current)))
	p.advance()

	value := p.parseValue()
	if value == nil {
		p.attachError(parent)
		p.synchronize()
		return
	}
	directive.AddChild(value)
	parent.AddChild(directive)

	if p.current.Type == TokenSemicolon {
		p.advance()
	}
}

// parseImport handles @import "path"
func (p *Parser) parseImport(parent *ast.Node) {
	directive := ast.NewAt(ast.KindDirective, "import", tokenPos(p.current))
	p.advance() // consume @import

	if p.current.Type != TokenString {
		p.report(p.current, fmt.Sprintf("Expected file path string after @import, got %s", tokenText(p.current)))
		p.attachError(parent)
		p.synchronize()
		return
	}
	directive.AddChild(ast.NewAt(ast.KindValueString, p.current.Value, tokenPos(p.current)))
	p.advance()
	parent.AddChild(directive)

	if p.current.Type == TokenSemicolon {
		p.advance()
	}
}

// parseIf handles @if (condition) block with an optional else block.
// The children are condition, then-block and, when present, else-block.
func (p *Parser) parseIf(parent *ast.Node) {
	directive := ast.NewAt(ast.KindDirective, "if", tokenPos(p.current))
	p.advance() // consume @if

	if p.current.Type != TokenLeftParen {
		p.report(p.current, fmt.Sprintf("Expected '(' after @if, got %s", tokenText(p.current)))
		p.attachError(parent)
		p.synchronize()
		return
	}
	p.advance()

	condition := p.parseExpression()
	if condition == nil {
		p.attachError(parent)
		p.synchronize()
		return
	}

	if p.current.Type != TokenRightParen {
		p.report(p.current, fmt.Sprintf("Expected ')' after condition, got %s", tokenText(p.current)))
		p.attachError(parent)
		p.synchronize()
		return
	}
	p.advance()

	thenBlock := p.parseBlock("then")
	if thenBlock == nil {
		p.attachError(parent)
		return
	}
	directive.AddChildren(condition, thenBlock)

	if p.current.Type == TokenIdentifier && p.current.Value == "else" {
		p.advance()
		elseBlock := p.parseBlock("else")
		if elseBlock == nil {
			p.attachError(parent)
			return
		}
		directive.AddChild(elseBlock)
	}

	parent.AddChild(directive)
}

// parseFor handles @for variable in iterable block. The children are
// loop variable, iterable and body block.
func (p *Parser) parseFor(parent *ast.Node) {
	directive := ast.NewAt(ast.KindDirective, "for", tokenPos(p.current))
	p.advance() // consume @for

	if p.current.Type != TokenIdentifier {
		p.report(p.current, fmt.Sprintf("Expected loop variable after @for, got %s", tokenText(p.current)))
		p.attachError(parent)
		p.synchronize()
		return
	}
	loopVar := ast.NewAt(ast.KindIdentifier, p.current.Value, tokenPos(p.current))
	p.advance()

	if p.current.Type != TokenIdentifier || p.current.Value != "in" {
		p.report(p.current, fmt.Sprintf("Expected 'in' after loop variable, got %s", tokenText(p.current)))
		p.attachError(parent)
		p.synchronize()
		return
	}
	p.advance()

	iterable := p.parseValue()
	if iterable == nil {
		p.attachError(parent)
		p.synchronize()
		return
	}

	body := p.parseBlock("body")
	if body == nil {
		p.attachError(parent)
		return
	}

	directive.AddChildren(loopVar, iterable, body)
	parent.AddChild(directive)
}

// parseBlock parses a braced body and wraps it in a section named after
// its role, such as then, else or body
func (p *Parser) parseBlock(name string) *ast.Node {
	if p.current.Type != TokenLeftBrace {
		p.report(p.current, fmt.Sprintf("Expected '{' to open %s block, got %s", name, tokenText(p.current)))
		p.synchronize()
		return nil
	}
	block := ast.NewAt(ast.KindSection, name, tokenPos(p.current))
	p.advance()

	p.parseBody(block)

	if p.current.Type != TokenRightBrace {
		p.report(p.current, fmt.Sprintf("Expected '}' to close %s block", name))
		return nil
	}
	p.advance()
	return block
}

// parseValue parses a literal, array or identifier path in value
// position. On failure the error is recorded and nil returned.
func (p *Parser) parseValue() *ast.Node {
	switch p.current.Type {
	case TokenString:
		node := ast.NewAt(ast.KindValueString, p.current.Value, tokenPos(p.current))
		p.advance()
		return node
	case TokenNumber:
		node := ast.NewAt(ast.KindValueNumber, p.current.Value, tokenPos(p.current))
		p.advance()
		return node
	case TokenTrue:
		node := ast.NewAt(ast.KindValueBoolean, "true", tokenPos(p.current))
		p.advance()
		return node
	case TokenFalse:
		node := ast.NewAt(ast.KindValueBoolean, "false", tokenPos(p.current))
		p.advance()
		return node
	case TokenNull:
		node := ast.NewAt(ast.KindValueNull, "null", tokenPos(p.current))
		p.advance()
		return node
	case TokenLeftBracket:
		return p.parseArray()
	case TokenIdentifier:
		return p.parsePath()
	case TokenError:
		p.report(p.current, p.current.Value)
		p.advance()
		return nil
	default:
		p.report(p.current, fmt.Sprintf("Expected value, got %s", tokenText(p.current)))
		return nil
	}
}

// parseArray parses a bracketed value list; elements may be any value
// including nested arrays
func (p *Parser) parseArray() *ast.Node {
	array := ast.NewAt(ast.KindValueArray, "", tokenPos(p.current))
	p.advance() // consume '['

	if p.current.Type == TokenRightBracket {
		p.advance()
		return array
	}

	for {
		element := p.parseValue()
		if element == nil {
			return nil
		}
		array.AddChild(element)

		if p.current.Type != TokenComma {
			break
		}
		p.advance()
	}

	if p.current.Type != TokenRightBracket {
		p.report(p.current, fmt.Sprintf("Expected ']' to close array, got %s", tokenText(p.current)))
		return nil
	}
	p.advance()
	return array
}

// parsePath parses a bare or dotted identifier such as TIMEOUT or
// defaults.net.host into a single identifier node
func (p *Parser) parsePath() *ast.Node {
	start := p.current
	name := p.current.Value
	p.advance()

	for p.current.Type == TokenDot {
		p.advance()
		if p.current.Type != TokenIdentifier {
			p.report(p.current, fmt.Sprintf("Expected identifier after '.', got %s", tokenText(p.current)))
			return nil
		}
		name += "." + p.current.Value
		p.advance()
	}

	return ast.NewAt(ast.KindIdentifier, name, tokenPos(start))
}

// Expression parsing with precedence climbing, loosest binding first:
// || then && then equality, comparison, additive, multiplicative and
// finally unary operators.

func (p *Parser) parseExpression() *ast.Node {
	return p.parseOrExpression()
}

func (p *Parser) parseOrExpression() *ast.Node {
	left := p.parseAndExpression()
	if left == nil {
		return nil
	}

	for p.current.Type == TokenOr {
		op := p.current
		p.advance()
		right := p.parseAndExpression()
		if right == nil {
			return nil
		}
		expr := ast.NewAt(ast.KindExprBinary, op.Value, tokenPos(op))
		expr.AddChildren(left, right)
		left = expr
	}

	return left
}

func (p *Parser) parseAndExpression() *ast.Node {
	left := p.parseEqualityExpression()
	if left == nil {
		return nil
	}

	for p.current.Type == TokenAnd {
		op := p.current
		p.advance()
		right := p.parseEqualityExpression()
		if right == nil {
			return nil
		}
		expr := ast.NewAt(ast.KindExprBinary, op.Value, tokenPos(op))
		expr.AddChildren(left, right)
		left = expr
	}

	return left
}

func (p *Parser) parseEqualityExpression() *ast.Node {
	left := p.parseComparisonExpression()
	if left == nil {
		return nil
	}

	for p.current.Type == TokenEqEq || p.current.Type == TokenNotEq {
		op := p.current
		p.advance()
		right := p.parseComparisonExpression()
		if right == nil {
			return nil
		}
		expr := ast.NewAt(ast.KindExprBinary, op.Value, tokenPos(op))
		expr.AddChildren(left, right)
		left = expr
	}

	return left
}

func (p *Parser) parseComparisonExpression() *ast.Node {
	left := p.parseAdditiveExpression()
	if left == nil {
		return nil
	}

	for p.current.Type == TokenLess || p.current.Type == TokenLessEq ||
		p.current.Type == TokenGreater || p.current.Type == TokenGreaterEq {
		op := p.current
		p.advance()
		right := p.parseAdditiveExpression()
		if right == nil {
			return nil
		}
		expr := ast.NewAt(ast.KindExprBinary, op.Value, tokenPos(op))
		expr.AddChildren(left, right)
		left = expr
	}

	return left
}

func (p *Parser) parseAdditiveExpression() *ast.Node {
	left := p.parseMultiplicativeExpression()
	if left == nil {
		return nil
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		op := p.current
		p.advance()
		right := p.parseMultiplicativeExpression()
		if right == nil {
			return nil
		}
		expr := ast.NewAt(ast.KindExprBinary, op.Value, tokenPos(op))
		expr.AddChildren(left, right)
		left = expr
	}

	return left
}

func (p *Parser) parseMultiplicativeExpression() *ast.Node {
	left := p.parseUnaryExpression()
	if left == nil {
		return nil
	}

	for p.current.Type == TokenStar || p.current.Type == TokenSlash ||
		p.current.Type == TokenPercent {
		op := p.current
		p.advance()
		right := p.parseUnaryExpression()
		if right == nil {
			return nil
		}
		expr := ast.NewAt(ast.KindExprBinary, op.Value, tokenPos(op))
		expr.AddChildren(left, right)
		left = expr
	}

	return left
}

func (p *Parser) parseUnaryExpression() *ast.Node {
	if p.current.Type == TokenMinus || p.current.Type == TokenBang {
		op := p.current
		p.advance()
		operand := p.parseUnaryExpression()
		if operand == nil {
			return nil
		}
		expr := ast.NewAt(ast.KindExprUnary, op.Value, tokenPos(op))
		expr.AddChild(operand)
		return expr
	}

	return p.parsePrimaryExpression()
}

func (p *Parser) parsePrimaryExpression() *ast.Node {
	switch p.current.Type {
	case TokenNumber, TokenString, TokenTrue, TokenFalse, TokenNull, TokenLeftBracket:
		return p.parseValue()
	case TokenIdentifier:
		return p.parsePath()
	case TokenLeftParen:
		p.advance()
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		if p.current.Type != TokenRightParen {
			p.report(p.current, fmt.Sprintf("Expected ')' after expression, got %s", tokenText(p.current)))
			return nil
		}
		p.advance()
		return expr
	case TokenError:
		p.report(p.current, p.current.Value)
		p.advance()
		return nil
	default:
		p.report(p.current, fmt.Sprintf("Expected expression, got %s", tokenText(p.current)))
		return nil
	}
}

// advance moves to the next token
func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.lexer.NextToken()
}

// report records a syntax error and marks the parse as failed. Errors
// beyond the configured cap are counted but not kept.
func (p *Parser) report(tok Token, message string) {
	p.hadError = true
	if len(p.errors) >= p.options.MaxErrors {
		return
	}

	p.errors = append(p.errors, &ParseError{
		Message:  message,
		Position: tok.Position,
		Line:     tok.Line,
		Column:   tok.Column,
		Token:    tok.Value,
	})

	p.logger.Debug("syntax error", pclog.Fields{
		"line":    tok.Line,
		"column":  tok.Column,
		"message": message,
	})
}

// attachError hangs an error node for the most recent syntax error into
// the tree, keeping partial trees inspectable during recovery
func (p *Parser) attachError(parent *ast.Node) {
	if parent == nil || len(p.errors) == 0 {
		return
	}
	last := p.errors[len(p.errors)-1]
	parent.AddChild(ast.NewAt(ast.KindError, last.Message, ast.Position{
		Line:   last.Line,
		Column: last.Column,
		Offset: last.Position,
	}))
}

// synchronize advances to the next safe point after a syntax error.
// Statement separators are consumed; braces are left for the enclosing
// construct to handle.
func (p *Parser) synchronize() {
	for p.current.Type != TokenEOF {
		switch p.current.Type {
		case TokenSemicolon:
			p.advance()
			return
		case TokenLeftBrace, TokenRightBrace:
			return
		}
		p.advance()
	}
}

// tokenPos converts token coordinates into an AST position
func tokenPos(tok Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}

// tokenText renders a token for error messages
func tokenText(tok Token) string {
	if tok.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", tok.Value)
}
