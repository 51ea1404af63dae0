// File: lexer.go
// Title: Polycallfile Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of Polycallfile
//              parsing. Converts configuration source text into a stream
//              of tokens with position information for error reporting.
//              The lexer never fails hard; malformed input is reported
//              through error tokens carrying a diagnostic message.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Identifiers and literals
	TokenIdentifier // server, max_retries
	TokenString     // "text" or 'text', quotes stripped
	TokenNumber     // 8080, 2.5, 100ms, 5GB
	TokenTrue       // true
	TokenFalse      // false
	TokenNull       // null

	// Structure
	TokenEquals       // =
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenComma        // ,
	TokenDot          // .
	TokenSemicolon    // ;

	// Directives and comments
	TokenAt        // bare @ without a directive name
	TokenDirective // @define, @import, ...; value carries the name without @
	TokenComment   // # line comment; value carries the text without #

	// Expression operators
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenPercent   // %
	TokenEqEq      // ==
	TokenNotEq     // !=
	TokenLess      // <
	TokenLessEq    // <=
	TokenGreater   // >
	TokenGreaterEq // >=
	TokenAnd       // &&
	TokenOr        // ||
	TokenBang      // !
)

// maxUnitSuffix is the longest alphabetic unit a number may carry, as in
// 100ms or 5GB. Longer letter runs are tokenized separately.
const maxUnitSuffix = 3

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return fmt.Sprintf("ERROR(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenTrue:
		return "TRUE"
	case TokenFalse:
		return "FALSE"
	case TokenNull:
		return "NULL"
	case TokenEquals:
		return "EQUALS"
	case TokenLeftBrace:
		return "LEFT_BRACE"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	case TokenLeftBracket:
		return "LEFT_BRACKET"
	case TokenRightBracket:
		return "RIGHT_BRACKET"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenComma:
		return "COMMA"
	case TokenDot:
		return "DOT"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenAt:
		return "AT"
	case TokenDirective:
		return "DIRECTIVE"
	case TokenComment:
		return "COMMENT"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenPercent:
		return "PERCENT"
	case TokenEqEq:
		return "EQ_EQ"
	case TokenNotEq:
		return "NOT_EQ"
	case TokenLess:
		return "LESS"
	case TokenLessEq:
		return "LESS_EQ"
	case TokenGreater:
		return "GREATER"
	case TokenGreaterEq:
		return "GREATER_EQ"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenBang:
		return "BANG"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of Polycallfile input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input. After the end of the
// input it keeps returning EOF tokens.
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenEqEq, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenEquals, l.ch, pos, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenNotEq, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenBang, l.ch, pos, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenLessEq, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenLess, l.ch, pos, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenGreaterEq, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenGreater, l.ch, pos, line, column)
		}
	case '&':
		if l.peekChar() == '&' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenAnd, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = errorToken("Unexpected character '&'", pos, line, column)
		}
	case '|':
		if l.peekChar() == '|' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenOr, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = errorToken("Unexpected character '|'", pos, line, column)
		}
	case '+':
		tok = newToken(TokenPlus, l.ch, pos, line, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos, line, column)
	case '*':
		tok = newToken(TokenStar, l.ch, pos, line, column)
	case '/':
		tok = newToken(TokenSlash, l.ch, pos, line, column)
	case '%':
		tok = newToken(TokenPercent, l.ch, pos, line, column)
	case '.':
		tok = newToken(TokenDot, l.ch, pos, line, column)
	case ',':
		tok = newToken(TokenComma, l.ch, pos, line, column)
	case ';':
		tok = newToken(TokenSemicolon, l.ch, pos, line, column)
	case '{':
		tok = newToken(TokenLeftBrace, l.ch, pos, line, column)
	case '}':
		tok = newToken(TokenRightBrace, l.ch, pos, line, column)
	case '[':
		tok = newToken(TokenLeftBracket, l.ch, pos, line, column)
	case ']':
		tok = newToken(TokenRightBracket, l.ch, pos, line, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case '#':
		tok.Type = TokenComment
		tok.Value = l.readComment()
		tok.Position = pos
		tok.Line = line
		tok.Column = column
		return tok // Early return, current char is the newline or EOF
	case '@':
		if isLetter(l.peekChar()) {
			l.readChar() // Step onto the directive name
			tok.Type = TokenDirective
			tok.Value = l.readIdentifier()
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			return tok // Early return to avoid readChar()
		}
		tok = newToken(TokenAt, l.ch, pos, line, column)
	case '"', '\'':
		value, terminated := l.readString(l.ch)
		if !terminated {
			return Token{Type: TokenError, Value: "Unterminated string", Position: pos, Line: line, Column: column}
		}
		tok = Token{Type: TokenString, Value: value, Position: pos, Line: line, Column: column}
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
		return tok // Early return, nothing left to consume
	default:
		if isLetter(l.ch) {
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			tok.Value = l.readIdentifier()
			tok.Type = lookupIdent(tok.Value)
			return tok // Early return to avoid readChar()
		} else if isDigit(l.ch) {
			tok.Type = TokenNumber
			tok.Value = l.readNumber()
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			return tok // Early return to avoid readChar()
		}
		tok = errorToken(fmt.Sprintf("Unexpected character '%c'", l.ch), pos, line, column)
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input including the trailing EOF.
// The first error token, if any, is also reported as an error value; the
// token stream remains complete either way.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	var firstErr error

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenError && firstErr == nil {
			firstErr = fmt.Errorf("%s at line %d, column %d (position %d)",
				tok.Value, tok.Line, tok.Column, tok.Position)
		}
		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens, firstErr
}

// TokenizeInput is a convenience function to tokenize a string directly
func TokenizeInput(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	if l.readPos <= len(l.input) {
		l.position = l.readPos
	}
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (letters, digits, underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal: an integer or decimal, optionally
// followed by a short alphabetic unit such as ms, s, KB or GB. The unit
// is kept verbatim in the token value; interpretation is left to later
// stages.
func (l *Lexer) readNumber() string {
	start := l.position

	// Read integer part
	for isDigit(l.ch) {
		l.readChar()
	}

	// Check for decimal point
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	// Check for a unit suffix; longer letter runs are not a unit and are
	// left for the next token
	if run := l.letterRun(); run > 0 && run <= maxUnitSuffix {
		for i := 0; i < run; i++ {
			l.readChar()
		}
	}

	return l.input[start:l.position]
}

// letterRun counts the consecutive plain letters starting at the current
// character
func (l *Lexer) letterRun() int {
	run := 0
	for i := l.position; i < len(l.input); i++ {
		c := l.input[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			break
		}
		run++
	}
	return run
}

// readString reads a quoted string literal terminated by the given quote
// character. Escape sequences are copied verbatim; a backslash only
// prevents the following character from closing the string. The second
// return value is false when the input ends before the closing quote.
func (l *Lexer) readString(quote byte) (string, bool) {
	start := l.position + 1 // Skip opening quote

	for {
		l.readChar()
		if l.ch == quote {
			return l.input[start:l.position], true
		}
		if l.ch == 0 {
			return l.input[start:l.position], false
		}
		if l.ch == '\\' {
			l.readChar() // Skip escaped character
			if l.ch == 0 {
				return l.input[start:l.position], false
			}
		}
	}
}

// readComment reads a line comment up to, but not including, the line end
func (l *Lexer) readComment() string {
	start := l.readPos // Skip the # marker
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	if start > len(l.input) {
		return ""
	}
	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Utility functions

// newToken creates a new token with the given parameters
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// errorToken creates an error token carrying a diagnostic message
func errorToken(message string, pos, line, column int) Token {
	return Token{
		Type:     TokenError,
		Value:    message,
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isLetter checks if the character can start or continue an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywords maps reserved words to their token types; matching is
// case-sensitive, so True or NULL remain plain identifiers
var keywords = map[string]TokenType{
	"true":  TokenTrue,
	"false": TokenFalse,
	"null":  TokenNull,
}

// lookupIdent returns the keyword token type for reserved words and
// TokenIdentifier for everything else
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdentifier
}
