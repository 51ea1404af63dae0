// File: printer.go
// Title: Polycallfile Canonical Source Printer
// Description: Renders a syntax tree back into Polycallfile source text.
//              The output is canonical: stable indentation, double-quoted
//              strings where possible and no optional semicolons, so that
//              printing and re-parsing yields an equivalent tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial printer implementation

package ast

import (
	"strings"
)

// DefaultIndent is the indentation unit used by the canonical printer
const DefaultIndent = "    "

// Printer renders a tree as canonical Polycallfile source
type Printer struct {
	buffer strings.Builder
	indent string
	depth  int
}

// NewPrinter creates a printer using DefaultIndent
func NewPrinter() *Printer {
	return &Printer{indent: DefaultIndent}
}

// NewPrinterIndent creates a printer with a custom indentation unit
func NewPrinterIndent(indent string) *Printer {
	return &Printer{indent: indent}
}

// Print renders the subtree and returns the source text. The synthetic
// root section renders as a sequence of top-level entries without braces.
func (p *Printer) Print(node *Node) string {
	p.buffer.Reset()
	p.depth = 0
	if node == nil {
		return ""
	}
	if node.Kind == KindSection && node.IsRoot() {
		for _, child := range node.Children {
			p.writeEntry(child)
		}
	} else {
		p.writeEntry(node)
	}
	return p.buffer.String()
}

// PrintSource renders a subtree with the default printer
func PrintSource(node *Node) string {
	return NewPrinter().Print(node)
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth; i++ {
		p.buffer.WriteString(p.indent)
	}
}

// writeEntry renders one section body entry on its own line
func (p *Printer) writeEntry(node *Node) {
	switch node.Kind {
	case KindSection:
		p.writeIndent()
		p.buffer.WriteString(node.Name)
		p.buffer.WriteString(" ")
		p.writeBlock(node)
		p.buffer.WriteString("\n")
	case KindStatement:
		p.writeIndent()
		p.buffer.WriteString(node.Name)
		p.buffer.WriteString(" = ")
		if value := node.Value(); value != nil {
			p.writeValue(value)
		}
		p.buffer.WriteString("\n")
	case KindDirective:
		p.writeDirective(node)
	case KindComment:
		p.writeIndent()
		p.buffer.WriteString("# ")
		p.buffer.WriteString(strings.TrimSpace(node.Name))
		p.buffer.WriteString("\n")
	case KindError:
		// Unparseable subtrees carry no renderable source
	default:
		p.writeIndent()
		p.writeValue(node)
		p.buffer.WriteString("\n")
	}
}

// writeBlock renders the braces and body of a section-like node
func (p *Printer) writeBlock(node *Node) {
	p.buffer.WriteString("{\n")
	p.depth++
	for _, child := range node.Children {
		p.writeEntry(child)
	}
	p.depth--
	p.writeIndent()
	p.buffer.WriteString("}")
}

func (p *Printer) writeDirective(node *Node) {
	switch node.Name {
	case "define":
		p.writeIndent()
		p.buffer.WriteString("@define")
		if len(node.Children) > 0 {
			p.buffer.WriteString(" ")
			p.buffer.WriteString(node.Children[0].Name)
		}
		if len(node.Children) > 1 {
			p.buffer.WriteString(" ")
			p.writeValue(node.Children[1])
		}
		p.buffer.WriteString("\n")
	case "import":
		p.writeIndent()
		p.buffer.WriteString("@import")
		if len(node.Children) > 0 {
			p.buffer.WriteString(" ")
			p.writeValue(node.Children[0])
		}
		p.buffer.WriteString("\n")
	case "if":
		p.writeIndent()
		p.buffer.WriteString("@if (")
		if len(node.Children) > 0 {
			p.writeExpr(node.Children[0], false)
		}
		p.buffer.WriteString(") ")
		if len(node.Children) > 1 {
			p.writeBlock(node.Children[1])
		} else {
			p.buffer.WriteString("{\n")
			p.writeIndent()
			p.buffer.WriteString("}")
		}
		if len(node.Children) > 2 {
			p.buffer.WriteString(" else ")
			p.writeBlock(node.Children[2])
		}
		p.buffer.WriteString("\n")
	case "for":
		p.writeIndent()
		p.buffer.WriteString("@for ")
		if len(node.Children) > 0 {
			p.buffer.WriteString(node.Children[0].Name)
		}
		p.buffer.WriteString(" in ")
		if len(node.Children) > 1 {
			p.writeValue(node.Children[1])
		}
		p.buffer.WriteString(" ")
		if len(node.Children) > 2 {
			p.writeBlock(node.Children[2])
		} else {
			p.buffer.WriteString("{\n")
			p.writeIndent()
			p.buffer.WriteString("}")
		}
		p.buffer.WriteString("\n")
	default:
		p.writeIndent()
		p.buffer.WriteString("@")
		p.buffer.WriteString(node.Name)
		p.buffer.WriteString("\n")
	}
}

// writeValue renders a value in expression position, without a trailing
// newline
func (p *Printer) writeValue(node *Node) {
	switch node.Kind {
	case KindValueString:
		p.buffer.WriteString(quoteString(node.Name))
	case KindValueNumber, KindValueBoolean, KindIdentifier:
		p.buffer.WriteString(node.Name)
	case KindValueNull:
		p.buffer.WriteString("null")
	case KindValueArray:
		p.buffer.WriteString("[")
		for i, element := range node.Children {
			if i > 0 {
				p.buffer.WriteString(", ")
			}
			p.writeValue(element)
		}
		p.buffer.WriteString("]")
	case KindExprBinary, KindExprUnary:
		p.writeExpr(node, false)
	}
}

// writeExpr renders an expression; operands are parenthesized so that
// the printed form re-parses to the same tree
func (p *Printer) writeExpr(node *Node, parenthesize bool) {
	switch node.Kind {
	case KindExprBinary:
		if parenthesize {
			p.buffer.WriteString("(")
		}
		if len(node.Children) > 0 {
			p.writeExpr(node.Children[0], true)
		}
		p.buffer.WriteString(" ")
		p.buffer.WriteString(node.Name)
		p.buffer.WriteString(" ")
		if len(node.Children) > 1 {
			p.writeExpr(node.Children[1], true)
		}
		if parenthesize {
			p.buffer.WriteString(")")
		}
	case KindExprUnary:
		p.buffer.WriteString(node.Name)
		if operand := node.Value(); operand != nil {
			p.writeExpr(operand, true)
		}
	default:
		p.writeValue(node)
	}
}

// quoteString picks a quote character the content does not contain
// outside an escape pair. Lexed content keeps escape pairs verbatim and
// never holds its own delimiter bare, so one of the two quote characters
// is always free and the content re-lexes unchanged. Hand-built content
// with both quotes bare gets its double quotes escaped to stay
// parseable.
func quoteString(s string) string {
	hasDouble := hasUnescaped(s, '"')
	hasSingle := hasUnescaped(s, '\'')
	switch {
	case hasDouble && hasSingle:
		return `"` + escapeQuotes(s, '"') + `"`
	case hasDouble:
		return "'" + s + "'"
	default:
		return `"` + s + `"`
	}
}

// hasUnescaped reports whether ch occurs in s outside an escape pair
func hasUnescaped(s string, ch byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == ch {
			return true
		}
	}
	return false
}

// escapeQuotes prefixes every bare occurrence of quote with a backslash,
// leaving existing escape pairs untouched
func escapeQuotes(s string, quote byte) string {
	var out strings.Builder
	out.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			out.WriteByte(s[i])
			i++
			out.WriteByte(s[i])
			continue
		}
		if s[i] == quote {
			out.WriteByte('\\')
		}
		out.WriteByte(s[i])
	}
	return out.String()
}
