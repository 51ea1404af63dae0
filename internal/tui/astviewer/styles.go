// ============================================================================
// polycall - Polyglotte RPC-Plattform
// ============================================================================
//
// Package:     astviewer
// Description: Styles for the AST viewer TUI
// Author:      msto63
// Created:     2026-08-17
// License:     MIT
// ============================================================================

package astviewer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/polycall/foundation/polycallfile/ast"
)

// Color Palette - Same as other TUI components for consistency
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBg         = lipgloss.Color("#0F172A") // Slate 900
	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgHover    = lipgloss.Color("#334155") // Slate 700
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500

	// Node kind colors
	ColorSection   = lipgloss.Color("#8B5CF6") // Violet
	ColorStatement = lipgloss.Color("#06B6D4") // Cyan
	ColorValue     = lipgloss.Color("#10B981") // Emerald
	ColorDirective = lipgloss.Color("#F59E0B") // Amber
	ColorNodeError = lipgloss.Color("#DC2626") // Dark Red
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Tree row styles
var (
	TreeRowStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorBgSelected).
				Foreground(ColorText).
				Bold(true)

	TreeMarkerStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TreePositionStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	// Kind-specific styles
	KindSectionStyle = lipgloss.NewStyle().
				Foreground(ColorSection).
				Bold(true)

	KindStatementStyle = lipgloss.NewStyle().
				Foreground(ColorStatement).
				Bold(true)

	KindValueStyle = lipgloss.NewStyle().
			Foreground(ColorValue)

	KindDirectiveStyle = lipgloss.NewStyle().
				Foreground(ColorDirective).
				Bold(true)

	KindIdentifierStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	KindCommentStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Italic(true)

	KindExprStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	KindErrorStyle = lipgloss.NewStyle().
			Foreground(ColorNodeError).
			Background(lipgloss.Color("#450A0A")).
			Bold(true)
)

// Panel/Box styles
var (
	TreePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	ModeBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Mode badge styles
var (
	ModeActiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ModeInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Title panel style
var (
	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Fold markers
const (
	MarkerCollapsed = "▸ "
	MarkerExpanded  = "▾ "
	MarkerLeaf      = "  "
)

// Logo
const Logo = "polycall AST-Viewer"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderKindBadge renders a node kind badge with appropriate styling
func RenderKindBadge(kind ast.NodeKind) string {
	label := fmt.Sprintf("%-10s", kind.String())
	switch kind {
	case ast.KindSection:
		return KindSectionStyle.Render(label)
	case ast.KindStatement:
		return KindStatementStyle.Render(label)
	case ast.KindValueString, ast.KindValueNumber, ast.KindValueBoolean, ast.KindValueNull, ast.KindValueArray:
		return KindValueStyle.Render(label)
	case ast.KindDirective:
		return KindDirectiveStyle.Render(label)
	case ast.KindIdentifier:
		return KindIdentifierStyle.Render(label)
	case ast.KindComment:
		return KindCommentStyle.Render(label)
	case ast.KindExprBinary, ast.KindExprUnary:
		return KindExprStyle.Render(label)
	case ast.KindError:
		return KindErrorStyle.Render(label)
	default:
		return TreeRowStyle.Render(label)
	}
}

// RenderModeBadge renders a tree mode indicator
func RenderModeBadge(name string, active bool) string {
	if active {
		return ModeActiveStyle.Render(name)
	}
	return ModeInactiveStyle.Render(name)
}
