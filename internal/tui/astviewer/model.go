// ============================================================================
// polycall - Polyglotte RPC-Plattform
// ============================================================================
//
// Package:     astviewer
// Description: Main Bubbletea model for the polycall AST viewer
// Author:      msto63
// Created:     2026-08-17
// License:     MIT
// ============================================================================

package astviewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	pclog "github.com/msto63/polycall/foundation/core/log"
	"github.com/msto63/polycall/foundation/polycallfile"
	"github.com/msto63/polycall/foundation/polycallfile/ast"
	"github.com/msto63/polycall/foundation/utils/filex"
)

// Version is set during build
var Version = "0.1.0"

// Config holds AST viewer configuration
type Config struct {
	// Path is the configuration file to display
	Path string
	// Processed starts the viewer on the processed tree instead of the raw one
	Processed bool
}

// Model is the main Bubbletea model for the AST viewer
type Model struct {
	// State
	width  int
	height int
	ready  bool
	err    error

	// Components
	viewport viewport.Model

	// Tree state
	rawRoot       *ast.Node
	processedRoot *ast.Node
	processedErr  error
	showProcessed bool
	collapsed     map[*ast.Node]bool
	rows          []row
	cursor        int
	nodeCount     int

	// Configuration
	path           string
	startProcessed bool
}

// treeLoadedMsg carries the parsed trees back into the update loop
type treeLoadedMsg struct {
	raw          *ast.Node
	processed    *ast.Node
	processedErr error
	err          error
}

// New creates a new AST viewer model
func New(cfg Config) Model {
	return Model{
		path:           cfg.Path,
		startProcessed: cfg.Processed,
		collapsed:      make(map[*ast.Node]bool),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTree,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title + mode bar
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case treeLoadedMsg:
		m.err = msg.err
		m.rawRoot = msg.raw
		m.processedRoot = msg.processed
		m.processedErr = msg.processedErr
		if m.startProcessed && m.processedRoot != nil {
			m.showProcessed = true
		}
		m.collapsed = make(map[*ast.Node]bool)
		m.cursor = 0
		m.rebuildRows()
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter, tea.KeySpace:
		m.toggleFold()
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		// Quit
		case "q":
			return m, tea.Quit

		// Cursor movement - vi style
		case "j":
			m.moveCursor(1)
			return m, nil
		case "k":
			m.moveCursor(-1)
			return m, nil

		// Expand everything
		case "e":
			m.collapsed = make(map[*ast.Node]bool)
			m.rebuildRows()
			return m, nil

		// Collapse to the top level
		case "c":
			m.collapsed = make(map[*ast.Node]bool)
			collapseBelowRoot(m.currentRoot(), m.collapsed)
			m.cursor = 0
			m.rebuildRows()
			return m, nil

		// Toggle raw/processed tree
		case "p":
			if m.processedRoot != nil {
				m.showProcessed = !m.showProcessed
				m.cursor = 0
				m.rebuildRows()
			}
			return m, nil

		// Go to top
		case "g":
			m.cursor = 0
			m.updateViewportContent()
			return m, nil

		// Go to bottom
		case "G":
			if len(m.rows) > 0 {
				m.cursor = len(m.rows) - 1
			}
			m.updateViewportContent()
			return m, nil
		}

	case tea.KeyPgUp:
		m.moveCursor(-m.viewport.Height)
		return m, nil

	case tea.KeyPgDown:
		m.moveCursor(m.viewport.Height)
		return m, nil

	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil

	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade AST-Viewer..."
	}

	var b strings.Builder

	// Header with logo
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Mode bar
	b.WriteString(m.renderModeBar())
	b.WriteString("\n")

	// Tree viewport
	b.WriteString(m.renderTreeArea())
	b.WriteString("\n")

	// Status bar
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	// Help bar
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and file path
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)
	path := SubHeaderStyle.Render(m.path)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		path,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderModeBar renders the raw/processed mode bar
func (m Model) renderModeBar() string {
	modes := fmt.Sprintf("%s  %s",
		RenderModeBadge("roher Baum", !m.showProcessed),
		RenderModeBadge("verarbeiteter Baum", m.showProcessed),
	)

	countStr := HelpDescStyle.Render(fmt.Sprintf("[%d Zeilen sichtbar]", len(m.rows)))

	// Hint when the processed tree is not available
	hint := ""
	if m.processedErr != nil {
		hint = "  " + StatusErrorStyle.Render("Verarbeitung fehlgeschlagen")
	}

	content := modes + "  " + countStr + hint

	return ModeBarStyle.Width(m.width - 2).Render(content)
}

// renderTreeArea renders the main tree viewport
func (m Model) renderTreeArea() string {
	style := TreePanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	// Left: node count
	leftPart := HelpDescStyle.Render(fmt.Sprintf("Knoten: %d", m.nodeCount))

	// Center: Version
	centerPart := HelpDescStyle.Render("v" + Version)

	// Right: load state
	var rightPart string
	if m.err != nil {
		rightPart = StatusErrorStyle.Render("Fehler: " + truncateString(m.err.Error(), 40))
	} else {
		rightPart = ModeActiveStyle.Render("Bereit")
	}

	// Calculate padding
	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	totalLen := leftLen + centerLen + rightLen
	availableSpace := m.width - totalLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("↑/↓", "Navigieren"),
		RenderKeyHint("Enter", "Ein-/Ausklappen"),
		RenderKeyHint("e", "Aufklappen"),
		RenderKeyHint("c", "Einklappen"),
		RenderKeyHint("p", "Roh/Verarbeitet"),
		RenderKeyHint("g/G", "Anfang/Ende"),
		RenderKeyHint("q", "Beenden"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with the visible tree rows
func (m *Model) updateViewportContent() {
	if len(m.rows) == 0 {
		if m.err != nil {
			m.viewport.SetContent(StatusErrorStyle.Render("Fehler: " + m.err.Error()))
		} else {
			m.viewport.SetContent(SubHeaderStyle.Render("Lade Baum..."))
		}
		return
	}

	var content strings.Builder
	for i, r := range m.rows {
		content.WriteString(m.renderRow(r, i == m.cursor))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
	m.syncViewport()
}

// renderRow renders a single tree row. Selected rows are styled as a
// whole so the highlight spans the entire line.
func (m Model) renderRow(r row, selected bool) string {
	indent := strings.Repeat("  ", r.depth)

	marker := MarkerLeaf
	if r.expandable {
		if r.expanded {
			marker = MarkerExpanded
		} else {
			marker = MarkerCollapsed
		}
	}

	label := nodeLabel(r.node)
	pos := r.node.Pos.String()

	if selected {
		plain := fmt.Sprintf("%s%s%-10s %s  %s", indent, marker, r.node.Kind.String(), label, pos)
		return SelectedRowStyle.Render(plain)
	}

	return fmt.Sprintf("%s%s%s %s  %s",
		indent,
		TreeMarkerStyle.Render(marker),
		RenderKindBadge(r.node.Kind),
		TreeRowStyle.Render(label),
		TreePositionStyle.Render(pos),
	)
}

// syncViewport keeps the cursor row inside the visible window
func (m *Model) syncViewport() {
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// moveCursor moves the cursor by delta rows, clamped to the tree
func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.updateViewportContent()
}

// toggleFold folds or unfolds the node under the cursor
func (m *Model) toggleFold() {
	if m.cursor >= len(m.rows) {
		return
	}
	target := m.rows[m.cursor]
	if !target.expandable {
		return
	}
	if m.collapsed[target.node] {
		delete(m.collapsed, target.node)
	} else {
		m.collapsed[target.node] = true
	}
	m.rebuildRows()
}

// rebuildRows recomputes the visible rows from the current tree and
// fold state
func (m *Model) rebuildRows() {
	root := m.currentRoot()
	m.rows = flattenTree(root, m.collapsed)
	m.nodeCount = ast.Count(root)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updateViewportContent()
}

// currentRoot returns the tree the viewer is currently showing
func (m Model) currentRoot() *ast.Node {
	if m.showProcessed && m.processedRoot != nil {
		return m.processedRoot
	}
	return m.rawRoot
}

// loadTree reads and parses the configuration file. The raw tree keeps
// directives in place, the processed one has macros expanded and
// conditionals reduced.
func (m Model) loadTree() tea.Msg {
	source, err := filex.ReadString(m.path)
	if err != nil {
		return treeLoadedMsg{err: err}
	}

	// Mostly silent logger, the alternate screen owns the terminal
	engine, err := polycallfile.NewEngine(polycallfile.Options{
		Logger:     pclog.GetDefault().WithLevel(pclog.LevelError),
		StrictEval: true,
	})
	if err != nil {
		return treeLoadedMsg{err: err}
	}

	raw, err := engine.Parse(source)
	if err != nil {
		return treeLoadedMsg{err: err}
	}

	processed, processedErr := engine.Process(source)

	return treeLoadedMsg{raw: raw, processed: processed, processedErr: processedErr}
}

// truncateString truncates a string to max length
func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

// Run starts the AST viewer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
