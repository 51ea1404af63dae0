// ============================================================================
// polycall - Polyglotte RPC-Plattform
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the Polycallfile AST viewer TUI
// Author:      msto63
// Created:     2026-08-17
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/polycall/internal/tui/astviewer"
)

var inspectProcessed bool

var inspectCmd = &cobra.Command{
	Use:     "inspect <datei>",
	Aliases: []string{"ast", "tree"},
	Short:   "Startet den interaktiven Syntaxbaum-Viewer",
	Long: `Startet den interaktiven Polycallfile Syntaxbaum-Viewer.

Der Viewer zeigt den Syntaxbaum einer Konfigurationsdatei in einer
Terminal-UI an:

  - Auf- und Zuklappen einzelner Knoten
  - Art, Name und Quellposition jedes Knotens
  - Umschalten zwischen rohem und verarbeitetem Baum

Tastenkürzel:
  Pfeiltasten / j k  Auswahl bewegen
  Enter / Space      Knoten auf- oder zuklappen
  e                  Alles aufklappen
  c                  Alles zuklappen
  p                  Rohen/verarbeiteten Baum umschalten
  g / G              Zum Anfang / Ende springen
  q / Ctrl+C         Beenden`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectProcessed, "processed", false,
		"Startet mit dem verarbeiteten statt des rohen Baums")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := astviewer.Config{
		Path:      args[0],
		Processed: inspectProcessed,
	}

	return astviewer.Run(cfg)
}
