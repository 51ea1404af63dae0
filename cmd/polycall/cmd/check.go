package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	"github.com/msto63/polycall/foundation/polycallfile/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <datei>...",
	Short: "Prüft Konfigurationsdateien auf Fehler",
	Long: `Prüft eine oder mehrere Polycallfile-Dateien auf lexikalische,
syntaktische und semantische Fehler.

Jede Datei durchläuft die komplette Pipeline aus Parser, Makro-Expansion
und Bedingungsreduktion. Alle gefundenen Fehler werden mit Position im
Format datei:zeile:spalte ausgegeben.

Beispiele:
  polycall check app.pcf
  polycall check configs/base.pcf configs/prod.pcf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	var failed error
	for _, path := range args {
		if _, err := engine.ProcessFile(path); err != nil {
			// Positionslisten gehören immer zum zuletzt geparsten Lauf
			var parseErrors []*parser.ParseError
			if pcerror.HasCode(err, pcerror.CodeSyntaxError) {
				parseErrors = engine.ParseErrors()
			}
			reportDiagnostics(path, err, parseErrors)
			if failed == nil {
				failed = err
			}
			continue
		}
		fmt.Printf("%s: OK\n", path)
	}
	return failed
}
