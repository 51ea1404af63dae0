package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pcerror "github.com/msto63/polycall/foundation/core/error"
	"github.com/msto63/polycall/foundation/utils/filex"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <datei>",
	Short: "Formatiert eine Konfigurationsdatei kanonisch",
	Long: `Formatiert eine Polycallfile-Datei in die kanonische Form:
stabile Einrückung, doppelte Anführungszeichen und einheitliche
Blockstruktur. Makros und Direktiven bleiben unverändert erhalten.

Ohne -w wird das Ergebnis auf die Standardausgabe geschrieben. Mit -w
wird die Datei atomar ersetzt, ein Abbruch hinterlässt also nie eine
halb geschriebene Datei.

Beispiele:
  polycall fmt app.pcf
  polycall fmt -w app.pcf`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Schreibt das Ergebnis in die Datei zurück")
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]

	engine, err := newEngine()
	if err != nil {
		return err
	}

	source, err := filex.ReadString(path)
	if err != nil {
		printError("Datei konnte nicht gelesen werden", err)
		return wrapFileError(err, path)
	}

	root, err := engine.Parse(source)
	if err != nil {
		reportDiagnostics(path, err, engine.ParseErrors())
		return err
	}

	formatted := engine.Print(root)
	if fmtWrite {
		if err := filex.WriteFileAtomic(path, []byte(formatted), 0644); err != nil {
			printError("Datei konnte nicht geschrieben werden", err)
			return pcerror.Wrap(err, fmt.Sprintf("failed to write file: %s", path)).
				WithCode(pcerror.CodeIOError)
		}
		return nil
	}

	fmt.Print(formatted)
	return nil
}

func wrapFileError(err error, path string) error {
	if errors.Is(err, os.ErrNotExist) {
		return pcerror.Wrap(err, fmt.Sprintf("file not found: %s", path)).
			WithCode(pcerror.CodeFileNotFound)
	}
	return pcerror.Wrap(err, fmt.Sprintf("failed to read file: %s", path)).
		WithCode(pcerror.CodeIOError)
}
