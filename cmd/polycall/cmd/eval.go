package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/polycall/foundation/polycallfile"
)

var evalLenient bool

var evalCmd = &cobra.Command{
	Use:   "eval <datei> <pfad>",
	Short: "Wertet einen einzelnen Konfigurationspfad aus",
	Long: `Verarbeitet eine Polycallfile-Datei und wertet anschließend den
angegebenen Punktpfad gegen die reduzierte Konfiguration aus.
Ausgegeben werden Wert und Typ.

Beispiele:
  polycall eval app.pcf server.port
  polycall eval app.pcf network.timeout`,
	Args: cobra.ExactArgs(2),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolVar(&evalLenient, "lenient", false,
		"Unaufgelöste Verweise ergeben null statt eines Fehlers")
}

func runEval(cmd *cobra.Command, args []string) error {
	path, valuePath := args[0], args[1]

	opts := engineOptions()
	if evalLenient {
		opts.StrictEval = false
	}
	engine, err := polycallfile.NewEngine(opts)
	if err != nil {
		return err
	}

	root, err := engine.ProcessFile(path)
	if err != nil {
		reportDiagnostics(path, err, engine.ParseErrors())
		return err
	}

	value, err := engine.Evaluate(root, valuePath)
	if err != nil {
		reportDiagnostics(path, err, nil)
		return err
	}

	fmt.Printf("%s = %s (%s)\n", valuePath, value.AsString(), value.Type)
	return nil
}
