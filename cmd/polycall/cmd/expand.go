package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/polycall/foundation/polycallfile"
)

var expandLenient bool

var expandCmd = &cobra.Command{
	Use:   "expand <datei>",
	Short: "Expandiert Makros und reduziert Bedingungen",
	Long: `Verarbeitet eine Polycallfile-Datei vollständig: Makros werden
gesammelt und expandiert, @if-Direktiven ausgewertet und durch den
gewählten Zweig ersetzt. Das Ergebnis ist die reduzierte Konfiguration
in kanonischer Form auf der Standardausgabe.

Beispiele:
  polycall expand app.pcf
  polycall expand --lenient app.pcf`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().BoolVar(&expandLenient, "lenient", false,
		"Unaufgelöste Verweise ergeben null statt eines Fehlers")
}

func runExpand(cmd *cobra.Command, args []string) error {
	path := args[0]

	opts := engineOptions()
	if expandLenient {
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

	fmt.Print(engine.Print(root))
	return nil
}
