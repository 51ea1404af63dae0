package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pcconfig "github.com/msto63/polycall/foundation/core/config"
	pcerror "github.com/msto63/polycall/foundation/core/error"
	pclog "github.com/msto63/polycall/foundation/core/log"
	"github.com/msto63/polycall/foundation/polycallfile"
	"github.com/msto63/polycall/foundation/polycallfile/parser"
)

var (
	cfgFile string
	verbose bool

	// toolConfig ist die beim Start einmal geladene Werkzeug-Konfiguration;
	// nil, wenn keine Konfigurationsdatei gefunden wurde
	toolConfig *pcconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "polycall",
	Short: "polycall - Polyglotte RPC-Plattform",
	Long: `polycall ist das Kommandozeilenwerkzeug der polycall-Plattform.

Es verarbeitet Polycallfile-Konfigurationen: Prüfung, Formatierung,
Makro-Expansion, Auswertung einzelner Werte und interaktive Inspektion
des Syntaxbaums.

Befehle:
  check    - Prüft Konfigurationsdateien auf Fehler
  fmt      - Formatiert eine Konfigurationsdatei kanonisch
  expand   - Expandiert Makros und reduziert Bedingungen
  eval     - Wertet einen einzelnen Konfigurationspfad aus
  inspect  - Interaktiver Syntaxbaum-Viewer
  version  - Zeigt die Version an`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Konfigurationsdatei des Werkzeugs (default: ./polycall.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Ausführliche Ausgabe")
}

// initConfig richtet den Logger ein und liest die Werkzeug-Konfiguration.
// Logs gehen auf stderr, damit die Ausgaben von fmt und expand auf stdout
// sauber bleiben.
func initConfig() {
	logger := pclog.GetDefault().
		WithOutput(os.Stderr).
		WithFormat(pclog.FormatConsole).
		WithLevel(pclog.LevelWarn)

	toolConfig = loadToolConfig()
	if toolConfig != nil {
		if name := toolConfig.GetString("log.level"); name != "" {
			if level, err := pclog.ParseLevel(name); err == nil {
				logger = logger.WithLevel(level)
			}
		}
		if name := toolConfig.GetString("log.format"); name != "" {
			if format, err := pclog.ParseFormat(name); err == nil {
				logger = logger.WithFormat(format)
			}
		}
	}

	if verbose {
		logger = logger.WithLevel(pclog.LevelDebug)
	}

	pclog.SetDefault(logger)
}

func loadToolConfig() *pcconfig.Config {
	if cfgFile != "" {
		cfg, err := pcconfig.Load(cfgFile)
		if err != nil {
			printError("Konfiguration konnte nicht geladen werden", err)
			os.Exit(pcerror.GetCode(err).ExitCode())
		}
		return cfg
	}

	cfg, err := pcconfig.DiscoverWithDefaults()
	if err != nil {
		printError("Konfigurationssuche fehlgeschlagen", err)
		return nil
	}
	return cfg
}

// engineOptions baut die Engine-Optionen aus der Werkzeug-Konfiguration.
// Fehlende Schlüssel bleiben null, damit die Engine ihre eigenen Defaults
// anwendet; strict ist standardmäßig an.
func engineOptions() polycallfile.Options {
	opts := polycallfile.Options{
		Logger:     pclog.GetDefault(),
		StrictEval: true,
	}
	if toolConfig == nil {
		return opts
	}
	opts.MaxInputLength = toolConfig.GetInt("engine.max_input_length")
	opts.MaxExpansionDepth = toolConfig.GetInt("engine.max_expansion_depth")
	opts.StrictEval = toolConfig.GetBool("engine.strict", true)
	return opts
}

func newEngine() (*polycallfile.Engine, error) {
	return polycallfile.NewEngine(engineOptions())
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// reportDiagnostics gibt alle Diagnosen eines Laufs im üblichen
// datei:zeile:spalte-Format auf stderr aus
func reportDiagnostics(path string, err error, parseErrors []*parser.ParseError) {
	if len(parseErrors) > 0 {
		for _, parseErr := range parseErrors {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, parseErr.Line, parseErr.Column, parseErr.Message)
		}
		return
	}
	if line, column, ok := pcerror.Position(err); ok {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, line, column, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
}
