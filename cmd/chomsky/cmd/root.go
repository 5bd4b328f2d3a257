package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/chomsky/core/log"
)

var (
	cfgFile string
	verbose bool
)

// cliConfig holds the optional TOML configuration of the tool
type cliConfig struct {
	Output       string `toml:"output"`
	OptionsFirst bool   `toml:"options_first"`
	LogLevel     string `toml:"log_level"`
}

var config = cliConfig{
	Output: "text",
}

var rootCmd = &cobra.Command{
	Use:   "chomsky",
	Short: "chomsky - Kommandozeilen-Parser aus dem Hilfetext",
	Long: `chomsky leitet die Kommandozeilen-Schnittstelle eines Programms
direkt aus dessen Hilfetext ab.

Befehle:
  parse    - Argumente gegen einen Hilfetext parsen
  check    - Hilfetext auf Wohlgeformtheit pruefen
  tree     - Grammatikbaum eines Hilfetexts anzeigen`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./chomsky.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// setup loads the optional TOML config and adjusts the default logger
func setup() error {
	path := cfgFile
	if path == "" {
		path = "chomsky.toml"
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return fmt.Errorf("Config-Datei %s konnte nicht gelesen werden: %v", path, err)
		}
	}

	level := mdwlog.LevelWarn
	if config.LogLevel != "" {
		level = mdwlog.ParseLevel(config.LogLevel)
	}
	if verbose {
		level = mdwlog.LevelDebug
	}
	mdwlog.SetDefault(mdwlog.GetDefault().WithLevel(level))

	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// readDoc loads the help text from a file, or from stdin for "-"
func readDoc(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
