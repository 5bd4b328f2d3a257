package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/chomsky"
	"github.com/msto63/chomsky/parser"
)

var (
	parseOutput       string
	parseOptionsFirst bool
	parseVersion      string
)

var parseCmd = &cobra.Command{
	Use:   "parse <hilfetext-datei> [-- <argumente>...]",
	Short: "Argumente gegen einen Hilfetext parsen",
	Long: `Parst eine Argumentliste gegen den Hilfetext aus der angegebenen
Datei und gibt die gebundenen Werte aus. Mit "-" wird der Hilfetext
von der Standardeingabe gelesen.

Beispiele:
  chomsky parse naval_fate.txt -- ship Guardian move 10 50 --speed=20
  chomsky parse naval_fate.txt --output json -- ship new Guardian
  cat naval_fate.txt | chomsky parse - -- --help`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Ausgabeformat: text, json oder yaml")
	parseCmd.Flags().BoolVar(&parseOptionsFirst, "options-first", false, "Optionen nur vor dem ersten Positionsargument erkennen")
	parseCmd.Flags().StringVar(&parseVersion, "doc-version", "", "Versionstext, den --version im Hilfetext melden soll")
}

func runParse(cmd *cobra.Command, args []string) error {
	doc, err := readDoc(args[0])
	if err != nil {
		printError("Hilfetext konnte nicht gelesen werden", err)
		os.Exit(1)
	}

	engine := chomsky.NewEngine(chomsky.Options{
		Help:         true,
		Version:      parseVersion,
		OptionsFirst: parseOptionsFirst || config.OptionsFirst,
	})

	opts, err := engine.ParseArgs(doc, args[1:])
	if err != nil {
		var exit *chomsky.Exit
		if errors.As(err, &exit) {
			fmt.Println(exit.Text)
			os.Exit(exit.Code)
		}
		if parser.IsUserError(err) {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(2)
		}
		printError("Hilfetext ist nicht wohlgeformt", err)
		os.Exit(1)
	}

	if err := printOpts(opts); err != nil {
		printError("Ergebnis konnte nicht ausgegeben werden", err)
		os.Exit(1)
	}

	return nil
}

func printOpts(opts chomsky.Opts) error {
	format := parseOutput
	if format == "" {
		format = config.Output
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(opts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(map[string]interface{}(opts))
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case "text", "":
		keys := make([]string, 0, len(opts))
		for key := range opts {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%-20s %v\n", key, formatValue(opts[key]))
		}
	default:
		return fmt.Errorf("unbekanntes Ausgabeformat: %s", format)
	}

	return nil
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case []string:
		if len(t) == 0 {
			return "[]"
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
