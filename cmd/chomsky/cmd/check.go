package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/chomsky"
	"github.com/msto63/chomsky/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <hilfetext-datei>...",
	Short: "Hilfetext auf Wohlgeformtheit pruefen",
	Long: `Prueft, ob die Hilfetexte in den angegebenen Dateien einen
gueltigen Usage-Abschnitt und eine parsebare Grammatik enthalten.

Beispiele:
  chomsky check naval_fate.txt
  chomsky check docs/*.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine := chomsky.NewEngine()
	failed := 0

	for _, path := range args {
		doc, err := readDoc(path)
		if err != nil {
			printError("Hilfetext konnte nicht gelesen werden", err)
			failed++
			continue
		}

		if err := engine.Validate(doc); err != nil {
			fmt.Printf("%-30s FEHLER  [%s] %s\n", path, parser.KindOf(err), err.Error())
			failed++
			continue
		}

		fmt.Printf("%-30s OK\n", path)
		printInventory(doc)
	}

	if failed > 0 {
		fmt.Printf("\n%d von %d Datei(en) fehlerhaft\n", failed, len(args))
		os.Exit(1)
	}

	return nil
}

// printInventory lists the declared options of a validated help text
func printInventory(doc string) {
	for _, opt := range parser.ParseDescriptions(doc) {
		forms := opt.Short
		if opt.Short != "" && opt.Long != "" {
			forms = opt.Short + ", " + opt.Long
		} else if opt.Long != "" {
			forms = opt.Long
		}

		if opt.ArgCount > 0 {
			fmt.Printf("  %-24s nimmt Wert (default: %s)\n", forms, opt.Value)
		} else {
			fmt.Printf("  %-24s Schalter\n", forms)
		}
	}
}
