package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/chomsky"
	"github.com/msto63/chomsky/pattern"
)

var treePlain bool

// Colors
var (
	colorComposite = lipgloss.Color("#7C3AED")
	colorOption    = lipgloss.Color("#10B981")
	colorArgument  = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	compositeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorComposite)

	optionStyle = lipgloss.NewStyle().
			Foreground(colorOption)

	argumentStyle = lipgloss.NewStyle().
			Foreground(colorArgument)

	branchStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

var treeCmd = &cobra.Command{
	Use:   "tree <hilfetext-datei>",
	Short: "Grammatikbaum eines Hilfetexts anzeigen",
	Long: `Kompiliert den Usage-Abschnitt des Hilfetexts und gibt den
entstandenen Grammatikbaum aus.

Beispiele:
  chomsky tree naval_fate.txt
  chomsky tree naval_fate.txt --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().BoolVar(&treePlain, "plain", false, "Ohne Farben ausgeben")
}

func runTree(cmd *cobra.Command, args []string) error {
	doc, err := readDoc(args[0])
	if err != nil {
		printError("Hilfetext konnte nicht gelesen werden", err)
		os.Exit(1)
	}

	tree, err := chomsky.NewEngine().ParseTree(doc)
	if err != nil {
		printError("Hilfetext ist nicht wohlgeformt", err)
		os.Exit(1)
	}

	var sb strings.Builder
	renderNode(&sb, tree, "", true)
	fmt.Print(sb.String())

	return nil
}

// renderNode writes one node and recurses into its children with the usual
// box-drawing guides.
func renderNode(sb *strings.Builder, p pattern.Pattern, prefix string, last bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if last {
		connector = "└── "
		childPrefix = prefix + "    "
	}
	if prefix == "" && last {
		connector = ""
		childPrefix = ""
	}

	sb.WriteString(styleBranch(prefix + connector))
	sb.WriteString(nodeLabel(p))
	sb.WriteString("\n")

	children := pattern.ChildrenOf(p)
	for i, child := range children {
		renderNode(sb, child, childPrefix, i == len(children)-1)
	}
}

func nodeLabel(p pattern.Pattern) string {
	switch node := p.(type) {
	case *pattern.Argument:
		return styleArgument(node.Name)
	case *pattern.Command:
		return styleArgument(node.Name)
	case *pattern.Option:
		label := node.Name()
		if node.ArgCount > 0 {
			label += "=<wert>"
		}
		if !node.Value.IsNil() && node.Value.Type != pattern.ValueTypeBoolean {
			label += fmt.Sprintf("  (default: %s)", node.Value)
		}
		return styleOption(label)
	case *pattern.AnyOptions:
		return styleComposite("options")
	default:
		return styleComposite(p.Kind().String())
	}
}

func styleComposite(s string) string {
	if treePlain {
		return s
	}
	return compositeStyle.Render(s)
}

func styleOption(s string) string {
	if treePlain {
		return s
	}
	return optionStyle.Render(s)
}

func styleArgument(s string) string {
	if treePlain {
		return s
	}
	return argumentStyle.Render(s)
}

func styleBranch(s string) string {
	if treePlain {
		return s
	}
	return branchStyle.Render(s)
}
