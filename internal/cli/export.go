package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/memload/internal/graph"
	"github.com/vvka-141/memload/pkg/cypher"
)

var exportCmd = &cobra.Command{
	Use:   "export <graph.json>",
	Short: "Print the generated Cypher statements without loading",
	Long: `Export translates the graph in the given JSON file into Cypher creation
statements and prints them to stdout, one per line, in load order: all node
statements first, then all edge statements.

Useful for inspecting what a load would execute, or for piping into another
tool.

Examples:
  memload export graph.json
  memload export graph.json > statements.cypher`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	g, err := graph.ReadFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for stmt, err := range cypher.Statements(g) {
		if err != nil {
			return err
		}
		fmt.Fprintln(out, stmt)
	}
	return nil
}
