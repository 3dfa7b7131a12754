// Package cli implements the memload command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "memload",
	Short: "Bulk graph loader for Bolt graph databases",
	Long: `memload translates a labeled graph into Cypher creation statements and bulk
loads them into a running Memgraph or Neo4j instance, optionally across
multiple concurrent workers.

Node statements are always fully committed before any edge statement runs,
since edges match their endpoints by logical id. Loading is best-effort:
there is no global transaction, and transient execution failures are retried
per statement rather than failing the load.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - Unsupported attribute value during statement generation
  13 - Statement execution failed
  14 - Input graph file not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for memload")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
