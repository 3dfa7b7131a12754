package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/memload/internal/config"
	"github.com/vvka-141/memload/internal/db"
	"github.com/vvka-141/memload/internal/graph"
	"github.com/vvka-141/memload/internal/logging"
	"github.com/vvka-141/memload/internal/retry"
	"github.com/vvka-141/memload/pkg/loader"
	"github.com/vvka-141/memload/pkg/memload"
)

var loadCmd = &cobra.Command{
	Use:   "load <graph.json>",
	Short: "Load a graph into a running database",
	Long: `Load translates the graph in the given JSON file into Cypher creation
statements and executes them against the target database.

The load runs in two phases: all node statements are partitioned across the
workers and committed first, then all edge statements. Each worker owns its
own connection and re-queues statements that fail with transient errors, up
to the per-statement attempt budget.

Password Authentication:
  For security, the password is NOT accepted as a CLI flag. Use one of:
    1. $MEMLOAD_PASSWORD environment variable (also read from .env)
    2. --password-prompt for an interactive prompt

Examples:
  # Load into a local Memgraph with default worker count
  memload load graph.json

  # Load into a remote Neo4j with 8 workers
  memload load graph.json -H db.example.com -U neo4j --password-prompt -w 8

  # Reproduce the historical truncating partitioner
  memload load graph.json --remainder drop`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

type loadFlagValues struct {
	conn        connFlagValues
	workers     int
	remainder   string
	maxAttempts int
	timeout     time.Duration
}

var loadFlags loadFlagValues

func init() {
	rootCmd.AddCommand(loadCmd)

	// Granular connection flags
	// Precedence: flag > environment variable > memload.yaml > default
	loadCmd.Flags().StringVarP(&loadFlags.conn.host, "host", "H", "",
		"Database server host\n"+
			"Precedence: --host > $MEMLOAD_HOST > memload.yaml > 127.0.0.1")
	loadCmd.Flags().IntVarP(&loadFlags.conn.port, "port", "p", 0,
		"Bolt port\n"+
			"Precedence: --port > $MEMLOAD_PORT > memload.yaml > 7687")
	loadCmd.Flags().StringVarP(&loadFlags.conn.username, "username", "U", "",
		"Database user (default: $MEMLOAD_USERNAME, or unauthenticated)")
	loadCmd.Flags().StringVarP(&loadFlags.conn.database, "database", "d", "",
		"Named database on multi-database servers (default: server default)")
	loadCmd.Flags().StringVar(&loadFlags.conn.scheme, "scheme", "",
		"Connection URI scheme: bolt|bolt+s|bolt+ssc|neo4j|neo4j+s|neo4j+ssc\n"+
			"(default: bolt)")
	loadCmd.Flags().BoolVar(&loadFlags.conn.passwordPrompt, "password-prompt", false,
		"Prompt for the password interactively instead of reading $MEMLOAD_PASSWORD")

	// Load workflow flags
	loadCmd.Flags().IntVarP(&loadFlags.workers, "workers", "w", 0,
		"Concurrent load workers per phase\n"+
			"(default: half the logical CPUs, at least 1)")
	loadCmd.Flags().StringVar(&loadFlags.remainder, "remainder", "",
		"Remainder policy when statements don't divide evenly across workers:\n"+
			"round-robin (nothing dropped, default) or drop (historical truncation)")
	loadCmd.Flags().IntVar(&loadFlags.maxAttempts, "max-attempts", 0,
		"Per-statement execution budget inside a worker\n"+
			"-1 retries a transiently failing statement forever (default 10)")

	// Timeout flag - catastrophic failure protection, not normal timeout control
	loadCmd.Flags().DurationVar(&loadFlags.timeout, "timeout", 0,
		"Abort the whole load after this duration (default: no timeout)\n"+
			"Protects against stuck connections and endless retries\n"+
			"Examples: 30s, 5m, 1h30m")
}

func runLoad(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	graphPath := args[0]

	cfg, err := buildLoadConfig(cmd, graphPath, verbose)
	if err != nil {
		return err
	}

	g, err := graph.ReadFile(graphPath)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[VERBOSE] Graph: %d node(s), %d edge(s)\n",
			g.NodeCount(), g.EdgeCount())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connector := db.NewBoltConnector(cfg.conn)
	defer connector.Close(context.Background()) //nolint:errcheck

	l, err := loader.New(connector, retry.NewBoltErrorClassifier(), logging.NewConsoleLogger(verbose), cfg.load)
	if err != nil {
		return err
	}
	return l.Load(ctx, g)
}

type resolvedLoadConfig struct {
	conn *memload.ConnectionConfig
	load memload.LoadConfig
}

// buildLoadConfig builds the connection and load configuration from CLI
// flags, environment, and the optional memload.yaml next to the graph file.
func buildLoadConfig(cmd *cobra.Command, graphPath string, verbose bool) (resolvedLoadConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(filepath.Dir(graphPath))
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return resolvedLoadConfig{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	connCfg, err := resolveConnection(&loadFlags.conn, projectCfg, verbose)
	if err != nil {
		return resolvedLoadConfig{}, err
	}

	loadCfg := memload.LoadConfig{
		Workers:              loadFlags.workers,
		StatementMaxAttempts: loadFlags.maxAttempts,
		Timeout:              loadFlags.timeout,
		Verbose:              verbose,
	}

	remainder := loadFlags.remainder
	if remainder == "" && projectCfg != nil {
		remainder = projectCfg.Load.Remainder
	}
	switch remainder {
	case "", "round-robin":
		loadCfg.Remainder = memload.RemainderRoundRobin
	case "drop":
		loadCfg.Remainder = memload.RemainderDrop
	default:
		return resolvedLoadConfig{}, fmt.Errorf("unknown remainder policy %q: %w", remainder, memload.ErrInvalidConfig)
	}

	if projectCfg != nil {
		if loadCfg.Workers == 0 {
			loadCfg.Workers = projectCfg.Load.Workers
		}
		if loadCfg.StatementMaxAttempts == 0 {
			loadCfg.StatementMaxAttempts = projectCfg.Load.StatementMaxAttempts
		}
		if projectCfg.Timeout != "" && !cmd.Flags().Changed("timeout") {
			parsed, parseErr := time.ParseDuration(projectCfg.Timeout)
			if parseErr != nil {
				return resolvedLoadConfig{}, fmt.Errorf("invalid timeout in %s: %w", config.ConfigFileName, parseErr)
			}
			loadCfg.Timeout = parsed
		}
	}

	if err := loadCfg.Validate(); err != nil {
		return resolvedLoadConfig{}, err
	}

	return resolvedLoadConfig{conn: connCfg, load: loadCfg}, nil
}
