package cli

import (
	"fmt"
	"os"
	"strconv"
	"syscall"

	"golang.org/x/term"

	"github.com/vvka-141/memload/internal/config"
	"github.com/vvka-141/memload/pkg/memload"
)

// Environment variables consulted when the corresponding flag is not set.
const (
	EnvHost     = "MEMLOAD_HOST"
	EnvPort     = "MEMLOAD_PORT"
	EnvUsername = "MEMLOAD_USERNAME"
	EnvPassword = "MEMLOAD_PASSWORD"
	EnvDatabase = "MEMLOAD_DATABASE"
)

// connFlagValues holds the granular connection flags shared by commands that
// talk to the database.
type connFlagValues struct {
	scheme, host, username, database string
	port                             int
	passwordPrompt                   bool
}

// resolveConnection builds a ConnectionConfig from flags, environment
// variables, and the optional memload.yaml next to the input graph.
// Precedence: flag > environment variable > memload.yaml > default.
//
// For security, the password is never accepted as a CLI flag: it is read
// from $MEMLOAD_PASSWORD or prompted for with --password-prompt.
func resolveConnection(flags *connFlagValues, projectCfg *config.ProjectConfig, verbose bool) (*memload.ConnectionConfig, error) {
	cfg := &memload.ConnectionConfig{
		Scheme:   flags.scheme,
		Host:     flags.host,
		Port:     flags.port,
		Username: flags.username,
		Database: flags.database,
		Password: os.Getenv(EnvPassword),
		AppName:  "memload",
	}

	if cfg.Host == "" {
		cfg.Host = os.Getenv(EnvHost)
	}
	if cfg.Port == 0 {
		if p := os.Getenv(EnvPort); p != "" {
			port, err := strconv.Atoi(p)
			if err != nil {
				return nil, fmt.Errorf("invalid %s %q: %w", EnvPort, p, memload.ErrInvalidConfig)
			}
			cfg.Port = port
		}
	}
	if cfg.Username == "" {
		cfg.Username = os.Getenv(EnvUsername)
	}
	if cfg.Database == "" {
		cfg.Database = os.Getenv(EnvDatabase)
	}

	if projectCfg != nil {
		if cfg.Scheme == "" {
			cfg.Scheme = projectCfg.Connection.Scheme
		}
		if cfg.Host == "" {
			cfg.Host = projectCfg.Connection.Host
		}
		if cfg.Port == 0 {
			cfg.Port = projectCfg.Connection.Port
		}
		if cfg.Username == "" {
			cfg.Username = projectCfg.Connection.Username
		}
		if cfg.Database == "" {
			cfg.Database = projectCfg.Connection.Database
		}
	}

	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == 0 {
		cfg.Port = memload.DefaultPort
	}

	if flags.passwordPrompt {
		password, err := promptPassword(cfg.Username)
		if err != nil {
			return nil, err
		}
		cfg.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Connection resolved:\n")
		fmt.Fprintf(os.Stderr, "  URI: %s\n", cfg.URI())
		fmt.Fprintf(os.Stderr, "  User: %s\n", cfg.Username)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.Database)
	}

	return cfg, nil
}

func promptPassword(username string) (string, error) {
	if username == "" {
		fmt.Fprint(os.Stderr, "Password: ")
	} else {
		fmt.Fprintf(os.Stderr, "Password for %s: ", username)
	}
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}
