package memload

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// ConnectionConfig represents the parameters needed to reach the target
// graph database over the Bolt protocol.
type ConnectionConfig struct {
	// Scheme is the connection URI scheme: "bolt", "bolt+s", "neo4j", "neo4j+s".
	// Defaults to DefaultScheme when empty.
	Scheme string

	// Host is the database server host.
	Host string

	// Port is the Bolt port. Defaults to DefaultPort when zero.
	Port int

	// Username and Password are the basic-auth credentials. Both empty means
	// no authentication, which is the Memgraph default.
	Username string
	Password string

	// Database selects a named database on servers that support multiple
	// databases. Empty uses the server default.
	Database string

	// AppName is reported to the server as the user agent.
	AppName string
}

// URI renders the Bolt connection URI for this configuration.
func (c *ConnectionConfig) URI() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}
	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("%s://%s:%d", scheme, c.Host, port)
}

// Validate checks if the ConnectionConfig has all required fields.
func (c *ConnectionConfig) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, fmt.Errorf("Host is required: %w", ErrInvalidConfig))
	}

	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("Port %d is out of range: %w", c.Port, ErrInvalidConfig))
	}

	switch c.Scheme {
	case "", "bolt", "bolt+s", "bolt+ssc", "neo4j", "neo4j+s", "neo4j+ssc":
	default:
		errs = append(errs, fmt.Errorf("unsupported scheme %q: %w", c.Scheme, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// RemainderPolicy controls what happens to the statements left over when a
// phase's statement count does not divide evenly across workers.
type RemainderPolicy int

const (
	// RemainderRoundRobin deals the leftover statements one per worker,
	// starting from the first. Nothing is dropped. This is the default.
	RemainderRoundRobin RemainderPolicy = iota

	// RemainderDrop silently discards the leftover statements, reproducing
	// the historical chunking scheme where chunk_size = total / workers and
	// the tail beyond workers*chunk_size is never assigned. Only useful for
	// compatibility testing against that behavior.
	RemainderDrop
)

// String returns a human-readable string representation of the RemainderPolicy.
func (p RemainderPolicy) String() string {
	switch p {
	case RemainderRoundRobin:
		return "round-robin"
	case RemainderDrop:
		return "drop"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsValid returns true if the RemainderPolicy is a defined value.
func (p RemainderPolicy) IsValid() bool {
	return p >= RemainderRoundRobin && p <= RemainderDrop
}

// LoadConfig contains all parameters of a parallel load operation.
type LoadConfig struct {
	// Workers is the number of concurrent load workers per phase.
	// Zero selects DefaultWorkers().
	Workers int

	// Remainder selects the remainder-handling strategy for uneven
	// partitions. See RemainderPolicy.
	Remainder RemainderPolicy

	// StatementMaxAttempts is the per-statement execution budget inside a
	// worker: -1 retries a transiently failing statement forever (the
	// historical behavior), 0 selects DefaultStatementMaxAttempts.
	StatementMaxAttempts int

	// Timeout bounds the whole load. Zero means no timeout.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool
}

// DefaultWorkers returns the platform default worker count: half the logical
// CPUs, but at least one.
func DefaultWorkers() int {
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Validate checks if the LoadConfig has valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("Workers cannot be negative: %w", ErrInvalidConfig))
	}

	if !c.Remainder.IsValid() {
		errs = append(errs, fmt.Errorf("unknown remainder policy %d: %w", int(c.Remainder), ErrInvalidConfig))
	}

	if c.StatementMaxAttempts < -1 {
		errs = append(errs, fmt.Errorf("StatementMaxAttempts must be >= -1: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
