// Package loader executes generated Cypher statements against a running
// graph database, either sequentially or partitioned across concurrent
// workers.
//
// A parallel load runs two strictly ordered phases: every node statement is
// generated, partitioned, and committed first; only then are edge statements
// processed. Edge statements match their endpoints by logical id, so the
// phase barrier is what keeps them valid. Within a phase there is no ordering
// guarantee, across workers or otherwise.
//
// Loading is best-effort: there is no global transaction, and a failure mid
// way leaves the statements committed so far in place.
package loader

import (
	"context"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/memload/internal/db"
	"github.com/vvka-141/memload/internal/logging"
	"github.com/vvka-141/memload/internal/retry"
	"github.com/vvka-141/memload/pkg/cypher"
	"github.com/vvka-141/memload/pkg/memload"
)

// Loader runs partitioned parallel loads.
// Thread-Safety: safe for concurrent Load() calls; each call derives all of
// its state from its arguments and fresh connections.
type Loader struct {
	connector  memload.Connector
	classifier memload.ErrorClassifier
	logger     memload.Logger
	config     memload.LoadConfig
}

// New creates a Loader with all dependencies injected. Panics if connector,
// classifier, or logger is nil: these are programmer errors that should fail
// loudly at startup, not during a load. Returns an error for invalid
// configuration, which is a runtime condition the caller handles.
func New(
	connector memload.Connector,
	classifier memload.ErrorClassifier,
	logger memload.Logger,
	config memload.LoadConfig,
) (*Loader, error) {
	if connector == nil {
		panic("connector cannot be nil")
	}
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Loader{
		connector:  connector,
		classifier: classifier,
		logger:     logger,
		config:     config,
	}, nil
}

// LoadParallel translates the graph into Cypher statements and loads them
// into the database at host:port using the default Bolt connector, error
// classifier, and logger. This is the one-shot entry point; construct a
// Loader directly to customize connections, classification, or logging.
func LoadParallel(ctx context.Context, g memload.Graph, host string, port int, config memload.LoadConfig) error {
	connector := db.NewBoltConnector(&memload.ConnectionConfig{Host: host, Port: port})
	defer connector.Close(ctx) //nolint:errcheck

	l, err := New(connector, retry.NewBoltErrorClassifier(), logging.NewConsoleLogger(config.Verbose), config)
	if err != nil {
		return err
	}
	return l.Load(ctx, g)
}

// Load generates the statement stream for g and applies it: the node phase
// runs to completion across the configured workers, then the edge phase.
// Encoding and connection errors abort the load and are returned; transient
// execution failures are retried per the statement budget and never surface.
func (l *Loader) Load(ctx context.Context, g memload.Graph) error {
	if l.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.config.Timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	workers := l.config.Workers
	if workers == 0 {
		workers = memload.DefaultWorkers()
	}

	phases := []struct {
		name string
		seq  iter.Seq2[string, error]
	}{
		{"node", cypher.NodeStatements(g)},
		{"edge", cypher.EdgeStatements(g)},
	}

	for _, phase := range phases {
		stmts, err := cypher.Collect(phase.seq)
		if err != nil {
			return fmt.Errorf("%s phase: %w", phase.name, err)
		}

		l.logger.Verbose("run %s: %s phase: %d statement(s) across %d worker(s), remainder policy %s",
			runID, phase.name, len(stmts), workers, l.config.Remainder)

		chunks := Partition(stmts, workers, l.config.Remainder)
		if err := l.runPhase(ctx, runID, chunks); err != nil {
			return fmt.Errorf("%s phase: %w", phase.name, err)
		}
	}

	l.logger.Info("run %s: load complete", runID)
	return nil
}

// runPhase executes one phase's chunks concurrently and joins. The first
// fatal worker error cancels the remaining workers via the group context.
func (l *Loader) runPhase(ctx context.Context, runID string, chunks [][]string) error {
	maxAttempts := l.config.StatementMaxAttempts
	if maxAttempts == 0 {
		maxAttempts = memload.DefaultStatementMaxAttempts
	}

	grp, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		grp.Go(func() error {
			conn, err := l.connector.Connect(ctx)
			if err != nil {
				return err
			}
			defer conn.Close(ctx) //nolint:errcheck

			w := &worker{
				id:          i,
				runID:       runID,
				conn:        conn,
				classifier:  l.classifier,
				maxAttempts: maxAttempts,
				logger:      l.logger,
			}
			return w.drain(ctx, chunk)
		})
	}
	return grp.Wait()
}
