// Package db adapts the neo4j Bolt driver to the memload connection
// interfaces. Memgraph and Neo4j both speak Bolt, so one adapter covers both.
package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"

	"github.com/vvka-141/memload/internal/retry"
	"github.com/vvka-141/memload/pkg/memload"
)

// BoltConnector implements memload.Connector on top of the neo4j driver.
// The underlying driver object is created once and shared: it maintains its
// own connection pool, so each Connect call is cheap and yields a session
// backed by a dedicated pooled connection.
//
// Thread-Safety: safe for concurrent Connect calls.
type BoltConnector struct {
	config        *memload.ConnectionConfig
	retryExecutor *retry.Executor

	mu     sync.Mutex
	driver neo4j.DriverWithContext
}

// NewBoltConnector creates a new BoltConnector with the given configuration.
// Connection establishment retries transient failures with memload defaults:
// DefaultConnectMaxAttempts attempts, exponential backoff starting at
// DefaultRetryInitialDelay, capped at DefaultRetryMaxDelay.
func NewBoltConnector(cfg *memload.ConnectionConfig) *BoltConnector {
	classifier := retry.NewBoltErrorClassifier()
	strategy := retry.NewExponentialBackoff(memload.DefaultConnectMaxAttempts,
		retry.WithInitialDelay(memload.DefaultRetryInitialDelay),
		retry.WithMaxDelay(memload.DefaultRetryMaxDelay),
	)

	return &BoltConnector{
		config:        cfg,
		retryExecutor: retry.NewExecutor(classifier, strategy),
	}
}

// Connect opens a session on the shared driver and begins an explicit
// transaction for it. The returned Connection is exclusively owned by the
// caller.
func (c *BoltConnector) Connect(ctx context.Context) (memload.Connection, error) {
	driver, err := c.getDriver(ctx)
	if err != nil {
		return nil, err
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.config.Database,
	})

	return &boltConnection{session: session}, nil
}

// Close shuts down the shared driver and its connection pool. Connections
// handed out by Connect must be closed first.
func (c *BoltConnector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.driver == nil {
		return nil
	}
	err := c.driver.Close(ctx)
	c.driver = nil
	return err
}

func (c *BoltConnector) getDriver(ctx context.Context) (neo4j.DriverWithContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.driver != nil {
		return c.driver, nil
	}

	auth := neo4j.NoAuth()
	if c.config.Username != "" {
		auth = neo4j.BasicAuth(c.config.Username, c.config.Password, "")
	}

	uri := c.config.URI()
	driver, err := neo4j.NewDriverWithContext(uri, auth, func(cfg *config.Config) {
		if c.config.AppName != "" {
			cfg.UserAgent = c.config.AppName
		}
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid target %s: %v", memload.ErrConnectionFailed, uri, err)
	}

	// The driver connects lazily; verify reachability here with retry so a
	// briefly unavailable server does not fail the whole load.
	err = c.retryExecutor.Execute(ctx, func(ctx context.Context) error {
		return driver.VerifyConnectivity(ctx)
	})
	if err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %s: %v", memload.ErrConnectionFailed, uri, err)
	}

	c.driver = driver
	return driver, nil
}

// boltConnection implements memload.Connection over one driver session.
// A transaction is begun lazily on the first Execute after each Commit.
type boltConnection struct {
	session neo4j.SessionWithContext
	tx      neo4j.ExplicitTransaction
}

func (c *boltConnection) Execute(ctx context.Context, statement string) error {
	if c.tx == nil {
		tx, err := c.session.BeginTransaction(ctx)
		if err != nil {
			return err
		}
		c.tx = tx
	}

	result, err := c.tx.Run(ctx, statement, nil)
	if err == nil {
		_, err = result.Consume(ctx)
	}
	if err != nil {
		// A failed statement leaves the transaction unusable. Discard it so
		// the owner can keep executing (and retrying) on this connection.
		_ = c.tx.Close(ctx)
		c.tx = nil
		return err
	}
	return nil
}

func (c *boltConnection) Commit(ctx context.Context) error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Commit(ctx)
	c.tx = nil
	return err
}

func (c *boltConnection) Close(ctx context.Context) error {
	if c.tx != nil {
		// Uncommitted work is rolled back.
		_ = c.tx.Close(ctx)
		c.tx = nil
	}
	return c.session.Close(ctx)
}
