package loader

import (
	"context"
	"strings"
	"sync"

	"github.com/vvka-141/memload/pkg/memload"
)

// recorder collects everything committed across all mock connections, in
// commit order.
type recorder struct {
	mu        sync.Mutex
	committed []string
}

func (r *recorder) commit(pending []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, pending...)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.committed...)
}

// failFunc decides the error for one execution attempt of a statement.
// attempt is 1-based.
type failFunc func(statement string, attempt int) error

// mockConnector hands out mock connections that report into a shared
// recorder.
type mockConnector struct {
	rec        *recorder
	connectErr error
	fail       failFunc

	mu       sync.Mutex
	attempts map[string]int
	opened   int
	closed   int
}

func newMockConnector(fail failFunc) *mockConnector {
	return &mockConnector{
		rec:      &recorder{},
		fail:     fail,
		attempts: make(map[string]int),
	}
}

func (c *mockConnector) Connect(_ context.Context) (memload.Connection, error) {
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	c.mu.Lock()
	c.opened++
	c.mu.Unlock()
	return &mockConnection{connector: c}, nil
}

func (c *mockConnector) nextAttempt(statement string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempts[statement]++
	return c.attempts[statement]
}

func (c *mockConnector) connectionClosed() {
	c.mu.Lock()
	c.closed++
	c.mu.Unlock()
}

func (c *mockConnector) openClosedCounts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opened, c.closed
}

// mockConnection buffers executed statements until Commit, like a real
// transaction-scoped connection.
type mockConnection struct {
	connector *mockConnector
	pending   []string
}

func (c *mockConnection) Execute(_ context.Context, statement string) error {
	attempt := c.connector.nextAttempt(statement)
	if c.connector.fail != nil {
		if err := c.connector.fail(statement, attempt); err != nil {
			c.pending = nil
			return err
		}
	}
	c.pending = append(c.pending, statement)
	return nil
}

func (c *mockConnection) Commit(_ context.Context) error {
	c.connector.rec.commit(c.pending)
	c.pending = nil
	return nil
}

func (c *mockConnection) Close(_ context.Context) error {
	c.connector.connectionClosed()
	return nil
}

// markerClassifier treats errors whose message contains "transient" as
// retryable.
type markerClassifier struct{}

func (markerClassifier) IsTransient(err error) bool {
	return err != nil && strings.Contains(err.Error(), "transient")
}
