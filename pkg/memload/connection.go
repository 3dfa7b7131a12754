package memload

import "context"

// Connection abstracts a single database connection owned by one load worker.
// This interface decouples the loader from driver-specific types while
// providing the execute/commit operations the loader needs.
//
// Thread-Safety: a Connection is exclusively owned by the worker that
// obtained it and is never shared; implementations do not need to be safe for
// concurrent use.
type Connection interface {
	// Execute runs one Cypher statement on this connection. The statement is
	// not visible to other connections until Commit is called.
	Execute(ctx context.Context, statement string) error

	// Commit makes all statements executed since the previous Commit durable.
	Commit(ctx context.Context) error

	// Close releases the connection. After calling Close, the connection
	// must not be used.
	Close(ctx context.Context) error
}

// Connector creates connections to the target database. Each load worker
// calls Connect once to obtain its own exclusive Connection.
//
// Implementations must be safe for concurrent Connect calls.
type Connector interface {
	Connect(ctx context.Context) (Connection, error)
}
