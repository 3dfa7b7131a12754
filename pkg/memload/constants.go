package memload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Load/export completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to the graph database
	ExitEncodingError   = 12 // Unsupported attribute value during statement generation
	ExitExecutionFailed = 13 // Statement execution failed
	ExitGraphMissing    = 14 // Input graph file not found
)

const (
	// DefaultPort is the standard Bolt protocol port used by Memgraph and Neo4j.
	DefaultPort = 7687

	// DefaultScheme is the connection URI scheme used when none is configured.
	DefaultScheme = "bolt"

	// DefaultRelationshipType is used for edges that carry no "type" attribute.
	DefaultRelationshipType = "TO"

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultConnectMaxAttempts is the default retry budget for establishing
	// a database connection.
	DefaultConnectMaxAttempts = 3

	// DefaultStatementMaxAttempts is the default per-statement execution
	// budget inside a load worker. The statement is re-queued at the tail of
	// the worker's queue after a transient failure and abandoned once the
	// budget is exhausted.
	DefaultStatementMaxAttempts = 10

	// MaxStatementPreviewLength is the maximum number of characters of a
	// statement shown in warning and error messages.
	MaxStatementPreviewLength = 120
)

// Reserved attribute keys on graph nodes and edges. These are consumed by the
// statement generator and never appear in encoded property maps.
const (
	// KeyLabels holds a node's label or ordered label list.
	KeyLabels = "labels"

	// KeyType holds an edge's relationship type.
	KeyType = "type"

	// KeyID holds the logical id used to re-identify a node across
	// statements. Defaults to the node's own identifier when absent.
	KeyID = "id"
)
