package retry

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// Server error codes that are transient even though their classification
// segment does not say so.
// See: https://neo4j.com/docs/status-codes/current/
const (
	codeAuthorizationExpired = "Neo.ClientError.Security.AuthorizationExpired"
	codeNotALeader           = "Neo.ClientError.Cluster.NotALeader"
	codeForbiddenReadOnly    = "Neo.ClientError.General.ForbiddenOnReadOnlyDatabase"
)

// BoltErrorClassifier implements memload.ErrorClassifier for errors reported
// by Bolt graph databases (Memgraph, Neo4j).
type BoltErrorClassifier struct{}

// NewBoltErrorClassifier creates a new Bolt error classifier.
func NewBoltErrorClassifier() *BoltErrorClassifier {
	return &BoltErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *BoltErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// Check for server-reported errors
	var srvErr *db.Neo4jError
	if errors.As(err, &srvErr) {
		return c.isTransientServerError(srvErr)
	}

	// Check for network-level errors
	if c.isNetworkError(err) {
		return true
	}

	// Check for connection errors reported as plain strings
	if c.isConnectionError(err) {
		return true
	}

	return false
}

// isTransientServerError checks server status codes for transient conditions.
// Codes have the shape "Vendor.Classification.Category.Title", e.g.
// "Neo.TransientError.Transaction.LockClientStopped"; Memgraph uses the same
// scheme with its own vendor segment.
func (c *BoltErrorClassifier) isTransientServerError(srvErr *db.Neo4jError) bool {
	code := srvErr.Code

	if strings.Contains(code, ".TransientError.") {
		return true
	}

	switch code {
	case codeAuthorizationExpired,
		codeNotALeader,
		codeForbiddenReadOnly:
		return true
	}

	return false
}

// isNetworkError checks for network-level errors.
func (c *BoltErrorClassifier) isNetworkError(err error) bool {
	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	// Network operation errors
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Temporary() || opErr.Timeout() {
			return true
		}

		if opErr.Err != nil {
			// Connection refused (server not ready)
			if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
				return true
			}

			// Connection reset by peer
			if errors.Is(opErr.Err, syscall.ECONNRESET) {
				return true
			}

			// Network unreachable
			if errors.Is(opErr.Err, syscall.ENETUNREACH) {
				return true
			}

			// Host unreachable
			if errors.Is(opErr.Err, syscall.EHOSTUNREACH) {
				return true
			}
		}
	}

	return false
}

// isConnectionError checks for connection-related failures that surface as
// wrapped or stringly-typed errors from the driver.
func (c *BoltErrorClassifier) isConnectionError(err error) bool {
	errMsg := strings.ToLower(err.Error())

	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"connection timeout",
		"connection failure",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"broken pipe",
		"server closed the connection",
		"unexpected eof",
		"connectivityerror", // driver's errorutil.ConnectivityError rendering
		"connectivity error",
		"connection acquisition timed out",
		"context deadline exceeded", // May be transient if external timeout
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}
