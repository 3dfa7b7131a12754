// Package retry implements the retry policy used by memload: an error
// classifier that separates transient Bolt/server conditions from fatal ones,
// an exponential backoff strategy with jitter, and an executor that applies
// both to an operation.
//
// The loader uses the classifier directly for its statement re-queue policy
// and the executor for connection establishment.
package retry
