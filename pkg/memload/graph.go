package memload

import "iter"

// Node is one node of an input graph: an implementation-defined identifier
// plus an attribute mapping. The identifier is any value the property encoder
// can render (typically an int or a string).
type Node struct {
	ID    any
	Attrs map[string]any
}

// Edge is one edge of an input graph: a (source, target) identifier pair plus
// an attribute mapping. Endpoint labels are not stored on the edge; they are
// resolved from the endpoint nodes at statement generation time.
type Edge struct {
	From  any
	To    any
	Attrs map[string]any
}

// Graph is the read-only contract an input graph must satisfy. The loader
// never mutates a Graph, so implementations may be shared across workers
// without synchronization as long as they are not modified during a load.
//
// Iteration order is implementation-defined but must be stable for the
// lifetime of a load: the statement generator derives restartable sequences
// from it, and both phases of a parallel load re-read the node set.
type Graph interface {
	// Nodes iterates over all nodes.
	Nodes() iter.Seq[Node]

	// Edges iterates over all edges.
	Edges() iter.Seq[Edge]

	// NodeAttrs returns the attribute mapping of the node with the given
	// identifier. The second return value reports whether the node exists.
	// Callers must treat the returned map as read-only.
	NodeAttrs(id any) (map[string]any, bool)
}
