// Package graph provides an insertion-ordered in-memory implementation of the
// memload.Graph contract, plus a JSON file reader for the CLI.
package graph

import (
	"iter"

	"github.com/vvka-141/memload/pkg/memload"
)

// Memory is an in-memory labeled graph. Nodes and edges iterate in insertion
// order, which makes statement generation deterministic.
//
// Thread-Safety: safe for concurrent reads once construction is finished.
// Mutating a Memory while a load is running is not supported.
type Memory struct {
	order []any
	nodes map[any]map[string]any
	edges []memload.Edge
}

// New creates an empty graph.
func New() *Memory {
	return &Memory{
		nodes: make(map[any]map[string]any),
	}
}

// AddNode adds a node with the given identifier and attributes. Adding an
// existing identifier merges the attributes into the node, keeping its
// original position in the iteration order. The identifier must be a
// comparable value (typically an int or a string).
func (m *Memory) AddNode(id any, attrs map[string]any) {
	existing, ok := m.nodes[id]
	if !ok {
		existing = make(map[string]any, len(attrs))
		m.nodes[id] = existing
		m.order = append(m.order, id)
	}
	for k, v := range attrs {
		existing[k] = v
	}
}

// AddEdge adds a directed edge. Endpoints that do not exist yet are created
// with empty attributes, matching the behavior of adjacency-based graph
// libraries.
func (m *Memory) AddEdge(from, to any, attrs map[string]any) {
	if _, ok := m.nodes[from]; !ok {
		m.AddNode(from, nil)
	}
	if _, ok := m.nodes[to]; !ok {
		m.AddNode(to, nil)
	}
	m.edges = append(m.edges, memload.Edge{From: from, To: to, Attrs: attrs})
}

// NodeCount returns the number of nodes.
func (m *Memory) NodeCount() int { return len(m.order) }

// EdgeCount returns the number of edges.
func (m *Memory) EdgeCount() int { return len(m.edges) }

// Nodes iterates over all nodes in insertion order.
func (m *Memory) Nodes() iter.Seq[memload.Node] {
	return func(yield func(memload.Node) bool) {
		for _, id := range m.order {
			if !yield(memload.Node{ID: id, Attrs: m.nodes[id]}) {
				return
			}
		}
	}
}

// Edges iterates over all edges in insertion order.
func (m *Memory) Edges() iter.Seq[memload.Edge] {
	return func(yield func(memload.Edge) bool) {
		for _, e := range m.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// NodeAttrs returns the attribute mapping of a node.
func (m *Memory) NodeAttrs(id any) (map[string]any, bool) {
	attrs, ok := m.nodes[id]
	return attrs, ok
}
