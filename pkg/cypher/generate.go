package cypher

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/vvka-141/memload/pkg/memload"
)

// NodeStatements returns a lazy sequence of one CREATE statement per node, in
// the graph's native iteration order. The sequence is restartable: ranging
// over it again re-derives the statements from the graph's current state.
//
// A node without an "id" attribute has its own identifier injected as the
// logical id. The injection happens on a local copy of the attribute mapping;
// the source graph is never mutated. An encoding failure ends the sequence
// with a non-nil error.
func NodeStatements(g memload.Graph) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for node := range g.Nodes() {
			stmt, err := createNodeStatement(node)
			if err != nil {
				yield("", err)
				return
			}
			if !yield(stmt, nil) {
				return
			}
		}
	}
}

// EdgeStatements returns a lazy sequence of one MATCH..CREATE statement per
// edge, in the graph's native iteration order. Endpoint labels and logical
// ids are resolved from the endpoint nodes at generation time, so every edge
// statement assumes its endpoints were already created (nodes before edges).
//
// The "type" attribute, if present, becomes the relationship type and is
// excluded from the encoded edge properties; edges without it default to
// memload.DefaultRelationshipType.
func EdgeStatements(g memload.Graph) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for edge := range g.Edges() {
			stmt, err := createEdgeStatement(g, edge)
			if err != nil {
				yield("", err)
				return
			}
			if !yield(stmt, nil) {
				return
			}
		}
	}
}

// Statements chains NodeStatements and EdgeStatements: all node statements
// first, then all edge statements.
func Statements(g memload.Graph) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for stmt, err := range NodeStatements(g) {
			if !yield(stmt, err) {
				return
			}
			if err != nil {
				return
			}
		}
		for stmt, err := range EdgeStatements(g) {
			if !yield(stmt, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Collect materializes a statement sequence into a slice, stopping at the
// first generation error.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var stmts []string
	for stmt, err := range seq {
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func createNodeStatement(node memload.Node) (string, error) {
	attrs := localCopy(node.Attrs)
	if _, ok := attrs[memload.KeyID]; !ok {
		attrs[memload.KeyID] = node.ID
	}

	labelsStr, err := EncodeLabels(attrs[memload.KeyLabels])
	if err != nil {
		return "", fmt.Errorf("node %v: %w", node.ID, err)
	}
	delete(attrs, memload.KeyLabels)

	propsStr, err := EncodeProperties(attrs)
	if err != nil {
		return "", fmt.Errorf("node %v: %w", node.ID, err)
	}

	return fmt.Sprintf("CREATE (%s);", joinFragments(labelsStr, propsStr)), nil
}

func createEdgeStatement(g memload.Graph, edge memload.Edge) (string, error) {
	fromLabels, fromID := endpoint(g, edge.From)
	toLabels, toID := endpoint(g, edge.To)

	fromLabelStr, err := EncodeLabels(fromLabels)
	if err != nil {
		return "", fmt.Errorf("edge (%v, %v) source: %w", edge.From, edge.To, err)
	}
	toLabelStr, err := EncodeLabels(toLabels)
	if err != nil {
		return "", fmt.Errorf("edge (%v, %v) target: %w", edge.From, edge.To, err)
	}
	fromIDStr, err := EncodeValue(fromID)
	if err != nil {
		return "", fmt.Errorf("edge (%v, %v) source id: %w", edge.From, edge.To, err)
	}
	toIDStr, err := EncodeValue(toID)
	if err != nil {
		return "", fmt.Errorf("edge (%v, %v) target id: %w", edge.From, edge.To, err)
	}

	attrs := localCopy(edge.Attrs)
	relType := any(memload.DefaultRelationshipType)
	if t, ok := attrs[memload.KeyType]; ok {
		relType = t
	}
	relTypeStr, err := EncodeLabels(relType)
	if err != nil {
		return "", fmt.Errorf("edge (%v, %v) type: %w", edge.From, edge.To, err)
	}
	delete(attrs, memload.KeyType)

	propsStr, err := EncodeProperties(attrs)
	if err != nil {
		return "", fmt.Errorf("edge (%v, %v): %w", edge.From, edge.To, err)
	}

	return fmt.Sprintf("MATCH (n%s {id: %s}), (m%s {id: %s}) CREATE (n)-[%s]->(m);",
		fromLabelStr, fromIDStr, toLabelStr, toIDStr,
		joinFragments(relTypeStr, propsStr)), nil
}

// endpoint resolves an edge endpoint's labels and logical id from the graph.
// The logical id is the node's "id" attribute when present, otherwise the
// node's own identifier. An endpoint missing from the graph keeps its raw
// identifier and has no labels.
func endpoint(g memload.Graph, id any) (labels any, logicalID any) {
	attrs, ok := g.NodeAttrs(id)
	if !ok {
		return nil, id
	}
	logicalID = id
	if v, ok := attrs[memload.KeyID]; ok {
		logicalID = v
	}
	return attrs[memload.KeyLabels], logicalID
}

func localCopy(attrs map[string]any) map[string]any {
	if attrs == nil {
		return make(map[string]any, 1)
	}
	return maps.Clone(attrs)
}

func joinFragments(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
