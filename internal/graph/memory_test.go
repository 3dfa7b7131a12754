package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/memload/pkg/memload"
)

func TestMemory_NodesIterateInInsertionOrder(t *testing.T) {
	g := New()
	g.AddNode("c", nil)
	g.AddNode("a", nil)
	g.AddNode("b", nil)

	var ids []any
	for n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []any{"c", "a", "b"}, ids)
}

func TestMemory_AddNodeMergesAttrs(t *testing.T) {
	g := New()
	g.AddNode(1, map[string]any{"name": "x"})
	g.AddNode(1, map[string]any{"age": 3})

	assert.Equal(t, 1, g.NodeCount())
	attrs, ok := g.NodeAttrs(1)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "x", "age": 3}, attrs)
}

func TestMemory_AddEdgeCreatesMissingEndpoints(t *testing.T) {
	g := New()
	g.AddEdge(1, 2, map[string]any{"type": "KNOWS"})

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	var edges []memload.Edge
	for e := range g.Edges() {
		edges = append(edges, e)
	}
	require.Len(t, edges, 1)
	assert.Equal(t, 1, edges[0].From)
	assert.Equal(t, 2, edges[0].To)
}

func TestMemory_NodeAttrsMissing(t *testing.T) {
	g := New()
	_, ok := g.NodeAttrs("nope")
	assert.False(t, ok)
}
