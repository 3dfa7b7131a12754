package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/memload/pkg/cypher"
	"github.com/vvka-141/memload/pkg/memload"
)

const sampleGraph = `{
  "nodes": [
    {"id": 0, "labels": "Person", "properties": {"name": "Alice"}},
    {"id": 1, "labels": ["City", "Capital"], "properties": {"name": "Zagreb"}}
  ],
  "edges": [
    {"from": 0, "to": 1, "type": "LIVES_IN", "properties": {"since": 2019}}
  ]
}`

func TestParse_SampleGraph(t *testing.T) {
	g, err := Parse([]byte(sampleGraph))
	require.NoError(t, err)

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	stmts, err := cypher.Collect(cypher.Statements(g))
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Equal(t, `CREATE (:Person {id: 0, name: "Alice"});`, stmts[0])
	assert.Equal(t, `CREATE (:City:Capital {id: 1, name: "Zagreb"});`, stmts[1])
	assert.Equal(t, `MATCH (n:Person {id: 0}), (m:City:Capital {id: 1}) CREATE (n)-[:LIVES_IN {since: 2019}]->(m);`, stmts[2])
}

func TestParse_NodeWithoutID(t *testing.T) {
	_, err := Parse([]byte(`{"nodes": [{"labels": "Person"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

func TestParse_EdgeMissingEndpoint(t *testing.T) {
	_, err := Parse([]byte(`{"edges": [{"from": 0}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing an endpoint")
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{nodes`))
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, memload.ErrGraphNotFound)
}

func TestReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleGraph), 0o644))

	g, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
}
