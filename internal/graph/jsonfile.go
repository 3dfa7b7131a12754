package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vvka-141/memload/pkg/memload"
)

// jsonGraph is the on-disk schema read by ReadFile:
//
//	{
//	  "nodes": [{"id": 0, "labels": "Person", "properties": {"name": "Alice"}}],
//	  "edges": [{"from": 0, "to": 1, "type": "LIVES_IN", "properties": {}}]
//	}
//
// "labels" accepts a single string or an ordered list of strings.
type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID         any            `json:"id"`
	Labels     any            `json:"labels,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

type jsonEdge struct {
	From       any            `json:"from"`
	To         any            `json:"to"`
	Type       string         `json:"type,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// ReadFile reads a graph from a JSON file. A missing file returns an error
// wrapping memload.ErrGraphNotFound.
func ReadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, memload.ErrGraphNotFound)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a JSON graph document. JSON numbers decode as float64, which
// the statement encoder renders without a trailing ".0" for integral values.
func Parse(data []byte) (*Memory, error) {
	var doc jsonGraph
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}

	g := New()
	for i, n := range doc.Nodes {
		if n.ID == nil {
			return nil, fmt.Errorf("parse graph: node %d has no id", i)
		}
		attrs := make(map[string]any, len(n.Properties)+1)
		for k, v := range n.Properties {
			attrs[k] = v
		}
		if n.Labels != nil {
			attrs[memload.KeyLabels] = n.Labels
		}
		g.AddNode(n.ID, attrs)
	}
	for i, e := range doc.Edges {
		if e.From == nil || e.To == nil {
			return nil, fmt.Errorf("parse graph: edge %d is missing an endpoint", i)
		}
		attrs := make(map[string]any, len(e.Properties)+1)
		for k, v := range e.Properties {
			attrs[k] = v
		}
		if e.Type != "" {
			attrs[memload.KeyType] = e.Type
		}
		g.AddEdge(e.From, e.To, attrs)
	}
	return g, nil
}
