// File: yaml.go
// Role: YAML (de)serialization of graphs via gopkg.in/yaml.v3.
//
// Document shape:
//
//	vertices: 4
//	loops: false   # optional
//	multi: false   # optional
//	edges:
//	  - [0, 1]
//	  - [1, 2]
//
// *Graph implements yaml.Marshaler and yaml.Unmarshaler, so it can be embedded
// directly in larger documents (test fixtures, harness inputs).

package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// graphDocument is the on-disk YAML shape of a Graph.
// The same struct backs the msgpack codec.
type graphDocument struct {
	Vertices int     `yaml:"vertices" msgpack:"v"`
	Loops    bool    `yaml:"loops,omitempty" msgpack:"l,omitempty"`
	Multi    bool    `yaml:"multi,omitempty" msgpack:"m,omitempty"`
	Edges    [][]int `yaml:"edges,flow" msgpack:"e"`
}

// build validates the document and materializes a Graph.
func (d graphDocument) build() (*Graph, error) {
	var opts []GraphOption
	if d.Loops {
		opts = append(opts, WithLoops())
	}
	if d.Multi {
		opts = append(opts, WithMultiEdges())
	}

	g, err := NewGraph(d.Vertices, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edge %d: want 2 endpoints, got %d: %w", i, len(e), ErrMalformedInput)
		}
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// DecodeYAML parses a single YAML graph document.
func DecodeYAML(data []byte) (*Graph, error) {
	var doc graphDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("DecodeYAML: %v: %w", err, ErrMalformedInput)
	}

	g, err := doc.build()
	if err != nil {
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}

	return g, nil
}

// document snapshots g in its serialized shape.
func (g *Graph) document() graphDocument {
	g.mu.RLock()
	doc := graphDocument{
		Vertices: len(g.adj),
		Loops:    g.allowLoops,
		Multi:    g.allowMulti,
	}
	g.mu.RUnlock()

	// Edges() takes its own read lock.
	edges := g.Edges()
	doc.Edges = make([][]int, len(edges))
	for i, e := range edges {
		doc.Edges[i] = []int{e.V, e.W}
	}

	return doc
}

// MarshalYAML implements yaml.Marshaler.
func (g *Graph) MarshalYAML() (interface{}, error) {
	return g.document(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler; it replaces the contents of g.
func (g *Graph) UnmarshalYAML(node *yaml.Node) error {
	var doc graphDocument
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("core: graph at line %d: %v: %w", node.Line, err, ErrMalformedInput)
	}

	built, err := doc.build()
	if err != nil {
		return fmt.Errorf("core: graph at line %d: %w", node.Line, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.allowLoops = built.allowLoops
	g.allowMulti = built.allowMulti
	g.edgeCount = built.edgeCount
	g.adj = built.adj

	return nil
}
