// File: msgpack.go
// Role: compact binary encoding of graphs via github.com/vmihailenco/msgpack/v5.
//
// The payload is the YAML document shape with one-letter keys, so both
// codecs share validation in graphDocument.build.

package core

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgpack serializes g.
func EncodeMsgpack(g *Graph) ([]byte, error) {
	data, err := msgpack.Marshal(g.document())
	if err != nil {
		return nil, fmt.Errorf("EncodeMsgpack: %w", err)
	}

	return data, nil
}

// DecodeMsgpack parses a payload produced by EncodeMsgpack.
func DecodeMsgpack(data []byte) (*Graph, error) {
	var doc graphDocument
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("DecodeMsgpack: %v: %w", err, ErrMalformedInput)
	}

	g, err := doc.build()
	if err != nil {
		return nil, fmt.Errorf("DecodeMsgpack: %w", err)
	}

	return g, nil
}
