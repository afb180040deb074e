// Package io reads and writes the class model as JSON.
//
// This is the interchange format between the parse and render commands
// and the HTTP API: parse analyzes source and exports a model file,
// render imports it and assembles the diagram. Round-tripping a model
// through [WriteJSON] and [ReadJSON] preserves class order, attribute
// duplicates, and dangling relationships.
//
//	{
//	  "classes": [
//	    {"name": "Animal", "attributes": ["name"], "methods": ["make_sound()"]},
//	    {"name": "Dog", "parents": ["Animal"]}
//	  ],
//	  "relationships": [
//	    {"parent": "Animal", "child": "Dog", "kind": "inheritance"}
//	  ]
//	}
//
// Note this serializes the engine's *input* model, never the assembled
// scene; diagrams themselves are exported through the sinks.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/codia/codia/pkg/model"
)

type modelJSON struct {
	Classes       []*model.Class       `json:"classes"`
	Relationships []model.Relationship `json:"relationships,omitempty"`
}

// WriteJSON encodes a model as JSON and writes it to w.
// Classes are emitted in insertion order so a re-imported model lays
// out identically.
func WriteJSON(m *model.Model, w io.Writer) error {
	out := modelJSON{
		Classes:       m.Classes.Classes(),
		Relationships: m.Relationships,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a model to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(m *model.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}
