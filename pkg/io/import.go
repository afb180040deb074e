package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/codia/codia/pkg/errors"
	"github.com/codia/codia/pkg/model"
)

// ReadJSON decodes a JSON model from r.
//
// Every class must have a name; a duplicate name replaces the earlier
// entry, matching the discovery semantics of the analyzer. Relationships
// may reference class names with no entry - they are kept and dropped
// later by the renderer. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*model.Model, error) {
	var data modelJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "decode model")
	}

	classes := model.NewClassSet()
	for _, c := range data.Classes {
		if c.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidModel, "class with empty name")
		}
		classes.Add(c)
	}

	for _, rel := range data.Relationships {
		if rel.Parent == "" || rel.Child == "" {
			return nil, errors.New(errors.ErrCodeInvalidModel,
				"relationship with empty endpoint: %q -> %q", rel.Parent, rel.Child)
		}
	}

	return &model.Model{Classes: classes, Relationships: data.Relationships}, nil
}

// ImportJSON reads a JSON file at path and returns the decoded model.
func ImportJSON(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
