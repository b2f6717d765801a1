// Package io reads division scheme requests and writes computed results in
// the JSON interchange format shared by the CLI and the HTTP API.
package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/Denizche/divscheme/pkg/errors"
	"github.com/Denizche/divscheme/pkg/scheme"
)

// wireScheme decodes a scheme request with optional fields that carry
// defaults when absent. The outer include_bom shadows the embedded one so
// that "absent" and "false" stay distinguishable.
type wireScheme struct {
	scheme.Scheme
	IncludeBOM *bool `json:"include_bom"`
}

// ReadScheme decodes a scheme request from r.
//
// Absent configuration fields receive the reference defaults: A3 sheet,
// landscape orientation, tree layout, BOM included. Structural rules are NOT
// enforced here: run the validator on the result. ReadScheme only rejects
// JSON that cannot be decoded at all.
//
// ReadScheme does not close r, and the returned scheme is independent of it.
func ReadScheme(r io.Reader) (*scheme.Scheme, error) {
	var w wireScheme
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScheme, err, "decode scheme")
	}

	s := w.Scheme
	if s.Format == "" {
		s.Format = scheme.FormatA3
	}
	if s.Orientation == "" {
		s.Orientation = scheme.Landscape
	}
	if s.LayoutType == "" {
		s.LayoutType = scheme.LayoutTree
	}
	s.IncludeBOM = w.IncludeBOM == nil || *w.IncludeBOM

	return &s, nil
}

// ImportScheme reads a scheme request from the JSON file at path.
// The error wraps the underlying cause with the file path for context.
func ImportScheme(path string) (*scheme.Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadScheme(f)
}
