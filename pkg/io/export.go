package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/Denizche/divscheme/pkg/errors"
)

// WriteJSON encodes v as indented JSON and writes it to w.
// Used for validation reports and layout results; the output can be fed back
// to downstream renderers or re-read by tooling.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode JSON")
	}
	return nil
}

// ExportJSON writes v as indented JSON to the file at path, creating or
// truncating it.
func ExportJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()

	if err := WriteJSON(f, v); err != nil {
		return err
	}
	return f.Close()
}
