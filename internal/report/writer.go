package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/larpix/pedstats/internal/model"
	"github.com/rogpeppe/go-internal/lockedfile"
)

// Indent is the indentation used by [Write].
const Indent = "    "

// Marshal serializes the report as indented JSON.
func Marshal(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", Indent)
}

// Write serializes the report and writes it to path, replacing any
// existing file. Failures wrap [model.ErrWrite].
func Write(r *Report, path string) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", model.ErrWrite, path, err)
	}
	if err := lockedfile.Write(path, bytes.NewReader(data), 0644); err != nil {
		return fmt.Errorf("%w: %w", model.ErrWrite, err)
	}
	return nil
}

// Read reads back a report written by [Write] into a plain map.
func Read(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
