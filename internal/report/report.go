// Package report assembles the pedestal statistics of a run into a flat
// JSON report and writes it to disk.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is a key-value pair of a [*Report].
type Entry struct {
	Key   string
	Value any
}

// Report is a flat mapping from unique keys to JSON scalars that
// remembers insertion order. The zero value is an empty report.
type Report struct {
	entries []Entry
	index   map[string]int
}

// Set sets the value of key. Setting an existing key replaces its
// value and keeps its original position.
func (r *Report) Set(key string, value any) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if idx, found := r.index[key]; found {
		r.entries[idx].Value = value
		return
	}
	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{Key: key, Value: value})
}

// Get returns the value of key and whether it exists.
func (r *Report) Get(key string) (any, bool) {
	idx, found := r.index[key]
	if !found {
		return nil, false
	}
	return r.entries[idx].Value, true
}

// Len returns the number of entries.
func (r *Report) Len() int {
	return len(r.entries)
}

// Keys returns the keys in insertion order.
func (r *Report) Keys() []string {
	out := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry.Key)
	}
	return out
}

// Entries returns a copy of the entries in insertion order.
func (r *Report) Entries() []Entry {
	return append([]Entry{}, r.entries...)
}

var _ json.Marshaler = &Report{}

// MarshalJSON implements json.Marshaler. Keys are emitted in
// insertion order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, entry := range r.entries {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("report: key %q: %w", entry.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
