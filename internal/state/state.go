// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/staranto/scenarios/internal/log"
)

// DefaultFile is the file name used by the save and load steps when no other
// path is configured.
const DefaultFile = "state.json"

// NameKey holds the name of the running scenario. It belongs to the run, so
// Load never overwrites it.
const NameKey = "name"

// ErrMalformed is returned by Load when the file is not a JSON object.
var ErrMalformed = errors.New("state file is not a JSON object")

// State is the mutable bag shared by reference across the steps of one run.
// Keys are chosen by step authors; a later write silently replaces an earlier
// one.
type State map[string]any

// New copies initial into a fresh bag and records the scenario name under
// NameKey.
func New(initial map[string]any, name string) State {
	s := make(State, len(initial)+1)
	for k, v := range initial {
		s[k] = v
	}
	s[NameKey] = name
	return s
}

// String returns the value at key rendered with %v, or "" when absent.
func (s State) String(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return ""
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", v)
}

// Bool reports whether key holds boolean true.
func (s State) Bool(key string) bool {
	b, _ := s[key].(bool)
	return b
}

// Lookup reads a gjson path (e.g. "bucket.objects.#") from a snapshot of s.
func (s State) Lookup(path string) gjson.Result {
	return gjson.GetBytes(Snapshot(s), path)
}

// Snapshot marshals s to JSON. Values that cannot be marshaled (clients,
// channels, funcs) are rendered with %v so a snapshot never fails.
func Snapshot(s State) []byte {
	if b, err := json.Marshal(s); err == nil {
		return b
	}

	safe := make(map[string]any, len(s))
	for k, v := range s {
		if _, err := json.Marshal(v); err != nil {
			safe[k] = fmt.Sprintf("%v", v)
			continue
		}
		safe[k] = v
	}
	b, _ := json.Marshal(safe)
	return b
}

// Save writes the whole bag to path as indented JSON. Errors are returned to
// the caller unchanged in kind.
func Save(path string, s State) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write state: %w", err)
	}
	log.Debugf("state saved: path=%s keys=%d", path, len(s))
	return nil
}

// Load merges the JSON object stored at path into s in place, except for
// NameKey. On any error s is left untouched.
func Load(path string, s State) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	if !gjson.ValidBytes(b) || !gjson.ParseBytes(b).IsObject() {
		return fmt.Errorf("%s: %w", path, ErrMalformed)
	}

	var loaded map[string]any
	if err := json.Unmarshal(b, &loaded); err != nil {
		return fmt.Errorf("failed to parse state: %w", err)
	}

	for k, v := range loaded {
		if k == NameKey {
			continue
		}
		s[k] = v
	}
	log.Debugf("state loaded: path=%s keys=%d", path, len(loaded))
	return nil
}
