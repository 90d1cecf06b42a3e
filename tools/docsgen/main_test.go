// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/scenarios/internal/scenario"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	config, err := loadConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, config.Scenarios)

	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - id: hello
    examples:
      - command: scenarios -s hello -y
        description: Run without questions.
    notes:
      - Remembers the name in state.json.
`), 0o600))

	config, err = loadConfig(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 1)
	assert.Equal(t, "hello", config.Scenarios[0].ID)
	assert.Equal(t, "scenarios -s hello -y", config.Scenarios[0].Examples[0].Command)

	require.NoError(t, os.WriteFile(path, []byte("scenarios: [oops"), 0o600))
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestPagesAndRender(t *testing.T) {
	config := Config{Scenarios: []Extra{{
		ID:       "hello",
		Examples: []Example{{Command: "scenarios -s hello -y", Description: "Run without questions."}},
		Notes:    []string{"Remembers the name in state.json."},
	}}}

	data := pages(config, "October 15, 2026", "1.2.3")
	require.Len(t, data, 2)
	assert.Equal(t, "hello", data[0].ID)
	assert.Equal(t, "s3-basics", data[1].ID)
	assert.Empty(t, data[1].Examples)

	var buf bytes.Buffer
	require.NoError(t, render(&buf, data[0]))
	page := buf.String()

	assert.Contains(t, page, "# scenarios -s hello")
	assert.Contains(t, page, "| 1 | header | output |")
	assert.Contains(t, page, "| input |")
	assert.Contains(t, page, "    scenarios -s hello -y")
	assert.Contains(t, page, "- Remembers the name in state.json.")
	assert.Contains(t, page, "version 1.2.3")
}

func TestFlatten(t *testing.T) {
	inner := scenario.New("inner", []scenario.Step{scenario.NewOutputStep("b", scenario.Literal("B"))})
	outer := []scenario.Step{scenario.NewOutputStep("a", scenario.Literal("A")), inner}

	assert.Equal(t, []StepDoc{
		{Depth: 0, Name: "a", Kind: "output"},
		{Depth: 0, Name: "inner", Kind: "scenario"},
		{Depth: 1, Name: "b", Kind: "output"},
	}, flatten(outer, 0))
}
