// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"context"
	"path/filepath"

	"github.com/staranto/scenarios/internal/config"
	"github.com/staranto/scenarios/internal/log"
	"github.com/staranto/scenarios/internal/state"
)

// SaveStateStep returns an action step writing the whole state bag as JSON to
// path. An empty path means state.file from config, else state.json in the
// working directory. Write failures stop the run.
func SaveStateStep(path string, opts ...Option) *ActionStep {
	return NewActionStep("saveState", func(_ context.Context, s state.State) error {
		return state.Save(statePath(path), s)
	}, opts...)
}

// LoadStateStep returns an action step merging a saved state file into the
// bag. A missing or malformed file is only a warning and leaves the bag as it
// was, so a scenario can always start over from scratch.
func LoadStateStep(path string, opts ...Option) *ActionStep {
	return NewActionStep("loadState", func(_ context.Context, s state.State) error {
		p := statePath(path)
		if err := state.Load(p, s); err != nil {
			log.WithError(err).Warnf("could not load %s", filepath.Base(p))
		}
		return nil
	}, opts...)
}

func statePath(path string) string {
	if path != "" {
		return path
	}
	p, _ := config.GetString("state.file", state.DefaultFile)
	return p
}
