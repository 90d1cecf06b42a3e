// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package scenario

import (
	"context"
	"strings"

	"github.com/staranto/scenarios/internal/state"
)

// recorder is a PacedLogger that remembers what it was asked to write and how.
type recorder struct {
	entries []string
}

func (r *recorder) Log(_ context.Context, text string) error {
	r.entries = append(r.entries, "log:"+text)
	return nil
}

func (r *recorder) LogLines(_ context.Context, text string) error {
	r.entries = append(r.entries, "lines:"+text)
	return nil
}

func (r *recorder) Box(text string) string {
	return "[" + strings.Trim(text, "\n") + "]"
}

// appendName returns an action appending label to the "log" slice in state.
func appendName(label string) Action {
	return func(_ context.Context, s state.State) error {
		log, _ := s["log"].([]string)
		s["log"] = append(log, label)
		return nil
	}
}

// journal records the interleaving of actions, outputs and inputs.
type journal struct {
	events []string
}

func (j *journal) step(label string) Step {
	return NewActionStep(label, func(context.Context, state.State) error {
		j.events = append(j.events, label)
		return nil
	})
}
