// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"encoding/json"
	"io"

	apexlog "github.com/apex/log"
	apexjson "github.com/apex/log/handlers/json"

	"github.com/staranto/scenarios/internal/differ"
	"github.com/staranto/scenarios/internal/log"
	"github.com/staranto/scenarios/internal/state"
)

// tracer writes one JSON record per step before it runs (kind, name,
// timestamp, state snapshot) and one after it when the step changed state.
type tracer struct {
	logger *apexlog.Logger
}

func newTracer(w io.Writer) *tracer {
	return &tracer{logger: &apexlog.Logger{
		Handler: apexjson.New(w),
		Level:   apexlog.DebugLevel,
	}}
}

func (t *tracer) beforeStep(step Step, s state.State) []byte {
	snap := state.Snapshot(s)
	t.logger.WithFields(apexlog.Fields{
		"kind":  step.Kind(),
		"step":  step.Name(),
		"state": json.RawMessage(snap),
	}).Debug("step")
	return snap
}

func (t *tracer) afterStep(step Step, before []byte, s state.State) {
	delta, changed, err := differ.Delta(before, state.Snapshot(s), false, state.NameKey)
	if err != nil {
		log.WithError(err).Warnf("trace delta for %q", step.Name())
		return
	}
	if !changed {
		return
	}
	t.logger.WithFields(apexlog.Fields{
		"kind":  step.Kind(),
		"step":  step.Name(),
		"delta": delta,
	}).Debug("state changed")
}
