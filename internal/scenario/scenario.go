// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/staranto/scenarios/internal/log"
	"github.com/staranto/scenarios/internal/state"
)

// Scenario is an ordered list of steps and the state bag they share. A
// Scenario may itself be used as a step of another scenario, in which case
// its steps share the outer scenario's bag.
//
// Run must not be called concurrently on the same Scenario.
type Scenario struct {
	name        string
	description string
	steps       []Step
	state       state.State
	trace       io.Writer
}

// ScenarioOption configures a Scenario.
type ScenarioOption func(*Scenario)

// WithInitialState seeds the state bag. The scenario name is always added
// under state.NameKey.
func WithInitialState(initial map[string]any) ScenarioOption {
	return func(sc *Scenario) { sc.state = state.New(initial, sc.name) }
}

// WithDescription sets the one-line description shown in help and docs.
func WithDescription(d string) ScenarioOption {
	return func(sc *Scenario) { sc.description = d }
}

// WithTraceWriter sets where verbose traces go. Defaults to os.Stderr.
func WithTraceWriter(w io.Writer) ScenarioOption {
	return func(sc *Scenario) { sc.trace = w }
}

// New returns a Scenario running steps in the given order.
func New(name string, steps []Step, opts ...ScenarioOption) *Scenario {
	sc := &Scenario{
		name:  name,
		steps: steps,
		state: state.New(nil, name),
		trace: os.Stderr,
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

func (sc *Scenario) Name() string        { return sc.name }
func (sc *Scenario) Kind() string        { return "scenario" }
func (sc *Scenario) Description() string { return sc.description }

// Steps returns the scenario's steps in run order.
func (sc *Scenario) Steps() []Step { return sc.steps }

// State returns the scenario's own state bag.
func (sc *Scenario) State() state.State { return sc.state }

// Run handles every step in order against the scenario's state bag. The first
// failing step stops the run; its error is returned as a *StepError. State
// written before the failure stays in the bag.
func (sc *Scenario) Run(ctx context.Context, opts RunOptions) error {
	log.Debugf("scenario %q: %d steps, confirmAll=%t", sc.name, len(sc.steps), opts.ConfirmAll)
	return sc.Handle(ctx, sc.state, opts)
}

// Handle runs the steps against s, which is the caller's bag when the
// scenario is nested.
func (sc *Scenario) Handle(ctx context.Context, s state.State, opts RunOptions) error {
	var tr *tracer
	if opts.Verbose {
		tr = newTracer(sc.trace)
	}

	for _, step := range sc.steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		var before []byte
		if tr != nil {
			before = tr.beforeStep(step, s)
		}

		if err := step.Handle(ctx, s, opts); err != nil {
			var se *StepError
			if errors.As(err, &se) {
				return err
			}
			return &StepError{Step: step.Name(), Kind: step.Kind(), Err: err}
		}

		if tr != nil {
			tr.afterStep(step, before, s)
		}
	}
	return nil
}
