// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/staranto/scenarios/internal/prompt"
	"github.com/staranto/scenarios/internal/state"
)

// RunOptions is passed unchanged to every step of a run.
type RunOptions struct {
	// ConfirmAll answers every confirmation with yes, takes input defaults
	// without asking, skips paced output and runs looping actions once.
	ConfirmAll bool
	// Verbose traces each step and the state it sees.
	Verbose bool
}

// Step is one unit of a scenario. Handle may read and write the shared state
// bag.
type Step interface {
	Name() string
	Kind() string
	Handle(ctx context.Context, s state.State, opts RunOptions) error
}

// Logger writes narration.
type Logger interface {
	Log(ctx context.Context, text string) error
	Box(text string) string
}

// PacedLogger writes narration gradually, by character or by line.
type PacedLogger interface {
	Logger
	LogLines(ctx context.Context, text string) error
}

// Prompter asks the user a question and returns a typed answer.
type Prompter interface {
	Input(ctx context.Context, message string, def string) (string, error)
	Select(ctx context.Context, message string, choices []prompt.Choice, def string) (any, error)
	MultiSelect(ctx context.Context, message string, choices []prompt.Choice) ([]any, error)
	Confirm(ctx context.Context, message string) (bool, error)
}

// Definition errors. They indicate a mistake in how a scenario was put
// together, not a runtime failure.
var (
	ErrUnsupportedInput = errors.New("unsupported input type")
	ErrMalformedWhile   = errors.New("malformed while config")
)

// StepError records which step failed. Unwrap and Cause both return the
// step's own error.
type StepError struct {
	Step string
	Kind string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step %q: %v", e.Kind, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Cause satisfies github.com/pkg/errors.Cause.
func (e *StepError) Cause() error { return e.Err }
