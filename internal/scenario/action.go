// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"context"
	"reflect"

	"github.com/pkg/errors"

	"github.com/staranto/scenarios/internal/state"
)

// Action does the work of an ActionStep, usually calling out to a service and
// recording the result in s.
type Action func(ctx context.Context, s state.State) error

// WhileConfig repeats an action. After every run of the action, Output is
// handled and Input is asked; the loop continues only while Input's answer
// strictly equals InputEquals.
type WhileConfig struct {
	Input       *InputStep
	Output      Step
	InputEquals any
}

// ActionStep runs an Action against the state bag.
type ActionStep struct {
	name   string
	action Action
	cfg    stepConfig
}

// NewActionStep returns a step running action. Pass While to make it loop.
func NewActionStep(name string, action Action, opts ...Option) *ActionStep {
	return &ActionStep{name: name, action: action, cfg: applyOptions(opts)}
}

func (a *ActionStep) Name() string { return a.name }
func (a *ActionStep) Kind() string { return "action" }

// Handle runs the action once, or loops per the while config. Under
// ConfirmAll the loop is bypassed and the action runs exactly once. Errors
// from the action, output or input are returned unchanged.
func (a *ActionStep) Handle(ctx context.Context, s state.State, opts RunOptions) error {
	if a.cfg.skipWhen != nil && a.cfg.skipWhen(s) {
		return nil
	}

	if a.action == nil {
		return errors.Errorf("action step %q has no action", a.name)
	}

	w := a.cfg.while
	if w == nil || opts.ConfirmAll {
		return a.action(ctx, s)
	}

	if w.Input == nil || w.Output == nil {
		return errors.Wrapf(ErrMalformedWhile, "action step %q: input and output are required", a.name)
	}

	for {
		if err := a.action(ctx, s); err != nil {
			return err
		}
		if err := w.Output.Handle(ctx, s, opts); err != nil {
			return err
		}
		answer, err := w.Input.Ask(ctx, s, opts)
		if err != nil {
			return err
		}
		if !strictEqual(answer, w.InputEquals) {
			return nil
		}
	}
}

// strictEqual reports whether a and b have the same dynamic type and are ==.
// Values of non-comparable types never match.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
