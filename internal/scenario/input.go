// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"context"

	"github.com/pkg/errors"

	"github.com/staranto/scenarios/internal/prompt"
	"github.com/staranto/scenarios/internal/state"
)

// InputStep asks the user a question and stores the answer in the state bag
// under the step's name.
type InputStep struct {
	name   string
	prompt Text
	cfg    stepConfig
}

// NewInputStep returns a step asking prompt. The question kind defaults to
// TypeInput.
func NewInputStep(name string, prompt Text, opts ...Option) *InputStep {
	cfg := applyOptions(opts)
	if cfg.inputType == "" {
		cfg.inputType = TypeInput
	}
	return &InputStep{name: name, prompt: prompt, cfg: cfg}
}

func (i *InputStep) Name() string { return i.name }
func (i *InputStep) Kind() string { return "input" }

// Handle asks the question and discards the answer; it is in the state bag.
func (i *InputStep) Handle(ctx context.Context, s state.State, opts RunOptions) error {
	_, err := i.Ask(ctx, s, opts)
	return err
}

// Ask resolves the prompt, asks it, writes the answer to s[name] and returns
// it. An empty prompt asks nothing, writes nothing and returns nil. Under
// ConfirmAll a confirm question is answered true, and an input or select with a
// default takes it, all without prompting.
func (i *InputStep) Ask(ctx context.Context, s state.State, opts RunOptions) (any, error) {
	switch i.cfg.inputType {
	case TypeInput, TypeSelect, TypeMultiSelect, TypeConfirm:
	default:
		return nil, errors.Wrapf(ErrUnsupportedInput, "input step %q: type %q", i.name, i.cfg.inputType)
	}

	if i.cfg.skipWhen != nil && i.cfg.skipWhen(s) {
		return nil, nil
	}

	message := i.prompt.Resolve(s)
	if message == "" {
		return nil, nil
	}

	if i.cfg.inputType == TypeConfirm && opts.ConfirmAll {
		s[i.name] = true
		return true, nil
	}
	choices := i.cfg.choices
	if i.cfg.choicesFrom != nil {
		choices = i.cfg.choicesFrom(s)
	}

	if opts.ConfirmAll && i.cfg.def != "" {
		switch i.cfg.inputType {
		case TypeInput:
			s[i.name] = i.cfg.def
			return i.cfg.def, nil
		case TypeSelect:
			answer := defaultChoice(choices, i.cfg.def)
			s[i.name] = answer
			return answer, nil
		}
	}

	p := i.cfg.prompter
	if p == nil {
		p = prompt.NewTerminal()
	}

	var (
		answer any
		err    error
	)
	switch i.cfg.inputType {
	case TypeInput:
		answer, err = p.Input(ctx, message, i.cfg.def)
	case TypeSelect:
		answer, err = p.Select(ctx, message, choices, i.cfg.def)
	case TypeMultiSelect:
		answer, err = p.MultiSelect(ctx, message, choices)
	case TypeConfirm:
		answer, err = p.Confirm(ctx, message)
	}
	if err != nil {
		return nil, err
	}

	s[i.name] = answer
	return answer, nil
}

// defaultChoice returns the value of the choice named def, or def itself when
// no choice has that name.
func defaultChoice(choices []prompt.Choice, def string) any {
	for _, c := range choices {
		if c.Name == def {
			return c.Value
		}
	}
	return def
}
