// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"context"

	"github.com/staranto/scenarios/internal/console"
	"github.com/staranto/scenarios/internal/state"
)

// OutputStep prints a literal or state-derived message. It never writes to
// the state bag.
type OutputStep struct {
	name string
	text Text
	cfg  stepConfig
}

// NewOutputStep returns a step that prints text. Output is paced unless Fast
// or Header is given, or the run sets ConfirmAll.
func NewOutputStep(name string, text Text, opts ...Option) *OutputStep {
	return &OutputStep{name: name, text: text, cfg: applyOptions(opts)}
}

func (o *OutputStep) Name() string { return o.name }
func (o *OutputStep) Kind() string { return "output" }

// Handle resolves the text and writes it, padded by a blank line on each side.
// An empty message writes nothing.
func (o *OutputStep) Handle(ctx context.Context, s state.State, opts RunOptions) error {
	if o.cfg.skipWhen != nil && o.cfg.skipWhen(s) {
		return nil
	}

	text := o.text.Resolve(s)
	if text == "" {
		return nil
	}
	message := "\n" + text + "\n"

	plain := o.cfg.logger
	if plain == nil {
		plain = console.NewPlain(nil)
	}

	if o.cfg.header {
		return plain.Log(ctx, "\n"+plain.Box(text)+"\n")
	}

	if o.cfg.fast || opts.ConfirmAll {
		return plain.Log(ctx, message)
	}

	paced := o.cfg.paced
	if paced == nil {
		paced = console.NewPaced(nil)
	}
	if o.cfg.preformatted {
		return paced.LogLines(ctx, message)
	}
	return paced.Log(ctx, message)
}
