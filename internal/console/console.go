// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/staranto/scenarios/internal/config"
	"github.com/staranto/scenarios/internal/output"
	"github.com/staranto/scenarios/internal/retry"
)

const (
	defaultCharDelay = 8 * time.Millisecond
	defaultLineDelay = 120 * time.Millisecond
)

// Plain writes narration immediately.
type Plain struct {
	w io.Writer
}

// NewPlain returns a Plain writing to w, or to os.Stdout when w is nil.
func NewPlain(w io.Writer) *Plain {
	if w == nil {
		w = os.Stdout
	}
	return &Plain{w: w}
}

// Log writes text followed by a newline.
func (p *Plain) Log(_ context.Context, text string) error {
	_, err := fmt.Fprintln(p.w, text)
	return err
}

// Box decorates text for use as a section header.
func (p *Plain) Box(text string) string {
	return output.Box(text)
}

// Paced writes narration with a delay after every character, or after every
// line for preformatted text.
type Paced struct {
	w         io.Writer
	charDelay time.Duration
	lineDelay time.Duration
	sleep     func(context.Context, time.Duration) error
}

// PacedOption customizes a Paced logger.
type PacedOption func(*Paced)

// WithDelays overrides the per-character and per-line delays.
func WithDelays(char, line time.Duration) PacedOption {
	return func(p *Paced) {
		p.charDelay = char
		p.lineDelay = line
	}
}

// WithSleep replaces the timed suspension between writes.
func WithSleep(sleep func(context.Context, time.Duration) error) PacedOption {
	return func(p *Paced) { p.sleep = sleep }
}

// NewPaced returns a Paced logger writing to w (os.Stdout when nil). Delays
// come from pacing.char_delay_ms and pacing.line_delay_ms. They are dropped
// when pacing.enabled is false or w is a file that is not a terminal.
func NewPaced(w io.Writer, opts ...PacedOption) *Paced {
	if w == nil {
		w = os.Stdout
	}

	p := &Paced{w: w, sleep: retry.Wait}
	p.charDelay, _ = config.GetDuration("pacing.char_delay_ms", defaultCharDelay)
	p.lineDelay, _ = config.GetDuration("pacing.line_delay_ms", defaultLineDelay)

	enabled, _ := config.GetBool("pacing.enabled", true)
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		enabled = false
	}
	if !enabled {
		p.charDelay, p.lineDelay = 0, 0
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Log writes text one character at a time, then a newline.
func (p *Paced) Log(ctx context.Context, text string) error {
	for _, r := range text {
		if _, err := io.WriteString(p.w, string(r)); err != nil {
			return err
		}
		if err := p.pause(ctx, p.charDelay); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w)
	return err
}

// LogLines writes text one line at a time. Used for preformatted text whose
// layout should appear intact.
func (p *Paced) LogLines(ctx context.Context, text string) error {
	for _, line := range strings.Split(text, "\n") {
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
		if err := p.pause(ctx, p.lineDelay); err != nil {
			return err
		}
	}
	return nil
}

// Box decorates text for use as a section header.
func (p *Paced) Box(text string) string {
	return output.Box(text)
}

func (p *Paced) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	return p.sleep(ctx, d)
}
