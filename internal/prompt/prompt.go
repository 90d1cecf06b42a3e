// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/staranto/scenarios/internal/log"
)

// Choice is one option of a select or multi-select question. Name is shown,
// Value is returned.
type Choice struct {
	Name  string
	Value any
}

// Choices turns plain strings into choices whose value is the string itself.
func Choices(names ...string) []Choice {
	out := make([]Choice, len(names))
	for i, n := range names {
		out[i] = Choice{Name: n, Value: n}
	}
	return out
}

// DefaultIndex returns the position of the choice named def, or 0 when no
// choice has that name.
func DefaultIndex(choices []Choice, def string) int {
	for i, c := range choices {
		if c.Name == def {
			return i
		}
	}
	return 0
}

// Terminal prompts on an interactive terminal.
type Terminal struct {
	in  io.ReadCloser
	out io.WriteCloser
}

// NewTerminal returns a Terminal bound to stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout}
}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "▸ {{ .Name | cyan }}",
	Inactive: "  {{ .Name }}",
	Selected: "{{ \"✓\" | green }} {{ .Name }}",
}

// Input asks for free text. def is offered as the pre-filled answer.
func (t *Terminal) Input(ctx context.Context, message string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p := promptui.Prompt{
		Label:   message,
		Default: def,
		Stdin:   t.in,
		Stdout:  t.out,
	}
	answer, err := p.Run()
	if err != nil {
		return "", wrapInterrupt(err)
	}
	log.Tracef("input answered: %q", answer)
	return answer, nil
}

// Select asks for exactly one of choices and returns its Value. The cursor
// starts on the choice named def.
func (t *Terminal) Select(ctx context.Context, message string, choices []Choice, def string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(choices) == 0 {
		return nil, errors.New("select requires at least one choice")
	}

	pos := DefaultIndex(choices, def)
	p := promptui.Select{
		Label:     message,
		Items:     choices,
		Templates: selectTemplates,
		Size:      min(len(choices), 10),
		CursorPos: pos,
		Stdin:     t.in,
		Stdout:    t.out,
	}
	i, _, err := p.RunCursorAt(pos, max(0, pos-p.Size+1))
	if err != nil {
		return nil, wrapInterrupt(err)
	}
	return choices[i].Value, nil
}

// MultiSelect asks for any subset of choices and returns their Values in
// choice order.
func (t *Terminal) MultiSelect(ctx context.Context, message string, choices []Choice) ([]any, error) {
	return runChecklist(ctx, message, choices, t.in, t.out)
}

// Confirm asks a yes/no question. Answering no is not an error.
func (t *Terminal) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p := promptui.Prompt{
		Label:     message,
		IsConfirm: true,
		Stdin:     t.in,
		Stdout:    t.out,
	}
	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, wrapInterrupt(err)
	}
}

// ErrInterrupted reports that the user pressed Ctrl+C or Ctrl+D at a prompt.
var ErrInterrupted = errors.New("prompt interrupted")

func wrapInterrupt(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrInterrupted
	}
	return err
}
