// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package scenario

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/scenarios/internal/prompt"
	"github.com/staranto/scenarios/internal/state"
)

func TestActionStep_Once(t *testing.T) {
	step := NewActionStep("greet", appendName("greet"))

	s := state.New(nil, "test")
	require.NoError(t, step.Handle(context.Background(), s, RunOptions{}))
	assert.Equal(t, []string{"greet"}, s["log"])
	assert.Equal(t, "action", step.Kind())
}

func TestActionStep_Error(t *testing.T) {
	boom := errors.New("boom")
	step := NewActionStep("fail", func(context.Context, state.State) error { return boom })

	err := step.Handle(context.Background(), state.New(nil, "test"), RunOptions{})
	assert.Same(t, boom, err)
}

func TestActionStep_NilAction(t *testing.T) {
	step := NewActionStep("empty", nil)
	err := step.Handle(context.Background(), state.New(nil, "test"), RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestActionStep_SkipWhen(t *testing.T) {
	step := NewActionStep("greet", appendName("greet"), SkipWhen(func(state.State) bool { return true }))

	s := state.New(nil, "test")
	require.NoError(t, step.Handle(context.Background(), s, RunOptions{}))
	assert.NotContains(t, s, "log")
}

// loopStep builds an action step whose action, output and input each append
// to j, and whose input answers from scripted.
func loopStep(j *journal, scripted *prompt.Scripted, equals any) *ActionStep {
	output := NewOutputStep("report", Derived(func(state.State) string {
		j.events = append(j.events, "output")
		return ""
	}))
	input := NewInputStep("again", Derived(func(state.State) string {
		j.events = append(j.events, "input")
		return "Again?"
	}), WithType(TypeConfirm), WithPrompter(scripted))

	return NewActionStep("work", func(_ context.Context, s state.State) error {
		j.events = append(j.events, "action")
		n, _ := s["count"].(int)
		s["count"] = n + 1
		return nil
	}, While(WhileConfig{Input: input, Output: output, InputEquals: equals}))
}

func TestActionStep_While(t *testing.T) {
	tests := []struct {
		name    string
		answers []any
		runs    int
	}{
		{name: "stops after first answer", answers: []any{false}, runs: 1},
		{name: "one repeat", answers: []any{true, false}, runs: 2},
		{name: "three repeats", answers: []any{true, true, true, false}, runs: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &journal{}
			p := prompt.NewScripted(map[string][]any{"Again?": tt.answers})
			step := loopStep(j, p, true)

			s := state.New(nil, "test")
			require.NoError(t, step.Handle(context.Background(), s, RunOptions{}))
			assert.Equal(t, tt.runs, s["count"])
			assert.Len(t, p.Asked, tt.runs)

			var want []string
			for i := 0; i < tt.runs; i++ {
				want = append(want, "action", "output", "input")
			}
			assert.Equal(t, want, j.events)
			assert.Equal(t, false, s["again"])
		})
	}
}

func TestActionStep_WhileConfirmAll(t *testing.T) {
	j := &journal{}
	p := prompt.NewScripted(nil)
	step := loopStep(j, p, true)

	s := state.New(nil, "test")
	require.NoError(t, step.Handle(context.Background(), s, RunOptions{ConfirmAll: true}))
	assert.Equal(t, 1, s["count"])
	assert.Equal(t, []string{"action"}, j.events)
	assert.Empty(t, p.Asked)
}

func TestActionStep_WhileStrictEquality(t *testing.T) {
	// A string "true" never equals the boolean true, so the loop runs once.
	j := &journal{}
	p := prompt.NewScripted(map[string][]any{"Again?": {true}})
	step := loopStep(j, p, "true")

	s := state.New(nil, "test")
	require.NoError(t, step.Handle(context.Background(), s, RunOptions{}))
	assert.Equal(t, 1, s["count"])
}

func TestActionStep_WhileMalformed(t *testing.T) {
	input := NewInputStep("again", Literal("Again?"), WithType(TypeConfirm))
	output := NewOutputStep("report", Literal("done"), Fast())

	tests := []struct {
		name string
		cfg  WhileConfig
	}{
		{name: "missing input", cfg: WhileConfig{Output: output, InputEquals: true}},
		{name: "missing output", cfg: WhileConfig{Input: input, InputEquals: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := NewActionStep("work", appendName("work"), While(tt.cfg))

			s := state.New(nil, "test")
			err := step.Handle(context.Background(), s, RunOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedWhile))
			assert.NotContains(t, s, "log", "action must not run")
		})
	}
}

func TestActionStep_WhileErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")

	t.Run("input error", func(t *testing.T) {
		p := prompt.NewScripted(nil)
		input := NewInputStep("again", Literal("Again?"), WithType(TypeConfirm), WithPrompter(p))
		output := NewOutputStep("report", Literal(""))
		step := NewActionStep("work", appendName("work"), While(WhileConfig{Input: input, Output: output, InputEquals: true}))

		err := step.Handle(context.Background(), state.New(nil, "test"), RunOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Again?")
	})

	t.Run("action error on a later pass", func(t *testing.T) {
		p := prompt.NewScripted(map[string][]any{"Again?": {true}})
		input := NewInputStep("again", Literal("Again?"), WithType(TypeConfirm), WithPrompter(p))
		output := NewOutputStep("report", Literal(""))

		calls := 0
		step := NewActionStep("work", func(context.Context, state.State) error {
			calls++
			if calls == 2 {
				return boom
			}
			return nil
		}, While(WhileConfig{Input: input, Output: output, InputEquals: true}))

		err := step.Handle(context.Background(), state.New(nil, "test"), RunOptions{})
		assert.Same(t, boom, err)
		assert.Equal(t, 2, calls)
	})
}

func TestStrictEqual(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{true, true, true},
		{true, false, false},
		{"yes", "yes", true},
		{"true", true, false},
		{1, 1, true},
		{1, int64(1), false},
		{1, 1.0, false},
		{nil, nil, true},
		{nil, false, false},
		{[]any{"a"}, []any{"a"}, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%v", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, strictEqual(tt.a, tt.b))
		})
	}
}
