// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"fmt"
	"sync"
)

// Scripted answers prompts from a fixed script keyed by prompt message. Each
// message holds a queue so a question asked in a loop can get a different
// answer every time. Every call is recorded in Asked.
type Scripted struct {
	mu      sync.Mutex
	answers map[string][]any
	Asked   []string
}

// NewScripted returns a Scripted prompter with the given answer queues.
func NewScripted(answers map[string][]any) *Scripted {
	copied := make(map[string][]any, len(answers))
	for k, v := range answers {
		copied[k] = append([]any(nil), v...)
	}
	return &Scripted{answers: copied}
}

func (s *Scripted) next(message string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Asked = append(s.Asked, message)
	queue := s.answers[message]
	if len(queue) == 0 {
		return nil, fmt.Errorf("no scripted answer for %q", message)
	}
	s.answers[message] = queue[1:]
	return queue[0], nil
}

// Input returns the next scripted string, or def when the scripted answer is
// the empty string.
func (s *Scripted) Input(ctx context.Context, message string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v, err := s.next(message)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("scripted answer for %q is %T, want string", message, v)
	}
	if str == "" {
		return def, nil
	}
	return str, nil
}

// Select returns the next scripted value as is, or the value of the choice
// named def when the scripted answer is the empty string.
func (s *Scripted) Select(ctx context.Context, message string, choices []Choice, def string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := s.next(message)
	if err != nil {
		return nil, err
	}
	if v == "" && def != "" && len(choices) > 0 {
		return choices[DefaultIndex(choices, def)].Value, nil
	}
	return v, nil
}

// MultiSelect returns the next scripted []any.
func (s *Scripted) MultiSelect(ctx context.Context, message string, _ []Choice) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := s.next(message)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("scripted answer for %q is %T, want []any", message, v)
	}
	return list, nil
}

// Confirm returns the next scripted bool.
func (s *Scripted) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	v, err := s.next(message)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("scripted answer for %q is %T, want bool", message, v)
	}
	return b, nil
}
