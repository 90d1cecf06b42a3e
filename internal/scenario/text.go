// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import "github.com/staranto/scenarios/internal/state"

// Text is either a literal string or one derived from the state bag at the
// moment a step runs. An empty result means "nothing to say" and turns output
// and input steps into no-ops.
type Text struct {
	literal string
	derive  func(state.State) string
}

// Literal returns a Text that always resolves to s.
func Literal(s string) Text {
	return Text{literal: s}
}

// Derived returns a Text computed from the state bag. fn should not mutate
// the bag.
func Derived(fn func(state.State) string) Text {
	return Text{derive: fn}
}

// Resolve evaluates the text against s.
func (t Text) Resolve(s state.State) string {
	if t.derive != nil {
		return t.derive(s)
	}
	return t.literal
}
