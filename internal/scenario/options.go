// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenario

import (
	"github.com/staranto/scenarios/internal/prompt"
	"github.com/staranto/scenarios/internal/state"
)

// InputType selects how an InputStep asks its question.
type InputType string

const (
	TypeInput       InputType = "input"
	TypeSelect      InputType = "select"
	TypeMultiSelect InputType = "multi-select"
	TypeConfirm     InputType = "confirm"
)

// Option configures a step. Options that do not apply to a step's kind are
// ignored by its constructor.
type Option func(*stepConfig)

type stepConfig struct {
	skipWhen func(state.State) bool

	// output
	header       bool
	fast         bool
	preformatted bool
	logger       Logger
	paced        PacedLogger

	// input
	inputType   InputType
	choices     []prompt.Choice
	choicesFrom func(state.State) []prompt.Choice
	def         string
	prompter    Prompter

	// action
	while *WhileConfig
}

func applyOptions(opts []Option) stepConfig {
	var cfg stepConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// SkipWhen turns the step into a no-op whenever fn reports true for the
// current state.
func SkipWhen(fn func(state.State) bool) Option {
	return func(c *stepConfig) { c.skipWhen = fn }
}

// Header renders output inside a box, immediately.
func Header() Option {
	return func(c *stepConfig) { c.header = true }
}

// Fast writes output immediately instead of pacing it.
func Fast() Option {
	return func(c *stepConfig) { c.fast = true }
}

// Preformatted paces output by line so its layout appears intact.
func Preformatted() Option {
	return func(c *stepConfig) { c.preformatted = true }
}

// WithLogger replaces the logger used for immediate and header output.
func WithLogger(l Logger) Option {
	return func(c *stepConfig) { c.logger = l }
}

// WithPacedLogger replaces the logger used for paced output.
func WithPacedLogger(l PacedLogger) Option {
	return func(c *stepConfig) { c.paced = l }
}

// WithType selects the kind of question an input step asks.
func WithType(t InputType) Option {
	return func(c *stepConfig) { c.inputType = t }
}

// WithChoices sets the options for select and multi-select questions.
func WithChoices(choices ...prompt.Choice) Option {
	return func(c *stepConfig) { c.choices = choices }
}

// WithChoiceNames sets choices whose values are the names themselves.
func WithChoiceNames(names ...string) Option {
	return func(c *stepConfig) { c.choices = prompt.Choices(names...) }
}

// WithChoicesFrom derives the options from the state bag when the question is
// asked. It takes precedence over WithChoices.
func WithChoicesFrom(fn func(state.State) []prompt.Choice) Option {
	return func(c *stepConfig) { c.choicesFrom = fn }
}

// WithDefault sets the pre-filled answer of a free text question, or the name
// of the choice a select starts on. Under ConfirmAll the default is taken
// without asking.
func WithDefault(def string) Option {
	return func(c *stepConfig) { c.def = def }
}

// WithPrompter replaces the prompter used by an input step.
func WithPrompter(p Prompter) Option {
	return func(c *stepConfig) { c.prompter = p }
}

// While makes an action step repeat. See WhileConfig.
func While(w WhileConfig) Option {
	return func(c *stepConfig) { c.while = &w }
}
