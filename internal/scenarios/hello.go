// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenarios

import (
	"github.com/staranto/scenarios/internal/scenario"
	"github.com/staranto/scenarios/internal/state"
)

const helloDescription = "Greets you by name and can remember it for next time."

func init() {
	Register(Entry{Name: "hello", Description: helloDescription, Build: NewHello})
}

// NewHello builds the greeting demo. A name saved by an earlier run is picked
// up from the state file and the question is skipped.
func NewHello(d Deps) *scenario.Scenario {
	known := func(s state.State) bool { return s.String("user") != "" }

	steps := []scenario.Step{
		scenario.NewOutputStep("header", scenario.Literal("Hello, scenarios"), d.say(scenario.Header())...),
		scenario.LoadStateStep(d.StatePath),
		scenario.NewOutputStep("welcome", scenario.Derived(func(s state.State) string {
			if known(s) {
				return "Welcome back."
			}
			return "Welcome"
		}), d.say()...),
		scenario.NewInputStep("user", scenario.Literal("What is your name?"),
			d.ask(scenario.WithDefault("friend"), scenario.SkipWhen(known))...),
		scenario.NewOutputStep("greeting", scenario.Derived(func(s state.State) string {
			return "Hi " + s.String("user")
		}), d.say()...),
		scenario.NewInputStep("remember", scenario.Literal("Remember your name for next time?"),
			d.ask(scenario.WithType(scenario.TypeConfirm))...),
		scenario.SaveStateStep(d.StatePath,
			scenario.SkipWhen(func(s state.State) bool { return !s.Bool("remember") })),
	}

	return scenario.New("hello", steps, d.scenarioOptions(helloDescription)...)
}
