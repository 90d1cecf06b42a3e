// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenarios

import (
	"io"
	"os"
	"sort"
	"sync"

	"github.com/staranto/scenarios/internal/aws"
	"github.com/staranto/scenarios/internal/retry"
	"github.com/staranto/scenarios/internal/scenario"
)

// Deps are the collaborators a scenario is built with. Zero values fall back
// to the terminal, the console loggers and an S3 client loaded from the AWS
// config chain.
type Deps struct {
	Prompter scenario.Prompter
	Logger   scenario.Logger
	Paced    scenario.PacedLogger
	Out      io.Writer
	Trace    io.Writer

	S3       aws.S3API
	Region   string
	Profile  string
	Endpoint string
	Retry    retry.Config

	StatePath string
}

// Entry describes a registered scenario.
type Entry struct {
	Name        string
	Description string
	Build       func(Deps) *scenario.Scenario
}

var (
	mu       sync.RWMutex
	registry = map[string]Entry{}
)

// Register adds e, replacing any entry with the same name.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()
	registry[e.Name] = e
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[name]
	return e, ok
}

// Names returns the registered names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns every entry sorted by name.
func All() []Entry {
	names := Names()
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		e, _ := Lookup(n)
		entries = append(entries, e)
	}
	return entries
}

func (d Deps) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

// scenarioOptions carries the trace writer into scenario.New.
func (d Deps) scenarioOptions(description string) []scenario.ScenarioOption {
	opts := []scenario.ScenarioOption{scenario.WithDescription(description)}
	if d.Trace != nil {
		opts = append(opts, scenario.WithTraceWriter(d.Trace))
	}
	return opts
}

// say adds the loggers to an output step's options.
func (d Deps) say(opts ...scenario.Option) []scenario.Option {
	if d.Logger != nil {
		opts = append(opts, scenario.WithLogger(d.Logger))
	}
	if d.Paced != nil {
		opts = append(opts, scenario.WithPacedLogger(d.Paced))
	}
	return opts
}

// ask adds the prompter to an input step's options.
func (d Deps) ask(opts ...scenario.Option) []scenario.Option {
	if d.Prompter != nil {
		opts = append(opts, scenario.WithPrompter(d.Prompter))
	}
	return opts
}
