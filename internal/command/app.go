// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/scenarios/internal/config"
	"github.com/staranto/scenarios/internal/console"
	"github.com/staranto/scenarios/internal/log"
	"github.com/staranto/scenarios/internal/meta"
	"github.com/staranto/scenarios/internal/output"
	"github.com/staranto/scenarios/internal/scenario"
	"github.com/staranto/scenarios/internal/scenarios"
)

// ErrUsage marks errors caused by how the command was invoked. The caller
// shows the help page and exits 1 for these.
var ErrUsage = errors.New("usage")

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The selected scenario is also the namespace used for config lookups, so
	// it has to be known before the flags are built.
	ns := ScenarioArg(args)
	config.Config.Namespace = ns

	cfg, _ := config.Load() //nolint
	cfgFile, _ := config.File()

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:        "scenarios",
		Usage:       "run interactive getting-started scenarios",
		UsageText:   "scenarios -s <name> [-y] [-v]",
		Description: describeScenarios(),
		Flags:       NewRootFlags(ns, cfgFile),
		Metadata: map[string]any{
			"meta": m,
		},
		Action: rootAction,
		Commands: []*cli.Command{
			completionCommandBuilder(m),
		},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// rootAction lists scenarios or runs the one named by --scenario.
func rootAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("root action: args=%v", m.Args)

	w := writer(cmd)

	if cmd.Bool("list") {
		writeScenarioTable(w)
		return nil
	}

	name := cmd.String("scenario")
	if name == "" {
		return fmt.Errorf("%w: a scenario is required (-s, --scenario)", ErrUsage)
	}
	if err := FlagValidators(name, ScenarioValidator); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	entry, _ := scenarios.Lookup(name)
	config.Config.Namespace = name

	deps := scenarios.Deps{
		Logger:    console.NewPlain(w),
		Paced:     console.NewPaced(w),
		Out:       w,
		Trace:     cmd.Root().ErrWriter,
		Region:    cmd.String("region"),
		Profile:   cmd.String("profile"),
		Endpoint:  cmd.String("endpoint"),
		StatePath: cmd.String("state-file"),
	}

	opts := scenario.RunOptions{
		ConfirmAll: cmd.Bool("yes"),
		Verbose:    cmd.Bool("verbose"),
	}
	log.Debugf("running %s: confirmAll=%t verbose=%t", name, opts.ConfirmAll, opts.Verbose)

	return entry.Build(deps).Run(ctx, opts)
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ScenarioArg finds the value given to -s/--scenario in raw args, or "".
func ScenarioArg(args []string) string {
	for i, a := range args {
		for _, name := range []string{"-s", "--scenario"} {
			if a == name && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(a, name+"="); ok {
				return v
			}
		}
	}
	return ""
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// writeScenarioTable renders the registered scenarios as a two column table.
func writeScenarioTable(w io.Writer) {
	var rows []map[string]interface{}
	for _, e := range scenarios.All() {
		rows = append(rows, map[string]interface{}{
			"scenario":    e.Name,
			"description": e.Description,
		})
	}
	output.Table(w, []string{"scenario", "description"}, rows, false)
}

// describeScenarios is the help page description: what the tool does and the
// scenarios it can run.
func describeScenarios() string {
	var b bytes.Buffer
	b.WriteString("Runs a scenario: an ordered walkthrough of narration, questions and actions.\n")
	b.WriteString("Pass -y to accept every default and confirmation without being asked.\n\n")
	b.WriteString("Scenarios:\n")
	writeScenarioTable(&b)
	return strings.TrimRight(b.String(), "\n")
}
