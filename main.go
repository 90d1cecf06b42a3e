// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/staranto/scenarios/internal/command"
	"github.com/staranto/scenarios/internal/log"
	"github.com/staranto/scenarios/internal/scenario"
	"github.com/staranto/scenarios/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// handleVersion checks for --version and returns whether it was handled. -v
// belongs to --verbose.
func handleVersion(w io.Writer, args []string) bool {
	for _, a := range args {
		if a == "--version" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// showHelp renders the root help page to w.
func showHelp(w io.Writer, program string) {
	args := []string{program, "--help"}
	app, err := command.InitApp(ctx, args)
	if err != nil {
		return
	}
	app.Writer = w
	app.ErrWriter = w
	_ = app.Run(ctx, args)
}

// exitCode maps a run error to the process exit status. Failed steps exit 2
// and everything else, including usage errors, exits 1.
func exitCode(err error) int {
	var se *scenario.StepError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &se):
		return 2
	default:
		return 1
	}
}

func realMain(args []string, stdout, stderr io.Writer) int {
	log.InitLogger()
	log.Debugf("args captured: args=%v", args)

	if handleVersion(stdout, args) {
		return 0
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}
	app.Writer = stdout
	app.ErrWriter = stderr

	err = app.Run(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app run err: err=%v", err)
		if errors.Is(err, command.ErrUsage) {
			fmt.Fprintln(stderr)
			showHelp(stderr, args[0])
		}
	}

	return exitCode(err)
}
