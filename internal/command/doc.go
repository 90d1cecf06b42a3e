// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the scenarios CLI. It wires the root flags, their
// config file sources, validation, shell completion and the action that runs
// the selected scenario.
package command
