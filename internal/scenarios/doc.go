// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package scenarios holds the registry of runnable scenarios and the demos
// shipped with the binary. Each demo registers itself from an init function.
package scenarios
