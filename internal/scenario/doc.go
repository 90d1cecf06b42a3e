// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package scenario runs narrated, human-paced walkthroughs. A Scenario is an
// ordered list of steps sharing one state bag. Output steps print narration,
// input steps ask the user and store the answer under their name, and action
// steps run arbitrary work, optionally looping while the user keeps answering
// the same way. Steps run strictly in order and the first error stops the run.
package scenario
