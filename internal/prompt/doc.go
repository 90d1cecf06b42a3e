// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package prompt asks the user questions and returns typed answers. Terminal
// is the interactive implementation: promptui for free text, single choice and
// yes/no, and a bubbletea checklist for multiple choice. Scripted replays
// canned answers for tests and unattended runs.
package prompt
