// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package console writes scenario narration. Plain writes text at once; Paced
// writes it a character or a line at a time to read like typed narration.
package console
