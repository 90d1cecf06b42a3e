// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output provides value formatting, sorting, and the decorative
// renderings (header boxes, result tables) used by scenario narration.
package output
