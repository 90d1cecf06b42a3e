// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package state defines the state bag shared by the steps of a scenario run,
// along with JSON snapshots of it and the optional state.json round trip.
package state
