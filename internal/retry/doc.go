// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package retry re-runs a fallible operation on an interval until it succeeds
// or a bounded number of attempts is used up. It holds no state between calls.
package retry
