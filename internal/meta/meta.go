// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/staranto/scenarios/internal/config"
)

// Meta contains runtime metadata shared by the root command and the scenario
// it launches. It carries CLI arguments, loaded configuration, context, and
// the starting working directory, which is where state.json lives.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
