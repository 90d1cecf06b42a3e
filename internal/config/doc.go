// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for the optional user
// configuration. The configuration is a YAML document named scenarios.yaml in
// the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/scenarios.yaml or $HOME/.config/scenarios.yaml
//   - macOS: $HOME/Library/Application Support/scenarios.yaml
//   - Windows: %AppData%/scenarios.yaml
//
// SCENARIOS_CFG_FILE overrides the location. Any key may be nested under a
// scenario name to apply to that scenario only.
package config
