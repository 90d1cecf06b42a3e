// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/staranto/scenarios/internal/scenarios"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// ScenarioValidator accepts only the name of a registered scenario.
func ScenarioValidator(value any) error {
	name, _ := value.(string)
	if _, ok := scenarios.Lookup(name); !ok {
		return fmt.Errorf("unknown scenario %q, must be one of %s", name, strings.Join(scenarios.Names(), ", "))
	}
	return nil
}
