// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewRootFlags builds the root command flags. When cfgFile is set, the AWS
// flags also read "<ns>.<flag>" and then "<flag>" from it.
func NewRootFlags(ns string, cfgFile string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "scenario",
			Aliases: []string{"s"},
			Usage:   "name of the scenario to run",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "answer yes to every confirmation and take every default",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "trace every step and the state it sees to stderr",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "list the available scenarios",
			Value:   false,
		},
		&cli.StringFlag{
			Name:  "state-file",
			Usage: "where the save and load steps keep state. Defaults to state.json",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("SCENARIOS_STATE_FILE"),
			),
		},
		&cli.BoolFlag{
			Name:        "version",
			Usage:       "scenarios version info",
			HideDefault: true,
		},
		NewRegionFlag(ns, cfgFile),
		NewProfileFlag(ns, cfgFile),
		NewEndpointFlag(ns, cfgFile),
	}

	return
}

// NewRegionFlag constructs the "region" flag, optionally namespaced to a
// scenario and config file.
func NewRegionFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region. Overrides the shared AWS config",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_REGION"),
			cli.EnvVar("AWS_DEFAULT_REGION"),
		),
	}
	return withConfigFile(flag, params...)
}

// NewProfileFlag constructs the "profile" flag, optionally namespaced to a
// scenario and config file.
func NewProfileFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared config profile",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_PROFILE"),
		),
	}
	return withConfigFile(flag, params...)
}

// NewEndpointFlag constructs the "endpoint" flag used to point S3 calls at a
// compatible service such as LocalStack.
func NewEndpointFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "endpoint",
		Usage: "S3-compatible endpoint URL",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("SCENARIOS_S3_ENDPOINT"),
		),
	}
	return withConfigFile(flag, params...)
}

// withConfigFile adds config file sources when params holds a namespace and a
// non-empty config file path.
func withConfigFile(flag *cli.StringFlag, params ...string) *cli.StringFlag {
	if len(params) == 2 && params[1] != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}
	return flag
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain. An empty ns adds only the global
// source.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
