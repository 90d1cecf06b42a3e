// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/urfave/cli/v3"

	"github.com/staranto/scenarios/internal/meta"
	"github.com/staranto/scenarios/internal/scenarios"
)

const bashCompletionScript = `# bash completion for scenarios
_scenarios()
{
    local cur prev
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    case "$prev" in
    -s|--scenario)
        COMPREPLY=( $(compgen -W "{{ .Names }}" -- "$cur") )
        return 0
        ;;
    --state-file)
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
        ;;
    --region|--profile|--endpoint)
        return 0
        ;;
    esac

    if [[ ${COMP_CWORD} -eq 1 && $cur != -* ]]; then
        COMPREPLY=( $(compgen -W "completion" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "-s --scenario -y --yes -v --verbose -l --list --region --profile --endpoint --state-file --help --version" -- "$cur") )
    return 0
}

complete -F _scenarios scenarios
`

const zshCompletionScript = `#compdef scenarios

_scenarios() {
  _arguments -C \
    '(-s --scenario)'{-s,--scenario}'[scenario to run]:scenario:(({{ range .Entries }}{{ .Name }}\:"{{ quote .Description }}" {{ end }}))' \
    '(-y --yes)'{-y,--yes}'[answer yes to every confirmation]' \
    '(-v --verbose)'{-v,--verbose}'[trace every step]' \
    '(-l --list)'{-l,--list}'[list the available scenarios]' \
    '--region[AWS region]:region' \
    '--profile[AWS profile]:profile' \
    '--endpoint[S3-compatible endpoint URL]:url' \
    '--state-file[state file]:file:_files' \
    '--version[print the version]' \
    '1: :((completion\:"generate shell completion script"))'
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _scenarios scenarios
`

// writeCompletion renders the script for shell with the registered scenario
// names filled in.
func writeCompletion(w io.Writer, shell string) error {
	src := bashCompletionScript
	if shell == "zsh" {
		src = zshCompletionScript
	}

	tmpl, err := template.New(shell).Funcs(template.FuncMap{
		"quote": func(s string) string { return strings.ReplaceAll(s, "'", "'\\''") },
	}).Parse(src)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, struct {
		Names   string
		Entries []scenarios.Entry
	}{
		Names:   strings.Join(scenarios.Names(), " "),
		Entries: scenarios.All(),
	})
}

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash", "zsh":
		return writeCompletion(writer(cmd), shell)
	default:
		fmt.Fprintln(os.Stderr, "usage: scenarios completion [bash|zsh]")
		return nil
	}
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "scenarios completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
