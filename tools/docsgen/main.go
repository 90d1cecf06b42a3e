// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes one Markdown page per registered scenario. Step lists come
// from the scenario itself and examples and notes from
// <docs>/templates/scenarios.yaml.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/staranto/scenarios/internal/scenario"
	"github.com/staranto/scenarios/internal/scenarios"
)

type Config struct {
	Scenarios []Extra `yaml:"scenarios"`
}

// Extra is the hand written part of a page.
type Extra struct {
	ID       string    `yaml:"id"`
	Examples []Example `yaml:"examples"`
	Notes    []string  `yaml:"notes,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type StepDoc struct {
	Depth int
	Name  string
	Kind  string
}

type TemplateData struct {
	Extra
	Description string
	Steps       []StepDoc
	Date        string
	Version     string
}

const pageTemplate = `# scenarios -s {{ .ID }}

{{ .Description }}

## Steps

| # | step | kind |
|---|------|------|
{{- range $i, $s := .Steps }}
| {{ inc $i }} | {{ indent $s.Depth }}{{ $s.Name }} | {{ $s.Kind }} |
{{- end }}
{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

    {{ .Command }}
{{ end }}{{ end }}{{ if .Notes }}
## Notes
{{ range .Notes }}
- {{ . }}
{{- end }}
{{ end }}
_Generated {{ .Date }} for version {{ .Version }}._
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	config, err := loadConfig(filepath.Join(docs, "templates", "scenarios.yaml"))
	if err != nil {
		panic(err)
	}

	folder := filepath.Join(docs, "scenarios")
	if err := os.MkdirAll(folder, 0755); err != nil {
		panic(err)
	}

	version := getVersion()
	date := time.Now().Format("January 2, 2006")

	for _, data := range pages(config, date, version) {
		path := filepath.Join(folder, data.ID+".md")
		fmt.Println("Generating", path)

		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := render(file, data); err != nil {
			panic(err)
		}
		file.Close()
	}
}

// loadConfig reads the extras file. A missing file yields an empty config.
func loadConfig(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(data, &config)
	return config, err
}

// pages builds the template data for every registered scenario.
func pages(config Config, date, version string) []TemplateData {
	extras := map[string]Extra{}
	for _, e := range config.Scenarios {
		extras[e.ID] = e
	}

	var out []TemplateData
	for _, entry := range scenarios.All() {
		sc := entry.Build(scenarios.Deps{})
		extra := extras[entry.Name]
		extra.ID = entry.Name
		out = append(out, TemplateData{
			Extra:       extra,
			Description: entry.Description,
			Steps:       flatten(sc.Steps(), 0),
			Date:        date,
			Version:     version,
		})
	}
	return out
}

// flatten lists steps depth first, descending into nested scenarios.
func flatten(steps []scenario.Step, depth int) []StepDoc {
	var out []StepDoc
	for _, s := range steps {
		out = append(out, StepDoc{Depth: depth, Name: s.Name(), Kind: s.Kind()})
		if nested, ok := s.(*scenario.Scenario); ok {
			out = append(out, flatten(nested.Steps(), depth+1)...)
		}
	}
	return out
}

func render(w io.Writer, data TemplateData) error {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"inc":    func(i int) int { return i + 1 },
		"indent": func(n int) string { return strings.Repeat("&nbsp;&nbsp;", n) },
	}).Parse(pageTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
