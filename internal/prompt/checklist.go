// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func runChecklist(ctx context.Context, message string, choices []Choice, in io.Reader, out io.Writer) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := tea.NewProgram(newChecklist(message, choices),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	m, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	final, ok := m.(checklist)
	if !ok {
		return nil, errors.New("unexpected checklist model")
	}
	if final.aborted {
		return nil, ErrInterrupted
	}
	return final.selected(), nil
}

type checklistKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding
}

var defaultChecklistKeys = checklistKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c", "q"), key.WithHelp("esc", "quit")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// checklist is a bubbletea model for picking any subset of choices.
type checklist struct {
	title   string
	choices []Choice
	cursor  int
	checked map[int]bool
	keys    checklistKeys
	done    bool
	aborted bool
}

func newChecklist(title string, choices []Choice) checklist {
	return checklist{
		title:   title,
		choices: choices,
		checked: map[int]bool{},
		keys:    defaultChecklistKeys,
	}
}

func (m checklist) Init() tea.Cmd { return nil }

func (m checklist) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(k, m.keys.Submit):
		m.done = true
		return m, tea.Quit
	case key.Matches(k, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(k, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(k, m.keys.Toggle):
		if len(m.choices) > 0 {
			// Copy so earlier model values stay untouched.
			checked := make(map[int]bool, len(m.checked)+1)
			for i, v := range m.checked {
				checked[i] = v
			}
			checked[m.cursor] = !checked[m.cursor]
			m.checked = checked
		}
	}
	return m, nil
}

func (m checklist) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	for i, c := range m.choices {
		cursor := " "
		if m.cursor == i {
			cursor = cursorStyle.Render("▸")
		}
		mark := " "
		if m.checked[i] {
			mark = "x"
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", cursor, mark, c.Name)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine(m.keys.Toggle, m.keys.Submit, m.keys.Quit)))
	b.WriteString("\n")
	return b.String()
}

// selected returns the values of checked choices in choice order. An empty
// selection is an empty, non-nil slice.
func (m checklist) selected() []any {
	out := []any{}
	for i, c := range m.choices {
		if m.checked[i] {
			out = append(out, c.Value)
		}
	}
	return out
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
