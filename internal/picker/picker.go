// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Pick lets the user choose any number of names. It returns nil when the
// picker is cancelled.
func Pick(names []string, opts ...tea.ProgramOption) ([]string, error) {
	p := tea.NewProgram(New(names), opts...)
	m, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}
	return m.(Model).Selected(), nil
}

// Model is the bubbletea model behind Pick. A filter line narrows the list;
// SPACE toggles, ENTER confirms and ESC cancels.
type Model struct {
	items    []string
	filter   textinput.Model
	cursor   int
	selected map[string]bool
	done     bool
}

// New returns a picker model over names.
func New(names []string) Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Focus()

	return Model{
		items:    names,
		filter:   ti,
		selected: map[string]bool{},
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		visible := m.visible()
		switch key.String() {
		case "esc", "ctrl+c":
			m.selected = map[string]bool{}
			m.done = false
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(visible)-1 {
				m.cursor++
			}
			return m, nil
		case " ":
			if len(visible) > 0 {
				name := visible[m.cursor]
				m.selected[name] = !m.selected[name]
			}
			return m, nil
		case "enter":
			// ENTER with nothing toggled takes the highlighted row.
			if len(m.Selected()) == 0 && len(visible) > 0 {
				m.selected[visible[m.cursor]] = true
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("Select sets to compare:\n\n")
	b.WriteString(m.filter.View() + "\n\n")
	for i, name := range m.visible() {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.selected[name] {
			mark = "x"
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", cursor, mark, name)
	}
	return b.String() + "\nSPACE: toggle, ENTER: go, ESC: quit\n"
}

// Selected returns the toggled names in list order.
func (m Model) Selected() []string {
	var out []string
	for _, name := range m.items {
		if m.selected[name] {
			out = append(out, name)
		}
	}
	return out
}

// Done reports whether the user confirmed the selection.
func (m Model) Done() bool { return m.done }

func (m Model) visible() []string {
	f := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if f == "" {
		return m.items
	}
	var out []string
	for _, name := range m.items {
		if strings.Contains(strings.ToLower(name), f) {
			out = append(out, name)
		}
	}
	return out
}
