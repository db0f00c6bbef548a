package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuAction int

const (
	menuNone menuAction = iota
	menuLogin
	menuRegister
	menuQuit
)

type menuModel struct {
	items []string
	idx   int
}

func newMenuModel() menuModel {
	return menuModel{items: []string{"Log in", "Register", "Quit"}}
}

// Update moves the cursor and reports the chosen action on enter.
func (m menuModel) Update(msg tea.KeyMsg) (menuModel, menuAction) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		return m, menuAction(m.idx + 1)
	}
	return m, menuNone
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString("Track what is in your fridge before it expires.\n\n")
	for i, item := range m.items {
		cursor := " "
		line := fmt.Sprintf("%d  %s", i+1, item)
		if i == m.idx {
			cursor = ">"
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + " " + line + "\n")
	}

	return renderPage("FRESH ALERT", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
