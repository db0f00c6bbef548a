package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	authUsername = iota
	authPassword
)

// authFormModel is the username/password form shared by login and register.
type authFormModel struct {
	register bool
	inputs   []textinput.Model
	focus    int
}

func newAuthFormModel(register bool) authFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 32
		inputs[i].CharLimit = 64
	}
	inputs[authUsername].Placeholder = "username"
	inputs[authPassword].Placeholder = "password"
	inputs[authPassword].EchoMode = textinput.EchoPassword
	inputs[authPassword].EchoCharacter = '*'
	inputs[authUsername].Focus()

	return authFormModel{register: register, inputs: inputs}
}

func (m authFormModel) values() (username, password string) {
	return m.inputs[authUsername].Value(), m.inputs[authPassword].Value()
}

// Update handles focus movement and typing. submit is true when enter was
// pressed on the last field.
func (m authFormModel) Update(msg tea.Msg) (authFormModel, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.enter):
			if m.focus == len(m.inputs)-1 {
				return m, nil, true
			}
			return m.setFocus(m.focus + 1), nil, false
		case key.Matches(k, keys.tab):
			return m.setFocus((m.focus + 1) % len(m.inputs)), nil, false
		case key.Matches(k, keys.backtab):
			return m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs)), nil, false
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, false
}

func (m authFormModel) setFocus(i int) authFormModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m authFormModel) View() string {
	title := "LOG IN"
	action := "log in"
	if m.register {
		title = "REGISTER"
		action = "create account"
	}

	out := "Username: [" + m.inputs[authUsername].View() + "]\n"
	out += "Password: [" + m.inputs[authPassword].View() + "]"

	return renderPage(title, out, "enter: "+action+" │ tab: next field │ esc: back")
}
