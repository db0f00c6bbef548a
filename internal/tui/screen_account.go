package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/fresh-alert/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	accountNewPassword = iota
	accountConfirmPassword
	accountProvider
	accountSecretKey
	accountFields
)

// allProviders is the display order on the account screen. Only
// [models.EnabledProviders] can be selected.
var allProviders = []string{models.ProviderKimi, models.ProviderOpenAI, models.ProviderTongyi}

type accountAction int

const (
	accountNone accountAction = iota
	accountChangePassword
	accountAddSecretKey
	accountBack
)

type accountModel struct {
	password textinput.Model
	confirm  textinput.Model
	secret   textinput.Model
	provider string
	focus    int
}

func newAccountModel(defaultProvider string) accountModel {
	password := textinput.New()
	password.Placeholder = "new password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Width = 32

	confirm := textinput.New()
	confirm.Placeholder = "repeat new password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'
	confirm.Width = 32

	secret := textinput.New()
	secret.Placeholder = "provider API key"
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'
	secret.Width = 40

	if !slices.Contains(models.EnabledProviders, defaultProvider) {
		defaultProvider = models.EnabledProviders[0]
	}

	m := accountModel{password: password, confirm: confirm, secret: secret, provider: defaultProvider}
	return m.setFocus(accountNewPassword)
}

func (m accountModel) Update(msg tea.Msg) (accountModel, tea.Cmd, accountAction) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.esc):
			return m, nil, accountBack
		case key.Matches(k, keys.enter):
			switch m.focus {
			case accountNewPassword:
				return m.setFocus(accountConfirmPassword), nil, accountNone
			case accountConfirmPassword:
				return m, nil, accountChangePassword
			case accountProvider:
				return m.setFocus(accountSecretKey), nil, accountNone
			default:
				return m, nil, accountAddSecretKey
			}
		case key.Matches(k, keys.tab):
			return m.setFocus((m.focus + 1) % accountFields), nil, accountNone
		case key.Matches(k, keys.backtab):
			return m.setFocus((m.focus - 1 + accountFields) % accountFields), nil, accountNone
		}

		if m.focus == accountProvider {
			switch {
			case key.Matches(k, keys.left):
				m.provider = cycleProvider(m.provider, -1)
			case key.Matches(k, keys.right):
				m.provider = cycleProvider(m.provider, 1)
			}
			return m, nil, accountNone
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case accountNewPassword:
		m.password, cmd = m.password.Update(msg)
	case accountConfirmPassword:
		m.confirm, cmd = m.confirm.Update(msg)
	case accountSecretKey:
		m.secret, cmd = m.secret.Update(msg)
	}
	return m, cmd, accountNone
}

func (m accountModel) setFocus(i int) accountModel {
	m.password.Blur()
	m.confirm.Blur()
	m.secret.Blur()
	m.focus = i

	switch i {
	case accountNewPassword:
		m.password.Focus()
	case accountConfirmPassword:
		m.confirm.Focus()
	case accountSecretKey:
		m.secret.Focus()
	}
	return m
}

func (m accountModel) clearPasswords() accountModel {
	m.password.SetValue("")
	m.confirm.SetValue("")
	return m.setFocus(accountNewPassword)
}

func (m accountModel) clearSecretKey() accountModel {
	m.secret.SetValue("")
	return m
}

// cycleProvider moves to the next enabled provider in direction dir.
func cycleProvider(current string, dir int) string {
	enabled := models.EnabledProviders
	i := slices.Index(enabled, current)
	if i < 0 {
		return enabled[0]
	}
	return enabled[(i+dir+len(enabled))%len(enabled)]
}

func (m accountModel) View(user models.User) string {
	var b strings.Builder

	b.WriteString("Signed in as " + user.Username + "\n\n")
	b.WriteString(titleStyle.Render("Change password") + "\n")
	b.WriteString("New password: [" + m.password.View() + "]\n")
	b.WriteString("Confirm:      [" + m.confirm.View() + "]\n\n")

	b.WriteString(titleStyle.Render("Recognition secret key") + "\n")
	b.WriteString("Provider:     ")
	for _, p := range allProviders {
		label := p
		switch {
		case p == m.provider && m.focus == accountProvider:
			label = selectedStyle.Render(" " + p + " ")
		case p == m.provider:
			label = titleStyle.Render("[" + p + "]")
		case !slices.Contains(models.EnabledProviders, p):
			label = helpStyle.Render(p + " (soon)")
		}
		b.WriteString(label + "  ")
	}
	b.WriteString("\n")
	b.WriteString("Secret key:   [" + m.secret.View() + "]")

	return renderPage("ACCOUNT", b.String(), "enter: save section │ tab: next field │ ←/→: provider │ esc: back")
}
