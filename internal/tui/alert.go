package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const successAlertTTL = 2 * time.Second

// alertModel is the modal message box. Success alerts close on their own;
// errors stay until dismissed with enter or esc.
type alertModel struct {
	message string
	success bool
	// seq identifies the alert so a stale auto-close tick is ignored.
	seq int
}

type alertExpiredMsg struct {
	seq int
}

func (a alertModel) visible() bool {
	return a.message != ""
}

func (a alertModel) View() string {
	if a.success {
		return overlayBoxStyle.BorderForeground(successStyle.GetForeground()).
			Render(successStyle.Render("Success") + "\n\n" + a.message + "\n\n" + helpStyle.Render("enter / esc: close"))
	}
	return overlayBoxStyle.BorderForeground(errorStyle.GetForeground()).
		Render(errorStyle.Render("Error") + "\n\n" + a.message + "\n\n" + helpStyle.Render("enter / esc: close"))
}

func (a alertModel) expireCmd() tea.Cmd {
	if !a.success {
		return nil
	}
	seq := a.seq
	return tea.Tick(successAlertTTL, func(time.Time) tea.Msg {
		return alertExpiredMsg{seq: seq}
	})
}
