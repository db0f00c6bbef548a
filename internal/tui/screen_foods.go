// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/fresh-alert/internal/expiration"
	"github.com/MKhiriev/fresh-alert/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	colName       = 24
	colDate       = 10
	colShelfLife  = 10
	colDaysLeft   = 14
	tableRowWidth = colName + colDate*2 + colShelfLife + colDaysLeft + 4*3
)

// foodsAction is what the user asked the food table to do.
type foodsAction int

const (
	foodsNone foodsAction = iota
	foodsAdd
	foodsDelete
	foodsRefresh
	foodsCopy
	foodsAccount
	foodsLogout
	foodsQuit
)

type foodsModel struct {
	search    textinput.Model
	searching bool
	idx       int
	confirm   bool
}

func newFoodsModel() foodsModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search by name"
	search.Width = 30
	return foodsModel{search: search}
}

func (m foodsModel) term() string {
	return m.search.Value()
}

// clamp keeps the cursor inside a list of n rows.
func (m foodsModel) clamp(n int) foodsModel {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

// Update handles keys for the table. rows is the currently visible list.
func (m foodsModel) Update(msg tea.KeyMsg, rows int) (foodsModel, tea.Cmd, foodsAction) {
	if m.confirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = false
			return m, nil, foodsDelete
		case key.Matches(msg, keys.no):
			m.confirm = false
		}
		return m, nil, foodsNone
	}

	if m.searching {
		switch {
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
			m.searching = false
			m.search.Blur()
			if key.Matches(msg, keys.esc) {
				m.search.SetValue("")
			}
			return m.clamp(rows), nil, foodsNone
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.idx = 0
		return m, cmd, foodsNone
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < rows-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus(), foodsNone
	case key.Matches(msg, keys.newItem):
		return m, nil, foodsAdd
	case key.Matches(msg, keys.delete):
		if rows > 0 {
			m.confirm = true
		}
	case key.Matches(msg, keys.refresh):
		return m, nil, foodsRefresh
	case key.Matches(msg, keys.copy):
		if rows > 0 {
			return m, nil, foodsCopy
		}
	case key.Matches(msg, keys.account):
		return m, nil, foodsAccount
	case key.Matches(msg, keys.logout):
		return m, nil, foodsLogout
	case key.Matches(msg, keys.quit):
		return m, nil, foodsQuit
	}

	return m, nil, foodsNone
}

func (m foodsModel) View(user models.User, foods []models.Food, summary map[expiration.Bucket]int, busy string) string {
	var b strings.Builder

	b.WriteString("Welcome, " + user.Username + "!")
	if busy != "" {
		b.WriteString("  " + busy)
	}
	b.WriteString("\n")
	b.WriteString(renderSummary(summary))
	b.WriteString("\n\n")

	if m.searching || m.term() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	header := fmt.Sprintf("  %-*s │ %-*s │ %-*s │ %-*s │ %-*s",
		colName, "Name", colDate, "Produced", colShelfLife, "Shelf life", colDate, "Expires", colDaysLeft, "Days left")
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString("  " + strings.Repeat("─", tableRowWidth))
	b.WriteString("\n")

	if len(foods) == 0 {
		if m.term() != "" {
			b.WriteString("  nothing matches \"" + m.term() + "\"")
		} else {
			b.WriteString("  no food yet, press n to add some")
		}
	}

	for i, f := range foods {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(renderFoodRow(f, i == m.idx))
		b.WriteString("\n")
	}

	if m.confirm && m.idx < len(foods) {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Delete %q? y: yes │ n: no", foods[m.idx].Name)))
	}

	return renderPage("MY FOOD",
		strings.TrimRight(b.String(), "\n"),
		"n: add │ d: delete │ /: search │ r: refresh │ c: copy │ a: account │ L: log out │ q: quit")
}

func renderFoodRow(f models.Food, selected bool) string {
	row := fmt.Sprintf("%-*s │ %-*s │ %-*s │ %-*s │ %-*s",
		colName, fitText(f.Name, colName),
		colDate, f.ProductionDate,
		colShelfLife, fmt.Sprintf("%d d", f.ShelfLife),
		colDate, f.ExpirationDate,
		colDaysLeft, daysLeftText(f.DaysLeft))

	style := bucketStyle(expiration.Classify(f.DaysLeft))
	if selected {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(row)
}

func renderSummary(summary map[expiration.Bucket]int) string {
	parts := make([]string, 0, len(expiration.Buckets))
	for _, b := range expiration.Buckets {
		parts = append(parts, bucketStyle(b).Render(fmt.Sprintf(" %s: %d ", b, summary[b])))
	}
	return strings.Join(parts, " ")
}

func daysLeftText(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("expired %dd ago", -days)
	case days == 0:
		return "expires today"
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// foodSummary is the text copied to the clipboard for one record.
func foodSummary(f models.Food) string {
	return fmt.Sprintf("%s: produced %s, shelf life %d days, expires %s (%s)",
		f.Name, f.ProductionDate, f.ShelfLife, f.ExpirationDate, daysLeftText(f.DaysLeft))
}
