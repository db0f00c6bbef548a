// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fresh-alert/internal/expiration"
	"github.com/MKhiriev/fresh-alert/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	foodName = iota
	foodProductionDate
	foodShelfLife
	foodImagePath
)

var (
	errShelfLifeNotNumber = errors.New("shelf life must be a whole number of days")
	errNoImagePath        = errors.New("enter the path to a photo first")
)

// foodFormAction is what the user asked the add-food form to do.
type foodFormAction int

const (
	foodFormNone foodFormAction = iota
	foodFormSubmit
	foodFormRecognize
	foodFormCancel
)

type foodFormModel struct {
	inputs []textinput.Model
	focus  int
}

func newFoodFormModel(today time.Time) foodFormModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[foodName].Placeholder = "e.g. Milk"
	inputs[foodName].CharLimit = 128
	inputs[foodProductionDate].Placeholder = expiration.DateLayout
	inputs[foodProductionDate].CharLimit = len(expiration.DateLayout)
	inputs[foodProductionDate].SetValue(expiration.FormatDate(today))
	inputs[foodShelfLife].Placeholder = "days"
	inputs[foodShelfLife].CharLimit = 5
	inputs[foodImagePath].Placeholder = "optional: path to a photo"
	inputs[foodName].Focus()

	return foodFormModel{inputs: inputs}
}

func (m foodFormModel) Update(msg tea.Msg) (foodFormModel, tea.Cmd, foodFormAction) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.esc):
			return m, nil, foodFormCancel
		case key.Matches(k, keys.recognize):
			return m, nil, foodFormRecognize
		case key.Matches(k, keys.enter):
			if m.focus == len(m.inputs)-1 {
				return m, nil, foodFormSubmit
			}
			return m.setFocus(m.focus + 1), nil, foodFormNone
		case key.Matches(k, keys.tab):
			return m.setFocus((m.focus + 1) % len(m.inputs)), nil, foodFormNone
		case key.Matches(k, keys.backtab):
			return m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs)), nil, foodFormNone
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, foodFormNone
}

func (m foodFormModel) setFocus(i int) foodFormModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m foodFormModel) imagePath() string {
	return strings.TrimSpace(m.inputs[foodImagePath].Value())
}

// toNewFood builds the add-food payload without the image. An empty shelf
// life is read as zero days.
func (m foodFormModel) toNewFood() (models.NewFood, error) {
	food := models.NewFood{
		Name:           strings.TrimSpace(m.inputs[foodName].Value()),
		ProductionDate: strings.TrimSpace(m.inputs[foodProductionDate].Value()),
	}

	if raw := strings.TrimSpace(m.inputs[foodShelfLife].Value()); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return models.NewFood{}, errShelfLifeNotNumber
		}
		food.ShelfLife = days
	}

	return food, nil
}

// applyRecognition fills only the fields the backend recognised; the rest
// keep what the user typed.
func (m foodFormModel) applyRecognition(r models.RecognitionResult) foodFormModel {
	if r.HasName() {
		m.inputs[foodName].SetValue(*r.Name)
	}
	if r.HasProductionDate() {
		m.inputs[foodProductionDate].SetValue(*r.ProductionDate)
	}
	if r.HasShelfLife() {
		m.inputs[foodShelfLife].SetValue(strconv.Itoa(*r.ShelfLife))
	}
	return m
}

// preview shows the expiration the current input would produce.
func (m foodFormModel) preview(now time.Time) string {
	food, err := m.toNewFood()
	if err != nil {
		return ""
	}
	status, err := expiration.Evaluate(food.ProductionDate, food.ShelfLife, now)
	if err != nil {
		return ""
	}
	return bucketStyle(status.Bucket).Render(fmt.Sprintf(" expires %s, %s ",
		expiration.FormatDate(status.ExpirationDate), daysLeftText(status.DaysLeft)))
}

func (m foodFormModel) View(now time.Time) string {
	out := "Name:            [" + m.inputs[foodName].View() + "]\n"
	out += "Production date: [" + m.inputs[foodProductionDate].View() + "]\n"
	out += "Shelf life:      [" + m.inputs[foodShelfLife].View() + "]\n"
	out += "Photo:           [" + m.inputs[foodImagePath].View() + "]"
	if p := m.preview(now); p != "" {
		out += "\n\n" + p
	}

	return renderPage("ADD FOOD", out, "enter: save │ ctrl+r: recognise photo │ tab: next field │ esc: cancel")
}

// loadImage reads the photo at path.
func loadImage(path string) (*models.Image, error) {
	if path == "" {
		return nil, errNoImagePath
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read photo: %w", err)
	}
	return &models.Image{Filename: filepath.Base(path), Content: content}, nil
}
