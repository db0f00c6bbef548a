// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the client, built on bubbletea.
//
// A single program drives every screen: the start menu, login and register
// forms, the color-coded food table, the add-food form with photo
// recognition, and the account screen. All backend work goes through a
// [session.Session]; the UI keeps at most one request in flight and shows a
// spinner while it runs.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/fresh-alert/internal/config"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/internal/session"
	"github.com/MKhiriev/fresh-alert/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	session   *session.Session
	appCfg    config.ClientApp
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(sess *session.Session, appCfg config.ClientApp, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{session: sess, appCfg: appCfg, buildInfo: buildInfo, logger: log}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.session, t.appCfg.SecretKeyProvider, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
