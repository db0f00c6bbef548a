package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fresh-alert/internal/adapter"
	"github.com/MKhiriev/fresh-alert/internal/config"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/internal/service"
	"github.com/MKhiriev/fresh-alert/internal/session"
	"github.com/MKhiriev/fresh-alert/internal/store"
	"github.com/MKhiriev/fresh-alert/internal/tui"
	"github.com/MKhiriev/fresh-alert/models"
)

type App struct {
	storages *store.ClientStorages
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp builds every client layer from cfg. The caller must Close the app.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create backend adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(backend, log)
	sess := session.New(services, storages.SessionRepository, log)

	return &App{
		storages: storages,
		tui:      tui.New(sess, cfg.App, buildInfo, log),
		logger:   log,
	}, nil
}

// Run shows the UI until the user quits or the process gets a stop signal.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("client started")
	if err := a.tui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
