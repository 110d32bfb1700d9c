package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-fetcher/internal/logger"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: nil ui")
	}
	return &App{ui: ui, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client ui: %w", err)
	}
	return nil
}
