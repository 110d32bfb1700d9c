// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end: a bubbletea program that walks the
// user through search, selection, preview and CSV export.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-review-fetcher/internal/config"
	"github.com/MKhiriev/go-review-fetcher/internal/logger"
	"github.com/MKhiriev/go-review-fetcher/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.Services
	exportDir string
	logger    *logger.Logger
}

func New(services *service.Services, cfg config.ClientApp, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{services: services, exportDir: cfg.ExportDir, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(
		ctx,
		t.services.NewSession(),
		t.services.Exporter,
		t.exportDir,
		t.services.AppInfoService.BuildInfo(ctx),
	)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("terminal UI stopped by signal")
			return nil
		}
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
