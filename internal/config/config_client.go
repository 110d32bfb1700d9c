// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp is the session configuration shared by both user interfaces.
type ClientApp struct {
	Locale       string
	SearchRegion string
	SearchLimit  int
	PreviewRows  int
	ExportDir    string
}

// ClientAdapter is the upstream transport configuration.
type ClientAdapter struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

// ClientConfig is the configuration of the terminal client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// ServerConfig is the configuration of the browser UI server.
type ServerConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Server  Server
}

// GetClientConfig loads and validates the terminal client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetServerConfig loads and validates the browser UI server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	serverCfg := &ServerConfig{
		App:     clientCfg.App,
		Adapter: clientCfg.Adapter,
		Server:  cfg.Server,
	}
	return serverCfg, serverCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Locale:       cfg.App.Locale,
			SearchRegion: cfg.App.SearchRegion,
			SearchLimit:  cfg.App.SearchLimit,
			PreviewRows:  cfg.App.PreviewRows,
			ExportDir:    cfg.App.ExportDir,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UserAgent:      cfg.Adapter.UserAgent,
		},
	}
}
