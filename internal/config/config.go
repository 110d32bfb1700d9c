// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session-level settings: locale, search parameters, preview
	// size and the export directory.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the upstream store transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address of the browser UI.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups settings that shape a single interactive session.
type App struct {
	// Locale is the store language code (hl parameter), e.g. "en".
	Locale string `env:"LOCALE"`

	// SearchRegion is the store country used for keyword searches. Review
	// fetches use the region picked by the user instead.
	SearchRegion string `env:"SEARCH_REGION"`

	// SearchLimit caps the number of listings a search returns.
	SearchLimit int `env:"SEARCH_LIMIT"`

	// PreviewRows is how many reviews the preview table shows.
	PreviewRows int `env:"PREVIEW_ROWS"`

	// ExportDir is where the terminal client writes CSV files.
	ExportDir string `env:"EXPORT_DIR"`
}

// Adapter groups the upstream transport settings.
type Adapter struct {
	// BaseURL is the store origin, e.g. https://play.google.com.
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every upstream call.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every upstream request.
	UserAgent string `env:"USER_AGENT"`
}

// Server groups the browser UI listener settings.
type Server struct {
	// HTTPAddress is the host:port the browser UI listens on.
	HTTPAddress string `env:"ADDRESS"`
}

// GetStructuredConfig assembles the configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
