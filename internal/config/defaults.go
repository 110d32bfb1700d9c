// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultLocale         = "en"
	defaultSearchRegion   = "us"
	defaultSearchLimit    = 100
	defaultPreviewRows    = 5
	defaultExportDir      = "."
	defaultBaseURL        = "https://play.google.com"
	defaultRequestTimeout = 30 * time.Second
	defaultUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	defaultHTTPAddress    = "localhost:8501"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale:       defaultLocale,
			SearchRegion: defaultSearchRegion,
			SearchLimit:  defaultSearchLimit,
			PreviewRows:  defaultPreviewRows,
			ExportDir:    defaultExportDir,
		},
		Adapter: Adapter{
			BaseURL:        defaultBaseURL,
			RequestTimeout: defaultRequestTimeout,
			UserAgent:      defaultUserAgent,
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
	}
}
