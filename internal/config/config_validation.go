package config

import "fmt"

func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.Locale == "" || cfg.App.SearchRegion == "" {
		return fmt.Errorf("%w: locale and search region are required", ErrInvalidAppConfigs)
	}
	if cfg.App.SearchLimit < 1 || cfg.App.PreviewRows < 1 {
		return fmt.Errorf("%w: search limit and preview rows must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.ExportDir == "" {
		return fmt.Errorf("%w: export dir is required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	client := ClientConfig{App: cfg.App, Adapter: cfg.Adapter}
	if err := client.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
