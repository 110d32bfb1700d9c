package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures NewHTTPClient. Zero fields are left at resty's
// defaults.
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewHTTPClient returns an independent client with its own connection pool.
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://play.google.com"})
//	resp, err := client.R().SetQueryParam("q", "notes").Get("/store/search")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()
	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}
