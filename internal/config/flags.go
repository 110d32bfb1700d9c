package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair usable as a [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args (without the program name) into a partial
// [StructuredConfig]. Unset flags leave their fields zero so lower-priority
// sources can fill them.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("review-fetcher", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var locale, searchRegion, exportDir string
	var searchLimit, previewRows int
	var baseURL, userAgent string
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Browser UI net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&locale, "locale", "", "Store language code (e.g. en)")
	fs.StringVar(&searchRegion, "search-region", "", "Store country used for search (e.g. us)")
	fs.IntVar(&searchLimit, "search-limit", 0, "Maximum number of search results")
	fs.IntVar(&previewRows, "preview-rows", 0, "Number of reviews shown in the preview")
	fs.StringVar(&exportDir, "export-dir", "", "Directory for exported CSV files")
	fs.StringVar(&baseURL, "base-url", "", "Store base URL")
	fs.StringVar(&userAgent, "user-agent", "", "User-Agent sent upstream")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Upstream request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Locale:       locale,
			SearchRegion: searchRegion,
			SearchLimit:  searchLimit,
			PreviewRows:  previewRows,
			ExportDir:    exportDir,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
			UserAgent:      userAgent,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
