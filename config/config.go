// Package config holds the shared settings of the cocinakit tools.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// AppName is used for the default data directory and the user agent.
const AppName = "cocinakit"

// Config for conversion and deposit tools.
type Config struct {
	// DataDir is the generic data dir for all cocinakit tools, e.g. for
	// cached DataCite responses.
	DataDir string
	// FallbackTitle replaces a missing title during conversion.
	FallbackTitle string
	// PurlBase is the base URL of the persistent URL service; location urls
	// under this base are treated as the purl of the object.
	PurlBase string
	// DataCiteEndpoint is the DataCite REST API base URL.
	DataCiteEndpoint string
	// DataCitePrefix is the DOI prefix assigned to the repository.
	DataCitePrefix string
	// DataCiteUser and DataCitePassword authenticate against the REST API.
	DataCiteUser     string
	DataCitePassword string
	// MaxRetries is a generic retry count for outgoing requests.
	MaxRetries int
	// Timeout is a generic operation timeout.
	Timeout time.Duration
}

// Default returns a config populated from the environment, with XDG-style
// defaults for local paths.
func Default() *Config {
	return &Config{
		DataDir:          envOr("COCINAKIT_DATA_DIR", filepath.Join(xdg.DataHome, AppName)),
		FallbackTitle:    "[Untitled]",
		PurlBase:         os.Getenv("COCINAKIT_PURL_BASE"),
		DataCiteEndpoint: envOr("DATACITE_ENDPOINT", "https://api.datacite.org"),
		DataCitePrefix:   os.Getenv("DATACITE_PREFIX"),
		DataCiteUser:     os.Getenv("DATACITE_USER"),
		DataCitePassword: os.Getenv("DATACITE_PASSWORD"),
		MaxRetries:       3,
		Timeout:          30 * time.Second,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
