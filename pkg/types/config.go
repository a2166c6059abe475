// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"time"
)

// Defaults applied by DefaultSearchConfig.
const (
	DefaultEndpoint  = "https://serpapi.com/search.json"
	DefaultEngine    = "google"
	DefaultNum       = 10
	DefaultLocale    = "in"
	DefaultTimeout   = 60 * time.Second
	DefaultUserAgent = "company-profiler/0.1"
)

// ErrMissingAPIKey is returned when no search API key has been configured.
var ErrMissingAPIKey = errors.New("search API key is not set (use --api-key, SERPAPI_API_KEY, .env or .secrets/serpapi-api-key)")

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds the fixed parameters sent with every search.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the search API URL.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Engine is the provider engine name (e.g. "google").
	Engine string `json:"engine" yaml:"engine"`

	// APIKey authenticates every request. Never serialized.
	APIKey string `json:"-" yaml:"-"`

	// Num is the number of results requested per search (default 10).
	Num int `json:"num" yaml:"num"`

	// Locale is the country code sent as the gl parameter (default "in").
	Locale string `json:"locale" yaml:"locale"`
}

// DefaultSearchConfig returns a SearchConfig with every field except the API
// key filled in.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		Endpoint: DefaultEndpoint,
		Engine:   DefaultEngine,
		Num:      DefaultNum,
		Locale:   DefaultLocale,
	}
}

// Validate reports the first configuration problem, if any.
func (c SearchConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Endpoint == "" {
		return fmt.Errorf("search endpoint is empty")
	}
	if c.Engine == "" {
		return fmt.Errorf("search engine is empty")
	}
	if c.Num <= 0 {
		return fmt.Errorf("result count must be positive, got %d", c.Num)
	}
	return nil
}
