// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/company-profiler/internal/httputil"
	"github.com/pdiddy/company-profiler/pkg/types"
)

// Client queries SerpAPI. It holds no state between calls.
type Client struct {
	http *http.Client
	cfg  types.SearchConfig
}

// NewClient validates cfg and returns a client. A nil httpClient is replaced
// by one using cfg.Timeout.
func NewClient(httpClient *http.Client, cfg types.SearchConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{http: httpClient, cfg: cfg}, nil
}

// Search issues one request and returns the parsed response document.
func (c *Client) Search(ctx context.Context, q Query) (*Response, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, ErrEmptyQuery
	}

	log := zerolog.Ctx(ctx)
	log.Debug().
		Str("query", q.Text).
		Str("tbm", string(q.Type)).
		Str("engine", c.cfg.Engine).
		Msg("executing search")

	reqURL, err := c.requestURL(q)
	if err != nil {
		return nil, err
	}

	var resp Response
	if err := httputil.GetJSON(ctx, c.http, reqURL, c.cfg.UserAgent, &resp); err != nil {
		return nil, fmt.Errorf("SerpAPI search %q: %w", q.Text, err)
	}

	log.Debug().
		Str("query", q.Text).
		Bool("knowledge_graph", resp.KnowledgeGraph != nil).
		Int("news_results", len(resp.NewsResults)).
		Int("organic_results", len(resp.OrganicResults)).
		Msg("search completed")

	return &resp, nil
}

// requestURL builds the endpoint URL with the fixed parameter set.
func (c *Client) requestURL(q Query) (string, error) {
	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint %q: %w", c.cfg.Endpoint, err)
	}
	u.RawQuery = buildParams(q, c.cfg).Encode()
	return u.String(), nil
}

// buildParams returns the query parameters for q. tbm is only sent when a
// result type is set; gl is only sent when a locale is configured.
func buildParams(q Query, cfg types.SearchConfig) url.Values {
	params := url.Values{
		"engine":  {cfg.Engine},
		"q":       {q.Text},
		"api_key": {cfg.APIKey},
		"num":     {strconv.Itoa(cfg.Num)},
	}
	if cfg.Locale != "" {
		params.Set("gl", cfg.Locale)
	}
	if q.Type != TypeWeb {
		params.Set("tbm", string(q.Type))
	}
	return params
}
