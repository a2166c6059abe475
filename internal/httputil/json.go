// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by API clients.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody caps how much of a non-200 body is read for the error message.
const maxErrorBody = 64 << 10

// ProviderErrorer is implemented by response documents that can carry an
// error message inside an otherwise well-formed JSON body.
type ProviderErrorer interface {
	ProviderError() string
}

// StatusError reports a non-200 response or an error payload.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// GetJSON issues a GET to rawURL and decodes the JSON body into v.
//
// A status other than 200 yields a *StatusError whose message is taken from
// an {"error": "..."} body when present. If v implements ProviderErrorer and
// reports a message after decoding, a *StatusError is returned as well.
func GetJSON(ctx context.Context, client *http.Client, rawURL, userAgent string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if pe, ok := v.(ProviderErrorer); ok {
		if msg := pe.ProviderError(); msg != "" {
			return &StatusError{StatusCode: resp.StatusCode, Message: msg}
		}
	}
	return nil
}

// errorMessage extracts the "error" field from a JSON error body. Non-JSON
// bodies yield an empty message.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Error
}
