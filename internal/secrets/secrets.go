// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files or a
// dotenv file.
//
// In a secrets directory each file is one secret: the filename is the key
// name and the trimmed contents are the value. The profiler reads
// serpapi-api-key. In a dotenv file the profiler reads SERPAPI_API_KEY.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Key names the profiler looks up.
const (
	SerpAPIKeyFile = "serpapi-api-key"
	SerpAPIKeyEnv  = "SERPAPI_API_KEY"
)

// Load reads the secrets directory dir and returns key name to value.
// A missing directory yields an empty map. Hidden entries, subdirectories and
// blank files are ignored. A file that cannot be read is logged at warn level
// through the context logger and skipped.
func Load(ctx context.Context, dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	log := zerolog.Ctx(ctx)
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Warn().Err(err).Str("secret", e.Name()).Msg("skipping unreadable secret")
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			out[e.Name()] = v
		}
	}
	return out, nil
}

// LoadDotenv parses the dotenv file at path without touching the process
// environment. A missing file yields an empty map. Blank values are dropped.
func LoadDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading dotenv file %s: %w", path, err)
	}

	out := make(map[string]string, len(values))
	for k, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	return out, nil
}

// First returns the first non-empty candidate, or "" when all are empty.
func First(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}
