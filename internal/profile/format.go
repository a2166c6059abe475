// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/company-profiler/pkg/types"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, json or yaml", s)
	}
}

// Write encodes p to w in the given format.
func Write(w io.Writer, p types.Profile, f Format) error {
	switch f {
	case FormatText, "":
		return WriteText(w, p)
	case FormatJSON:
		return WriteJSON(w, p)
	case FormatYAML:
		return WriteYAML(w, p)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// WriteText prints the three labeled console sections.
func WriteText(w io.Writer, p types.Profile) error {
	var b strings.Builder

	b.WriteString("\nCompany Overview\n")
	if p.Overview != nil {
		for _, f := range p.Overview.Facts() {
			fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
		}
	}

	b.WriteString("\nLatest News\n")
	for _, h := range p.News {
		fmt.Fprintf(&b, "- %s\n", h)
	}

	b.WriteString("\nRole Requirements\n")
	fmt.Fprintf(&b, "Skills: %s\n", formatList(p.RoleDetails.Skills))
	fmt.Fprintf(&b, "Experience: %s\n", p.RoleDetails.Experience)
	fmt.Fprintf(&b, "Salary Range: %s\n", p.RoleDetails.Salary)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes p as indented JSON.
func WriteJSON(w io.Writer, p types.Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(p)
}

// WriteYAML writes p as a YAML document.
func WriteYAML(w io.Writer, p types.Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// formatList renders items as a bracketed, quoted list: ["a", "b"].
func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
