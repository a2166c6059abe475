// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/company-profiler/pkg/types"
)

func sampleProfile() types.Profile {
	return types.Profile{
		Company: "Acme",
		Role:    "Engineer",
		Overview: &types.CompanyInfo{
			Name:         "Acme Corporation",
			Industry:     "Unknown",
			Founded:      "N/A",
			Headquarters: "Springfield",
			Employees:    "12000",
		},
		News: []string{"Acme opens new plant (2 days ago)"},
		RoleDetails: types.RoleDetails{
			Skills:     []string{"Python <3"},
			Experience: "5 years experience",
			Salary:     "₹9,00,000 per annum",
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteText_EmptySections(t *testing.T) {
	p := types.Profile{RoleDetails: types.NewRoleDetails()}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, p))

	want := "\nCompany Overview\n\nLatest News\n\nRole Requirements\n" +
		"Skills: []\nExperience: \nSalary Range: Not disclosed\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleProfile(), FormatJSON))

	// HTML characters are not escaped.
	assert.Contains(t, buf.String(), "Python <3")

	var got types.Profile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleProfile(), got)
}

func TestWriteJSON_NoOverview(t *testing.T) {
	p := sampleProfile()
	p.Overview = nil

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, p))
	assert.NotContains(t, buf.String(), "overview")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleProfile(), FormatYAML))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "company: Acme\n"), out)
	assert.Contains(t, out, "role_details:")

	var got types.Profile
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleProfile(), got)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, sampleProfile(), Format("xml")))
}
