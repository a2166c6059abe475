// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/pdiddy/company-profiler/internal/search"
	"github.com/pdiddy/company-profiler/pkg/types"
)

func mustResponse(t *testing.T, body string) *search.Response {
	t.Helper()
	var r search.Response
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return &r
}

// --- CompanyInfo ---

func TestCompanyInfo_NoPanel(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"organic_results": [{"snippet": "Acme is a company"}]}`,
		`{"knowledge_graph": {}}`,
	}
	for _, body := range bodies {
		info, ok := CompanyInfo(mustResponse(t, body), "Acme")
		if ok {
			t.Errorf("CompanyInfo(%s) ok = true, want false", body)
		}
		if info != (types.CompanyInfo{}) {
			t.Errorf("CompanyInfo(%s) = %+v, want zero value", body, info)
		}
	}
}

func TestCompanyInfo_AllFields(t *testing.T) {
	resp := mustResponse(t, `{"knowledge_graph": {
		"title": "Acme Corporation",
		"type": "Manufacturing",
		"founded_date": "1920",
		"headquarters": "Springfield",
		"employees": "12,000"
	}}`)

	got, ok := CompanyInfo(resp, "Acme")
	if !ok {
		t.Fatal("CompanyInfo ok = false, want true")
	}
	want := types.CompanyInfo{
		Name:         "Acme Corporation",
		Industry:     "Manufacturing",
		Founded:      "1920",
		Headquarters: "Springfield",
		Employees:    "12,000",
	}
	if got != want {
		t.Errorf("CompanyInfo = %+v, want %+v", got, want)
	}
}

func TestCompanyInfo_Defaults(t *testing.T) {
	resp := mustResponse(t, `{"knowledge_graph": {"description": "Maker of anvils"}}`)

	got, ok := CompanyInfo(resp, "Acme")
	if !ok {
		t.Fatal("CompanyInfo ok = false, want true")
	}
	want := types.CompanyInfo{
		Name:         "Acme",
		Industry:     "Unknown",
		Founded:      "N/A",
		Headquarters: "N/A",
		Employees:    "N/A",
	}
	if got != want {
		t.Errorf("CompanyInfo = %+v, want %+v", got, want)
	}
}

// --- Headlines ---

func TestHeadlines(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "no news results",
			body: `{}`,
			want: []string{},
		},
		{
			name: "fewer than three",
			body: `{"news_results": [
				{"title": "Acme opens plant", "date": "2 days ago"},
				{"title": "Acme hires CEO", "date": "1 week ago"}
			]}`,
			want: []string{"Acme opens plant (2 days ago)", "Acme hires CEO (1 week ago)"},
		},
		{
			name: "truncated to three",
			body: `{"news_results": [
				{"title": "a", "date": "1"},
				{"title": "b", "date": "2"},
				{"title": "c", "date": "3"},
				{"title": "d", "date": "4"}
			]}`,
			want: []string{"a (1)", "b (2)", "c (3)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Headlines(mustResponse(t, tt.body), MaxHeadlines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Headlines() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Experience ---

func TestExperience(t *testing.T) {
	tests := []struct {
		name     string
		snippets []string
		want     string
	}{
		{"none", []string{"Great place to work", "Apply today"}, ""},
		{"empty", nil, ""},
		{
			name: "third snippet is first match",
			snippets: []string{
				"Join our team",
				"Competitive benefits",
				"Requires 3+ years of Experience in backend systems",
				"Experience with Go preferred",
				"5 years experience",
			},
			want: "Requires 3+ years of Experience in backend systems",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Experience(tt.snippets); got != tt.want {
				t.Errorf("Experience() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Skills ---

func TestSkills(t *testing.T) {
	tests := []struct {
		name     string
		snippets []string
		want     []string
	}{
		{"no keywords", []string{"Great culture"}, []string{}},
		{
			name:     "one snippet two keywords appended twice",
			snippets: []string{"Strong Python and SQL skills"},
			want:     []string{"Strong Python and SQL skills", "Strong Python and SQL skills"},
		},
		{
			name:     "javascript matches java",
			snippets: []string{"JavaScript developer"},
			want:     []string{"JavaScript developer"},
		},
		{
			name: "source order preserved",
			snippets: []string{
				"Leadership role",
				"Nothing here",
				"Excel and communication",
			},
			want: []string{"Leadership role", "Excel and communication", "Excel and communication"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Skills(tt.snippets)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Skills() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Salary ---

func TestSalary(t *testing.T) {
	tests := []struct {
		name     string
		snippets []string
		want     string
	}{
		{"no currency", []string{"Salary depends on experience", "Apply now"}, "Not disclosed"},
		{"empty", nil, "Not disclosed"},
		{"dollar", []string{"Average pay", "$95,000 - $120,000 a year", "₹12L"}, "$95,000 - $120,000 a year"},
		{"rupee", []string{"Average pay", "₹8,00,000 per annum"}, "₹8,00,000 per annum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Salary(tt.snippets); got != tt.want {
				t.Errorf("Salary() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- RoleDetails ---

func TestRoleDetails_OnlyFirstFiveJobSnippets(t *testing.T) {
	job := mustResponse(t, `{"organic_results": [
		{"snippet": "one"}, {"snippet": "two"}, {"snippet": "three"},
		{"snippet": "four"}, {"snippet": "five"},
		{"snippet": "6 years experience with Python"}
	]}`)
	salary := mustResponse(t, `{"organic_results": [
		{"snippet": "no figure"}, {"snippet": "x"}, {"snippet": "y"},
		{"snippet": "z"}, {"snippet": "w"}, {"snippet": "Pays $100k"}
	]}`)

	got := RoleDetails(job, salary)
	if got.Experience != "" {
		t.Errorf("Experience = %q, want empty", got.Experience)
	}
	if len(got.Skills) != 0 {
		t.Errorf("Skills = %q, want none", got.Skills)
	}
	// Salary scans every result, not only the first five.
	if got.Salary != "Pays $100k" {
		t.Errorf("Salary = %q, want %q", got.Salary, "Pays $100k")
	}
}

func TestRoleDetails_NoResults(t *testing.T) {
	got := RoleDetails(mustResponse(t, `{}`), mustResponse(t, `{}`))
	want := types.RoleDetails{Skills: []string{}, Salary: "Not disclosed"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RoleDetails = %+v, want %+v", got, want)
	}
}
