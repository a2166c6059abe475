// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for company-profiler: search
// configuration and the profile assembled from search results.
package types

// Placeholder values substituted for fields the search provider omits.
const (
	NotAvailable    = "N/A"
	UnknownIndustry = "Unknown"
	NotDisclosed    = "Not disclosed"
)

// CompanyInfo holds the overview facts copied from a knowledge panel.
type CompanyInfo struct {
	Name         string `json:"name" yaml:"name"`
	Industry     string `json:"industry" yaml:"industry"`
	Founded      string `json:"founded" yaml:"founded"`
	Headquarters string `json:"headquarters" yaml:"headquarters"`
	Employees    string `json:"employees" yaml:"employees"`
}

// Fact is one labeled overview value.
type Fact struct {
	Label string
	Value string
}

// Facts returns the overview values in display order.
func (c CompanyInfo) Facts() []Fact {
	return []Fact{
		{"Name", c.Name},
		{"Industry", c.Industry},
		{"Founded", c.Founded},
		{"Headquarters", c.Headquarters},
		{"Employees", c.Employees},
	}
}

// RoleDetails holds hiring details for one role at one company.
type RoleDetails struct {
	// Skills lists snippets that mention a tracked skill keyword, once per
	// keyword matched. The same snippet may appear more than once.
	Skills []string `json:"skills" yaml:"skills"`

	// Experience is the first snippet mentioning experience, or empty.
	Experience string `json:"experience" yaml:"experience"`

	// Salary is the first snippet carrying a currency sign, or NotDisclosed.
	Salary string `json:"salary" yaml:"salary"`
}

// NewRoleDetails returns RoleDetails with the salary placeholder set.
func NewRoleDetails() RoleDetails {
	return RoleDetails{Skills: []string{}, Salary: NotDisclosed}
}

// Profile is the full result of one run.
type Profile struct {
	Company string `json:"company" yaml:"company"`
	Role    string `json:"role" yaml:"role"`

	// Overview is nil when the provider returned no knowledge panel.
	Overview *CompanyInfo `json:"overview,omitempty" yaml:"overview,omitempty"`

	News        []string    `json:"news" yaml:"news"`
	RoleDetails RoleDetails `json:"role_details" yaml:"role_details"`
}
