// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract picks profile facts out of search responses. The rules are
// pure functions over response documents and snippet text.
package extract

import (
	"strings"

	"github.com/pdiddy/company-profiler/internal/search"
	"github.com/pdiddy/company-profiler/pkg/types"
)

const (
	// MaxHeadlines is the number of news entries kept.
	MaxHeadlines = 3

	// MaxRoleSnippets is the number of job-description results scanned.
	MaxRoleSnippets = 5
)

// SkillKeywords is the fixed skill vocabulary, in match order.
var SkillKeywords = []string{"python", "sql", "java", "excel", "communication", "leadership"}

// experienceKeyword marks a snippet as an experience description.
const experienceKeyword = "experience"

// currencySigns mark a snippet as a salary figure.
var currencySigns = []string{"$", "₹"}

// CompanyInfo copies the knowledge panel facts out of resp. It reports false,
// with a zero CompanyInfo, when resp has no knowledge panel. The company name
// given by the user stands in for a missing panel title.
func CompanyInfo(resp *search.Response, company string) (types.CompanyInfo, bool) {
	kg, ok := resp.Panel()
	if !ok {
		return types.CompanyInfo{}, false
	}
	return types.CompanyInfo{
		Name:         kg.TitleOr(company),
		Industry:     kg.TypeOr(types.UnknownIndustry),
		Founded:      kg.FoundedOr(types.NotAvailable),
		Headquarters: kg.HeadquartersOr(types.NotAvailable),
		Employees:    kg.EmployeesOr(types.NotAvailable),
	}, true
}

// Headlines formats the first limit news results as "<title> (<date>)".
func Headlines(resp *search.Response, limit int) []string {
	news := resp.News(limit)
	headlines := make([]string, 0, len(news))
	for _, item := range news {
		headlines = append(headlines, item.Headline())
	}
	return headlines
}

// Experience returns the first snippet that mentions experience, verbatim,
// or "" when none does.
func Experience(snippets []string) string {
	for _, s := range snippets {
		if containsFold(s, experienceKeyword) {
			return s
		}
	}
	return ""
}

// Skills returns every snippet that mentions a skill keyword. A snippet is
// appended once per keyword it contains, in SkillKeywords order, so the
// result can hold duplicates.
func Skills(snippets []string) []string {
	skills := []string{}
	for _, s := range snippets {
		lower := strings.ToLower(s)
		for _, kw := range SkillKeywords {
			if strings.Contains(lower, kw) {
				skills = append(skills, s)
			}
		}
	}
	return skills
}

// Salary returns the first snippet carrying a dollar or rupee sign, verbatim,
// or types.NotDisclosed when none does.
func Salary(snippets []string) string {
	for _, s := range snippets {
		for _, sign := range currencySigns {
			if strings.Contains(s, sign) {
				return s
			}
		}
	}
	return types.NotDisclosed
}

// RoleDetails applies the role rules: experience and skills come from the
// first MaxRoleSnippets job-description results, salary from every salary
// result.
func RoleDetails(jobResp, salaryResp *search.Response) types.RoleDetails {
	snippets := jobResp.Snippets(MaxRoleSnippets)

	details := types.NewRoleDetails()
	details.Experience = Experience(snippets)
	details.Skills = Skills(snippets)
	details.Salary = Salary(salaryResp.Snippets(-1))
	return details
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
