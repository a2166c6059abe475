// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile assembles a company profile from a sequence of searches:
// overview facts, latest news and role details.
package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/company-profiler/internal/extract"
	"github.com/pdiddy/company-profiler/internal/search"
	"github.com/pdiddy/company-profiler/pkg/types"
)

// Searcher issues one search. *search.Client implements it; tests supply
// fixtures.
type Searcher interface {
	Search(ctx context.Context, q search.Query) (*search.Response, error)
}

// Profiler runs the extractors against a Searcher.
type Profiler struct {
	searcher Searcher
}

// New returns a Profiler backed by s.
func New(s Searcher) *Profiler {
	return &Profiler{searcher: s}
}

// CompanyQuery is the search text for the company overview.
func CompanyQuery(company string) string { return company + " company profile" }

// NewsQuery is the search text for the latest news.
func NewsQuery(company string) string { return company + " latest news" }

// JobQuery is the search text for the job description.
func JobQuery(company, role string) string { return company + " " + role + " job description" }

// SalaryQuery is the search text for the salary range.
func SalaryQuery(company, role string) string { return role + " salary at " + company }

// CompanyInfo returns the overview facts for company, or nil when the
// provider has no knowledge panel for it.
func (p *Profiler) CompanyInfo(ctx context.Context, company string) (*types.CompanyInfo, error) {
	resp, err := p.searcher.Search(ctx, search.Query{Text: CompanyQuery(company)})
	if err != nil {
		return nil, fmt.Errorf("company info: %w", err)
	}
	info, ok := extract.CompanyInfo(resp, company)
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// LatestNews returns up to three headlines about company.
func (p *Profiler) LatestNews(ctx context.Context, company string) ([]string, error) {
	resp, err := p.searcher.Search(ctx, search.Query{Text: NewsQuery(company), Type: search.TypeNews})
	if err != nil {
		return nil, fmt.Errorf("latest news: %w", err)
	}
	return extract.Headlines(resp, extract.MaxHeadlines), nil
}

// RoleDetails returns skills, experience and salary for role at company.
// It issues two searches: the job description, then the salary.
func (p *Profiler) RoleDetails(ctx context.Context, company, role string) (types.RoleDetails, error) {
	jobResp, err := p.searcher.Search(ctx, search.Query{Text: JobQuery(company, role)})
	if err != nil {
		return types.RoleDetails{}, fmt.Errorf("role details: %w", err)
	}
	salaryResp, err := p.searcher.Search(ctx, search.Query{Text: SalaryQuery(company, role)})
	if err != nil {
		return types.RoleDetails{}, fmt.Errorf("role salary: %w", err)
	}
	return extract.RoleDetails(jobResp, salaryResp), nil
}

// Build runs the three extractors in order and stops at the first error.
// Company and role are trimmed, and a blank value is rejected before any
// search runs.
func (p *Profiler) Build(ctx context.Context, company, role string) (types.Profile, error) {
	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)
	if company == "" {
		return types.Profile{}, fmt.Errorf("company name is empty")
	}
	if role == "" {
		return types.Profile{}, fmt.Errorf("job role is empty")
	}

	log := zerolog.Ctx(ctx).With().Str("company", company).Str("role", role).Logger()

	out := types.Profile{Company: company, Role: role}

	log.Info().Msg("fetching company overview")
	overview, err := p.CompanyInfo(ctx, company)
	if err != nil {
		return types.Profile{}, err
	}
	out.Overview = overview
	if overview == nil {
		log.Info().Msg("no knowledge panel for company")
	}

	log.Info().Msg("fetching latest news")
	out.News, err = p.LatestNews(ctx, company)
	if err != nil {
		return types.Profile{}, err
	}

	log.Info().Msg("fetching role details")
	out.RoleDetails, err = p.RoleDetails(ctx, company, role)
	if err != nil {
		return types.Profile{}, err
	}

	log.Info().
		Int("headlines", len(out.News)).
		Int("skills", len(out.RoleDetails.Skills)).
		Msg("profile complete")
	return out, nil
}
