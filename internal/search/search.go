// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the SerpAPI web search endpoint and models its
// response as an explicit optional-field document.
package search

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/company-profiler/pkg/types"
)

// ErrEmptyQuery is returned when a search is issued without query text.
var ErrEmptyQuery = errors.New("query is empty")

// ErrMissingAPIKey is returned by NewClient when no API key is configured.
var ErrMissingAPIKey = types.ErrMissingAPIKey

// ResultType restricts a search to one vertical (sent as tbm).
type ResultType string

const (
	// TypeWeb is the default web search.
	TypeWeb ResultType = ""
	// TypeNews restricts the search to news articles.
	TypeNews ResultType = "nws"
)

// Query is one search request.
type Query struct {
	Text string
	Type ResultType
}

// StatusSuccess is the search_metadata.status of a search that completed,
// including one that matched nothing.
const StatusSuccess = "Success"

// Response is the subset of the SerpAPI response document the profiler reads.
// Every section is optional.
type Response struct {
	SearchMetadata SearchMetadata  `json:"search_metadata"`
	KnowledgeGraph *KnowledgeGraph `json:"knowledge_graph,omitempty"`
	NewsResults    []NewsResult    `json:"news_results,omitempty"`
	OrganicResults []OrganicResult `json:"organic_results,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// SearchMetadata describes how SerpAPI processed the search.
type SearchMetadata struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
}

// ProviderError returns the error message SerpAPI embeds in failed responses.
// A search that succeeded but matched nothing also carries an error message
// ("Google hasn't returned any results for this query."); that case is an
// empty result, not a failure, and yields "".
func (r *Response) ProviderError() string {
	if r.SearchMetadata.Status == StatusSuccess {
		return ""
	}
	return r.Error
}

// Panel returns the knowledge panel if the response carries a non-empty one.
func (r *Response) Panel() (*KnowledgeGraph, bool) {
	if r == nil || r.KnowledgeGraph == nil || r.KnowledgeGraph.fields == 0 {
		return nil, false
	}
	return r.KnowledgeGraph, true
}

// News returns at most limit news results. A negative limit returns all.
func (r *Response) News(limit int) []NewsResult {
	if r == nil {
		return nil
	}
	if limit >= 0 && len(r.NewsResults) > limit {
		return r.NewsResults[:limit]
	}
	return r.NewsResults
}

// Snippets returns the snippets of at most limit organic results, in rank
// order. Results without a snippet contribute an empty string. A negative
// limit returns all.
func (r *Response) Snippets(limit int) []string {
	if r == nil {
		return nil
	}
	results := r.OrganicResults
	if limit >= 0 && len(results) > limit {
		results = results[:limit]
	}
	snippets := make([]string, len(results))
	for i, res := range results {
		snippets[i] = res.Snippet
	}
	return snippets
}

// KnowledgeGraph is the knowledge panel SerpAPI returns for recognized entities.
type KnowledgeGraph struct {
	Title        FlexString `json:"title"`
	Type         FlexString `json:"type"`
	FoundedDate  FlexString `json:"founded_date"`
	Founded      FlexString `json:"founded"`
	Headquarters FlexString `json:"headquarters"`
	Employees    FlexString `json:"employees"`

	// fields counts the keys present in the JSON object, known or not.
	fields int
}

// UnmarshalJSON decodes the panel and records how many keys it carried.
func (k *KnowledgeGraph) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	type plain KnowledgeGraph
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*k = KnowledgeGraph(p)
	k.fields = len(keys)
	return nil
}

// TitleOr returns the panel title or fallback.
func (k *KnowledgeGraph) TitleOr(fallback string) string { return k.Title.Or(fallback) }

// TypeOr returns the entity type (the industry for companies) or fallback.
func (k *KnowledgeGraph) TypeOr(fallback string) string { return k.Type.Or(fallback) }

// FoundedOr returns the founding date or fallback. SerpAPI has used both
// founded_date and founded for this fact.
func (k *KnowledgeGraph) FoundedOr(fallback string) string {
	return k.FoundedDate.Or(k.Founded.Or(fallback))
}

// HeadquartersOr returns the headquarters or fallback.
func (k *KnowledgeGraph) HeadquartersOr(fallback string) string {
	return k.Headquarters.Or(fallback)
}

// EmployeesOr returns the employee count or fallback.
func (k *KnowledgeGraph) EmployeesOr(fallback string) string { return k.Employees.Or(fallback) }

// NewsResult is one entry of news_results.
type NewsResult struct {
	Title  FlexString `json:"title"`
	Date   FlexString `json:"date"`
	Link   string     `json:"link,omitempty"`
	Source FlexString `json:"source,omitempty"`
}

// Headline formats the entry as "<title> (<date>)".
func (n NewsResult) Headline() string {
	return fmt.Sprintf("%s (%s)", n.Title.Or(types.NotAvailable), n.Date.Or(types.NotAvailable))
}

// OrganicResult is one entry of organic_results.
type OrganicResult struct {
	Position int    `json:"position,omitempty"`
	Title    string `json:"title,omitempty"`
	Link     string `json:"link,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
}

// FlexString decodes a JSON string, number or boolean into text. Knowledge
// panel facts such as employee counts arrive as either strings or numbers.
// Objects, arrays and null decode to the empty string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
	case '{', '[', 'n':
		*s = ""
	default:
		// Numbers and booleans keep their literal JSON text.
		*s = FlexString(data)
	}
	return nil
}

// Or returns the trimmed value, or fallback when it is blank.
func (s FlexString) Or(fallback string) string {
	if v := strings.TrimSpace(string(s)); v != "" {
		return v
	}
	return fallback
}
