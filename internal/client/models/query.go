package models

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize matches the storefront grid.
const DefaultPageSize = 8

// Categories offered by the catalog filter.
var Categories = []string{"Fiction", "Non-Fiction", "Sci-Fi"}

// SearchQuery selects one page of the catalog. Page and Limit are always
// transmitted; string filters only when non-empty.
type SearchQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Author   string
}

// NewSearchQuery returns the first page with the given limit.
func NewSearchQuery(limit int) SearchQuery {
	if limit < 1 {
		limit = DefaultPageSize
	}
	return SearchQuery{Page: 1, Limit: limit}
}

// Values encodes the query for GET /books.
func (q SearchQuery) Values() url.Values {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))
	setIfPresent(v, "search", q.Search)
	setIfPresent(v, "category", q.Category)
	setIfPresent(v, "author", q.Author)
	return v
}

// WithSearch, WithCategory and WithAuthor change one filter and go back to
// the first page.
func (q SearchQuery) WithSearch(s string) SearchQuery {
	q.Search = strings.TrimSpace(s)
	q.Page = 1
	return q
}

func (q SearchQuery) WithCategory(c string) SearchQuery {
	q.Category = strings.TrimSpace(c)
	q.Page = 1
	return q
}

func (q SearchQuery) WithAuthor(a string) SearchQuery {
	q.Author = strings.TrimSpace(a)
	q.Page = 1
	return q
}

// WithPage moves to page n; values below one select the first page.
func (q SearchQuery) WithPage(n int) SearchQuery {
	if n < 1 {
		n = 1
	}
	q.Page = n
	return q
}

// Cleared drops every filter and returns to the first page.
func (q SearchQuery) Cleared() SearchQuery {
	return SearchQuery{Page: 1, Limit: q.Limit}
}

func setIfPresent(v url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		v.Set(key, value)
	}
}

// SearchPayload is the body of GET /books.
type SearchPayload struct {
	Books      []BookPayload `json:"books"`
	TotalPages int           `json:"totalPages"`
}

// SearchResult is one normalized page of the catalog.
type SearchResult struct {
	Books      []Book
	TotalPages int
}

func NormalizeSearch(p SearchPayload) SearchResult {
	total := p.TotalPages
	if total < 1 {
		total = 1
	}
	return SearchResult{Books: NormalizeBooks(p.Books), TotalPages: total}
}
