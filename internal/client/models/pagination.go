package models

import (
	"net/url"
	"strconv"
	"strings"
)

type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Page is the envelope every listing endpoint answers with.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListQuery selects a page of a listing.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
}

// Normalize clamps Page to 1 and falls back to defaultLimit.
func (q ListQuery) Normalize(defaultLimit int) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

func (q ListQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Next returns the query for the following page, or false on the last one.
func (q ListQuery) Next(p Pagination) (ListQuery, bool) {
	if !p.HasNextPage {
		return q, false
	}
	q.Page = p.CurrentPage + 1
	return q, true
}

// Prev returns the query for the preceding page, or false on the first one.
func (q ListQuery) Prev(p Pagination) (ListQuery, bool) {
	if !p.HasPreviousPage || p.CurrentPage <= 1 {
		return q, false
	}
	q.Page = p.CurrentPage - 1
	return q, true
}
