package mediaclient

import (
	"net/url"
	"strconv"
)

// Params is the filter set for list requests. The zero value means "first
// page, server defaults". Page is managed by the client's cache, not set by
// callers.
type Params struct {
	Limit     int
	Search    string
	Type      string
	Genre     string
	Year      int
	SortBy    string
	SortOrder string
}

// values encodes the filter set plus a page number as a query string.
func (p Params) values(page int) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Type != "" {
		v.Set("type", p.Type)
	}
	if p.Genre != "" {
		v.Set("genre", p.Genre)
	}
	if p.Year > 0 {
		v.Set("year", strconv.Itoa(p.Year))
	}
	if p.SortBy != "" {
		v.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		v.Set("sortOrder", p.SortOrder)
	}
	return v
}

// key is the cache key for this filter set. url.Values.Encode sorts keys, so
// equal filter sets always serialize identically. Page is excluded: pages of
// one filter set accumulate under a single entry.
func (p Params) key() string {
	v := p.values(1)
	v.Del("page")
	return v.Encode()
}
