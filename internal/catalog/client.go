// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package catalog searches the Google Books volumes API for candidate
// book metadata. Failures propagate as typed errors so the caller can
// distinguish "search failed" from "no results".
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// UnknownTitle and UnknownAuthor fill fields the upstream record omits.
	UnknownTitle  = "Unknown Title"
	UnknownAuthor = "Unknown Author"

	defaultBaseURL    = "https://www.googleapis.com/books/v1"
	defaultMaxResults = 20
)

// Result is one candidate book from the catalog.
type Result struct {
	SourceID        string `json:"source_id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
	CoverURL        string `json:"cover_url,omitempty"`
	TotalPages      int    `json:"total_pages"`
}

// APIError is a non-200 response from the catalog.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog returned %d: %s", e.StatusCode, e.Body)
}

// Client queries the catalog over HTTP.
type Client struct {
	baseURL    string
	maxResults int
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithMaxResults caps the number of candidates per query.
func WithMaxResults(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// NewClient constructs a catalog client with sane defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		maxResults: defaultMaxResults,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// volumesResponse mirrors the slice of the Google Books payload we use.
type volumesResponse struct {
	Items []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			Categories    []string `json:"categories"`
			PublishedDate string   `json:"publishedDate"`
			PageCount     int      `json:"pageCount"`
			ImageLinks    struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
	TotalItems int `json:"totalItems"`
}

// Search resolves a free-text query to candidate books. The context
// cancels the request when the caller loses interest.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is required")
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("maxResults", strconv.Itoa(c.maxResults))
	q.Set("printType", "books")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/volumes?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := make([]Result, 0, len(payload.Items))
	for _, item := range payload.Items {
		info := item.VolumeInfo

		r := Result{
			SourceID:   item.ID,
			Title:      info.Title,
			TotalPages: info.PageCount,
		}
		if r.Title == "" {
			r.Title = UnknownTitle
		}
		if len(info.Authors) > 0 {
			r.Author = info.Authors[0]
		} else {
			r.Author = UnknownAuthor
		}
		if len(info.Categories) > 0 {
			r.Genre = info.Categories[0]
		}
		r.PublicationYear = parseYear(info.PublishedDate)
		r.CoverURL = secureURL(info.ImageLinks.Thumbnail)

		results = append(results, r)
	}
	return results, nil
}

// parseYear extracts the year from dates like "2008", "2008-09", or
// "2008-09-01". 0 means unknown.
func parseYear(published string) int {
	if published == "" {
		return 0
	}
	year, _, _ := strings.Cut(published, "-")
	n, err := strconv.Atoi(year)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// secureURL upgrades cover links to https; covers render from a
// placeholder when absent, never a broken reference.
func secureURL(u string) string {
	return strings.Replace(u, "http://", "https://", 1)
}
