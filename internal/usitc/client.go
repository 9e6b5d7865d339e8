package usitc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAPIBase is the public USITC tariff schedule REST endpoint.
	DefaultAPIBase = "https://hts.usitc.gov/reststop"

	// DefaultTimeout bounds each search call; the USITC API is a
	// third-party service outside our control.
	DefaultTimeout = 10 * time.Second
)

// Config holds USITC API client configuration.
type Config struct {
	APIBase string
	Timeout time.Duration
}

// Client queries the USITC Harmonized Tariff Schedule database.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new USITC API client.
func NewClient(cfg Config) *Client {
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBase, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Footnote is a tariff schedule footnote attached to a record.
type Footnote struct {
	Columns []string `json:"columns,omitempty"`
	Marker  string   `json:"marker,omitempty"`
	Value   string   `json:"value,omitempty"`
	Type    string   `json:"type,omitempty"`
}

// SearchResult is one raw record from the USITC keyword search, in the
// source's native field names. Records arrive in pre-order hierarchical
// traversal; header rows have an empty HtsNo.
type SearchResult struct {
	HtsNo       string     `json:"htsno"`
	Description string     `json:"description"`
	Indent      string     `json:"indent"`
	Units       []string   `json:"units"`
	General     string     `json:"general"`
	Special     string     `json:"special"`
	Other       string     `json:"other"`
	Footnotes   []Footnote `json:"footnotes"`
}

// IndentLevel parses the record's indent column. The API returns it as a
// string; malformed values count as level 0.
func (r SearchResult) IndentLevel() int {
	n, err := strconv.Atoi(strings.TrimSpace(r.Indent))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Search runs a keyword search against the tariff database and returns the
// raw records in source order. A non-2xx response fails with *StatusError.
func (c *Client) Search(ctx context.Context, keyword string) ([]SearchResult, error) {
	if keyword == "" {
		return nil, fmt.Errorf("keyword must not be empty")
	}

	reqURL := c.baseURL + "/search?keyword=" + url.QueryEscape(keyword)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tariff search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return results, nil
}
