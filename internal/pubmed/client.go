// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed fetches article metadata from the NCBI E-utilities API
// and extracts normalized citation fields from the returned documents.
package pubmed

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the NCBI E-utilities endpoint root.
	BaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// toolName identifies this client to NCBI, per the usage policy.
	toolName = "pubtex"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// NCBI allows 3 requests per second without an API key, 10 with one.
	rateWithoutKey = 3.0
	rateWithKey    = 10.0

	// rootCloseMarker ends every well-formed EFetch payload. A payload
	// without it is how the API reports an unknown PMID.
	rootCloseMarker = "</PubmedArticleSet>"
)

// Client is a rate-limited HTTP client for the NCBI E-utilities API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	email      string
	apiKey     string
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEmail sets the contact address sent with every request.
func WithEmail(email string) ClientOption {
	return func(c *Client) { c.email = email }
}

// WithAPIKey sets an NCBI API key, which raises the request rate limit.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithBaseURL sets a custom endpoint root (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// NewClient creates an E-utilities client. The rate limit is chosen from
// the NCBI policy based on whether an API key is configured.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
		userAgent:  toolName + "/0.1",
	}
	for _, opt := range opts {
		opt(c)
	}

	rps := rate.Limit(rateWithoutKey)
	if c.apiKey != "" {
		rps = rate.Limit(rateWithKey)
	}
	c.limiter = rate.NewLimiter(rps, 1)
	return c
}

// Fetch retrieves the EFetch document for one PMID. A payload that does
// not end with the PubmedArticleSet closing marker, or that contains no
// article, yields a NotFoundError; a payload that carries the marker but
// fails to parse yields a MalformedDocumentError.
func (c *Client) Fetch(ctx context.Context, pmid string) (*Article, error) {
	q := url.Values{}
	q.Set("db", "pubmed")
	q.Set("id", pmid)
	q.Set("retmode", "xml")

	body, err := c.get(ctx, "/efetch.fcgi", q)
	if err != nil {
		return nil, err
	}

	if !bytes.HasSuffix(bytes.TrimSpace(body), []byte(rootCloseMarker)) {
		return nil, &NotFoundError{PMID: pmid}
	}

	var set articleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, &MalformedDocumentError{PMID: pmid, Err: err}
	}
	if len(set.Articles) == 0 {
		return nil, &NotFoundError{PMID: pmid}
	}
	return &set.Articles[0], nil
}

// esearch JSON structures.
type esearchEnvelope struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// Search runs an ESearch query against the pubmed database and returns
// the matching PMIDs, at most maxResults of them (default 20).
func (c *Client) Search(ctx context.Context, term string, maxResults int) ([]string, error) {
	if term == "" {
		return nil, fmt.Errorf("empty search term")
	}
	if maxResults <= 0 {
		maxResults = 20
	}

	q := url.Values{}
	q.Set("db", "pubmed")
	q.Set("term", term)
	q.Set("retmode", "json")
	q.Set("retmax", fmt.Sprintf("%d", maxResults))

	body, err := c.get(ctx, "/esearch.fcgi", q)
	if err != nil {
		return nil, err
	}

	var env esearchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parsing ESearch response: %w", err)
	}
	return env.Result.IDList, nil
}

// get performs one rate-limited E-utilities request and returns the body.
// The tool, email, and api_key identity parameters are appended per the
// NCBI usage policy.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q.Set("tool", toolName)
	if c.email != "" {
		q.Set("email", c.email)
	}
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("E-utilities request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
