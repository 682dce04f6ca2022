package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dtomczyk/placelist"
	"golang.org/x/time/rate"
)

// Ensure ExtractClient implements placelist.ExtractService at compile time.
var _ placelist.ExtractService = (*ExtractClient)(nil)

// ExtractClient fetches intro extracts of pages from the MediaWiki API.
// The extract arrives as a limited HTML fragment; cleaning and markdown
// conversion are left to the enrichment pipeline.
type ExtractClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
}

// ExtractOption configures an ExtractClient.
type ExtractOption func(*ExtractClient)

// WithExtractBaseURL overrides the API endpoint.
func WithExtractBaseURL(u string) ExtractOption {
	return func(c *ExtractClient) { c.baseURL = u }
}

// WithExtractHTTPClient replaces the underlying HTTP client.
func WithExtractHTTPClient(hc *http.Client) ExtractOption {
	return func(c *ExtractClient) { c.httpClient = hc }
}

// WithExtractLimiter replaces the request rate limiter.
func WithExtractLimiter(l *rate.Limiter) ExtractOption {
	return func(c *ExtractClient) { c.limiter = l }
}

// NewExtractClient creates a new ExtractClient. Requests are rate
// limited to one per second unless WithExtractLimiter overrides it.
func NewExtractClient(opts ...ExtractOption) *ExtractClient {
	c := &ExtractClient{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Limit(1), 1)
	}
	return c
}

type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID  int64  `json:"pageid"`
			Title   string `json:"title"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// IntroExtract returns the intro extract HTML for the given page title.
// Returns ENOTFOUND if the page does not exist or has no extract.
func (c *ExtractClient) IntroExtract(ctx context.Context, title string) (string, error) {
	if title == "" {
		return "", placelist.Errorf(placelist.EINVALID, "page title required")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from extracts", resp.StatusCode)
	}

	var decoded extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode extract response: %w", err)
	}

	for _, entry := range decoded.Query.Pages {
		if strings.TrimSpace(entry.Extract) != "" {
			return entry.Extract, nil
		}
	}
	return "", placelist.Errorf(placelist.ENOTFOUND, "no extract for page %q", title)
}
