// Package wikipedia provides MediaWiki API clients: a geosearch client
// implementing placelist.GeosearchService and an extract client
// implementing placelist.ExtractService.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dtomczyk/placelist"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the MediaWiki API endpoint of English Wikipedia.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

// Defaults for the geosearch query. The radius is in meters, the
// thumbnail size in pixels.
const (
	DefaultRadius        = 10000
	DefaultLimit         = 50
	DefaultThumbnailSize = 500
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// defaultUserAgent identifies the client per the Wikimedia API etiquette.
const defaultUserAgent = "placelist/1.0 (https://github.com/dtomczyk/placelist)"

// Ensure Client implements placelist.GeosearchService at compile time.
var _ placelist.GeosearchService = (*Client)(nil)

// Client queries the MediaWiki geosearch generator for pages near a
// coordinate pair.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	radius     int
	limit      int
	thumbSize  int
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests and for
// non-English Wikipedias.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header on API requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRadius sets the search radius in meters.
func WithRadius(m int) Option {
	return func(c *Client) { c.radius = m }
}

// WithLimit sets the maximum number of results per query.
func WithLimit(n int) Option {
	return func(c *Client) { c.limit = n }
}

// WithThumbnailSize sets the requested thumbnail width in pixels.
func WithThumbnailSize(px int) Option {
	return func(c *Client) { c.thumbSize = px }
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLimiter replaces the request rate limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// NewClient creates a new geosearch Client. Requests are rate limited to
// one per second unless WithLimiter overrides it.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		radius:    DefaultRadius,
		limit:     DefaultLimit,
		thumbSize: DefaultThumbnailSize,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	if c.limiter == nil {
		c.limiter = rate.NewLimiter(rate.Limit(1), 1)
	}
	return c
}

// geosearchResponse mirrors the slice of the API response we consume:
// a pages object keyed by opaque string page IDs.
type geosearchResponse struct {
	Query struct {
		Pages map[string]pageEntry `json:"pages"`
	} `json:"query"`
}

type pageEntry struct {
	PageID int64  `json:"pageid"`
	Title  string `json:"title"`
	Terms  struct {
		Description []string `json:"description"`
	} `json:"terms"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

// NearbyPages returns pages near the given coordinates. The map keys of
// the response are discarded; only the entries are returned, in
// unspecified order. Callers needing a stable order sort by Page.ID.
func (c *Client) NearbyPages(ctx context.Context, lat, lon float64) ([]*placelist.Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("generator", "geosearch")
	params.Set("ggscoord", fmt.Sprintf("%f|%f", lat, lon))
	params.Set("ggsradius", strconv.Itoa(c.radius))
	params.Set("ggslimit", strconv.Itoa(c.limit))
	params.Set("prop", "pageimages|pageterms")
	params.Set("piprop", "thumbnail")
	params.Set("pithumbsize", strconv.Itoa(c.thumbSize))
	params.Set("wbptterms", "description")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from geosearch", resp.StatusCode)
	}

	var decoded geosearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geosearch response: %w", err)
	}

	pages := make([]*placelist.Page, 0, len(decoded.Query.Pages))
	for _, entry := range decoded.Query.Pages {
		page := &placelist.Page{
			ID:        entry.PageID,
			Title:     entry.Title,
			Thumbnail: entry.Thumbnail.Source,
		}
		if len(entry.Terms.Description) > 0 {
			page.Description = entry.Terms.Description[0]
		}
		pages = append(pages, page)
	}
	return pages, nil
}
