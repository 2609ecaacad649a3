package wikimedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	defaultUserAgent  = "wikitop-analyzer"
	defaultRetries    = 3
	defaultRetryDelay = time.Second
)

// ArticleViews is a single article entry from a day's top-articles payload.
type ArticleViews struct {
	Article string `json:"article"`
	Views   int64  `json:"views"`
	Rank    int    `json:"rank"`
}

type topResponse struct {
	Items []struct {
		Articles []ArticleViews `json:"articles"`
	} `json:"items"`
}

// Client is a thin wrapper around the Wikimedia pageviews REST API.
type Client struct {
	baseURL    string
	project    string
	access     string
	userAgent  string
	retries    int
	retryDelay time.Duration
	httpClient *http.Client
}

// NewClient constructs a client with sane defaults.
func NewClient(project, access string, opts ...func(*Client)) *Client {
	c := &Client{
		baseURL:    apiBaseURL,
		project:    project,
		access:     access,
		userAgent:  defaultUserAgent,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient overrides the internal HTTP client.
func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the default API base URL (useful for tests).
func WithBaseURL(url string) func(*Client) {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithUserAgent overrides the identifying User-Agent header.
func WithUserAgent(ua string) func(*Client) {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRetryPolicy sets the attempt limit and the fixed delay between attempts.
func WithRetryPolicy(retries int, delay time.Duration) func(*Client) {
	return func(c *Client) {
		if retries > 0 {
			c.retries = retries
		}
		c.retryDelay = delay
	}
}

// TopArticles fetches the top-viewed article list for a single day.
//
// Transport failures, non-2xx statuses and malformed payloads all count as
// failed attempts and are retried up to the configured limit with a fixed
// delay in between. Once attempts are exhausted the day is reported as absent
// (ok == false) rather than as an error: a missing day is recoverable for the
// caller and must not abort the whole run.
func (c *Client) TopArticles(ctx context.Context, date time.Time) ([]ArticleViews, bool) {
	path := topPath(c.project, c.access,
		date.Format("2006"), date.Format("01"), date.Format("02"))
	url := c.baseURL + "/" + path

	for attempt := 1; attempt <= c.retries; attempt++ {
		articles, err := c.fetchOnce(ctx, url)
		if err == nil {
			return articles, true
		}
		log.Printf("wikimedia: attempt %d failed: %v", attempt, err)
		if attempt < c.retries {
			time.Sleep(c.retryDelay)
		}
	}

	log.Printf("wikimedia: giving up on %s after %d attempts", url, c.retries)
	return nil, false
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]ArticleViews, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, string(data))
	}

	var payload topResponse
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(payload.Items) == 0 {
		return nil, errors.New("payload has no items")
	}

	return payload.Items[0].Articles, nil
}
