package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

const maxBodySize = 8 * 1024 * 1024

// errUnavailable marks a 503 response, the only status retried at transport level
var errUnavailable = errors.New("service unavailable")

// HTTPFetcher retrieves pages with browser-like headers. Requests answered with
// 503 are retried with a fixed delay, everything else is returned to the caller as is.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	attempts  int
	delay     time.Duration
}

// FetcherParams defines HTTPFetcher settings
type FetcherParams struct {
	Timeout   time.Duration
	UserAgent string
	Attempts  int           // total attempts for 503 responses
	Delay     time.Duration // fixed delay between 503 attempts
}

// NewHTTPFetcher makes a fetcher with its own pooled client
func NewHTTPFetcher(params FetcherParams) *HTTPFetcher {
	if params.Attempts < 1 {
		params.Attempts = 1
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: params.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: params.UserAgent,
		attempts:  params.Attempts,
		delay:     params.Delay,
	}
}

// Get fetches url and returns the response body
func (f *HTTPFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	var fatal error
	err := repeater.NewFixed(f.attempts, f.delay).Do(ctx, func() error {
		b, err := f.fetch(ctx, url)
		if errors.Is(err, errUnavailable) {
			lgr.Printf("[DEBUG] %s responded with 503, retrying", url)
			return err
		}
		// anything but 503 stops the repeater, the error is kept for the caller
		body, fatal = b, err
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	if fatal != nil {
		return nil, fmt.Errorf("get %s: %w", url, fatal)
	}
	return body, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, errUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
