// Package fetch retrieves single pages over HTTP with a per-request timeout,
// a body size cap and a per-client concurrency gate. It performs no retries
// and keeps no cache; a failed fetch is the caller's signal to drop the URL.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultTimeout bounds a single fetch when the client does not override it.
const DefaultTimeout = 10 * time.Second

// DefaultMaxBodyBytes caps how much of a response body is read. Anything
// beyond the cap is discarded silently rather than treated as an error.
const DefaultMaxBodyBytes = 250_000

// ErrUnsupportedScheme marks URLs that are not http or https.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// StatusError reports a non-2xx response. Keeping the code lets callers
// distinguish an HTTP rejection from a transport failure or a timeout.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

// Client wraps http.Client with the per-request policy shared by all fetches:
// identifying User-Agent, HTML Accept header, timeout, size cap and an
// in-flight concurrency limit.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxBodyBytes caps the body read. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// RedirectMaxHops caps redirect following to avoid loops. Zero means 5.
	RedirectMaxHops int
	// MaxConcurrent limits concurrent in-flight requests per client instance.
	// Zero means unlimited.
	MaxConcurrent int

	limiter     chan struct{}
	limiterOnce sync.Once
}

// Get issues a GET for rawURL and returns up to MaxBodyBytes of the body.
// Any transport error, timeout or non-2xx status is returned as an error;
// callers absorb these per URL rather than propagating them.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	c.acquire()
	defer c.release()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, rawURL)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	reqCtx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()
	req = req.WithContext(reqCtx)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	max := c.MaxBodyBytes
	if max <= 0 {
		max = DefaultMaxBodyBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, max))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating the caller's client.
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		if !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func (c *Client) acquire() {
	if c.MaxConcurrent <= 0 {
		return
	}
	c.limiterOnce.Do(func() {
		c.limiter = make(chan struct{}, c.MaxConcurrent)
	})
	c.limiter <- struct{}{}
}

func (c *Client) release() {
	if c.MaxConcurrent <= 0 || c.limiter == nil {
		return
	}
	select {
	case <-c.limiter:
	default:
	}
}
