// Package canvas provides a read-only client for the Canvas LMS REST API
package canvas

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "rollcall/internal/platform/errors"
	"rollcall/internal/platform/logger"
)

const (
	defaultTimeout = 30 * time.Second
	defaultUA      = "rollcall-analyzer"
	defaultPerPage = 100

	// maxBody bounds response reads; a course payload near this size is
	// malformed, not large
	maxBody = 8 << 20
)

// Options configures the Client
type Options struct {
	// BaseURL is the API root, e.g. https://canvas.example.edu/api/v1
	BaseURL string

	// Token is the bearer token attached to every request
	Token string

	UserAgent string
	Timeout   time.Duration

	// PerPage is the page size for paginated listings
	PerPage int
}

// Client is a minimal Canvas REST client.
// All calls are sequential and issued once; a failed request is a failed
// request, the caller decides whether to skip or abort
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.PerPage <= 0 || o.PerPage > defaultPerPage {
		o.PerPage = defaultPerPage
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("canvas"),
		now:  time.Now,
	}
}

// PerPage exposes the configured page size for pagination loops
func (c *Client) PerPage() int { return c.opts.PerPage }

// get issues one GET with auth headers and returns the body bytes.
// Non-2xx statuses map to ErrorCodeUnavailable with a small diagnostic tail
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := c.opts.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "canvas new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "canvas request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("canvas close body failed")
		}
	}()

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("canvas http response")

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "canvas read body failed")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail := body
		if len(tail) > 2048 {
			tail = tail[:2048]
		}
		return nil, perr.Newf(perr.ErrorCodeUnavailable,
			"canvas unexpected status %d body %s", resp.StatusCode, string(tail))
	}
	return body, nil
}
