package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rileyhilliard/sd/internal/errors"
	"github.com/rileyhilliard/sd/internal/logger"
)

// DefaultTimeout is the request timeout used when none is configured.
const DefaultTimeout = 10 * time.Second

// userAgent identifies sd to the status feed.
const userAgent = "sd-status-deck"

// maxBodyBytes caps the response body read to protect against a
// misconfigured endpoint streaming unbounded data.
const maxBodyBytes = 1 << 20 // 1 MiB

// Client fetches status snapshots from a single feed endpoint.
// One Fetch call makes exactly one request: no retries, no caching.
type Client struct {
	endpoint string
	http     *http.Client
	log      logger.Logger
}

// NewClient creates a feed client for the given endpoint.
// A zero timeout falls back to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		log:      logger.NewEnvLogger("[feed]"),
	}
}

// SetLogger overrides the client's logger. Useful for tests.
func (c *Client) SetLogger(l logger.Logger) {
	c.log = l
}

// Fetch performs one GET against the feed endpoint and decodes the body
// into a Snapshot. The snapshot is returned as decoded; callers sort it
// before rendering.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	c.log.Debug("fetching %s", c.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Invalid feed endpoint: "+c.endpoint,
			"Check the endpoint URL in your config or --endpoint flag")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Can't reach the status feed",
			"Check your network connection and that the endpoint is up")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrFetch,
			fmt.Sprintf("Status feed returned HTTP %d", resp.StatusCode),
			"The endpoint is responding but not serving the status snapshot")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Failed reading the status feed response",
			"The connection may have dropped mid-response")
	}

	var snap Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrDecode,
			"Status feed returned malformed JSON",
			"Check the endpoint serves a status snapshot document")
	}

	c.log.Debug("decoded %d services (feed reports %d)", len(snap.Services), snap.ServiceCount)
	return &snap, nil
}
