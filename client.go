package pushover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Stats holds atomic request counters.
type Stats struct {
	TotalRequests uint64
	TotalErrors   uint64
	RateLimited   uint64
}

// StatsProvider exposes metrics for external collectors (Prometheus, OTel, etc.).
type StatsProvider interface {
	Stats() Stats
}

// Client sends messages over net/http. It sends each message exactly once
// and never retries; the returned error tells the caller what to do next.
type Client struct {
	httpClient *http.Client
	cfg        *config
	log        zerolog.Logger
	lowQuota   *rate.Sometimes

	mu         sync.Mutex
	lastLimits Limits

	totalReqs   atomic.Uint64
	totalErrors atomic.Uint64
	rateLimited atomic.Uint64
}

// Compile-time interface check.
var _ StatsProvider = (*Client)(nil)

// NewClient creates a Client with the given options.
func NewClient(opts ...Option) *Client {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		httpClient: hc,
		cfg:        cfg,
		log:        cfg.logger.With().Str("component", "pushover").Logger(),
		lowQuota:   &rate.Sometimes{First: 1, Interval: cfg.lowQuotaInterval},
	}
}

// Stats returns a snapshot of request statistics.
func (c *Client) Stats() Stats {
	return Stats{
		TotalRequests: c.totalReqs.Load(),
		TotalErrors:   c.totalErrors.Load(),
		RateLimited:   c.rateLimited.Load(),
	}
}

// LastLimits returns the quota reported by the most recent response that
// reached the server, or the zero Limits if none has.
func (c *Client) LastLimits() Limits {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastLimits
}

// Send builds the request for b, sends it and decodes the response.
// Like BuildRequest it panics if b has an empty message.
//
// Transport failures are wrapped; API failures are the errors documented
// on DecodeMessageResponse.
func (c *Client) Send(ctx context.Context, b Builder) (Limits, error) {
	r := b.BuildRequest()

	req, err := r.httpRequest(ctx, strings.TrimSuffix(c.cfg.baseURL, "/")+r.Path)
	if err != nil {
		return Limits{}, err
	}

	c.totalReqs.Add(1)

	if c.cfg.requestHook != nil {
		c.cfg.requestHook(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.totalErrors.Add(1)
		c.log.Error().Err(err).Str("url", req.URL.String()).Msg("send failed")
		return Limits{}, fmt.Errorf("pushover: http request: %w", err)
	}
	defer resp.Body.Close()

	if c.cfg.responseHook != nil {
		c.cfg.responseHook(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.maxResponseSize))
	if err != nil {
		c.totalErrors.Add(1)
		return Limits{}, fmt.Errorf("pushover: read response: %w", err)
	}

	limits, err := DecodeMessageResponse(resp.StatusCode, resp.Header, body)

	c.mu.Lock()
	c.lastLimits = limits
	c.mu.Unlock()

	if err != nil {
		c.totalErrors.Add(1)
		c.logFailure(err, resp.StatusCode)
		return limits, err
	}

	c.log.Debug().
		Int64("app_remaining", limits.AppRemaining).
		Int64("app_limit", limits.AppLimit).
		Msg("message sent")
	c.checkQuota(limits)
	return limits, nil
}

func (c *Client) logFailure(err error, status int) {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		c.rateLimited.Add(1)
		c.log.Warn().
			Int64("app_reset", rl.Limits.AppReset).
			Msg("rate limited")
		if c.cfg.onRateLimited != nil {
			c.cfg.onRateLimited(rl.Limits)
		}
		return
	}
	c.log.Warn().Err(err).Int("status", status).Msg("message rejected")
}

func (c *Client) checkQuota(l Limits) {
	if c.cfg.lowQuota <= 0 || l.AppLimit == 0 || l.AppRemaining > c.cfg.lowQuota {
		return
	}
	c.lowQuota.Do(func() {
		c.log.Warn().
			Int64("app_remaining", l.AppRemaining).
			Time("resets_at", l.ResetAt()).
			Msg("message quota running low")
	})
}
