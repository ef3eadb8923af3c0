package pushover

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*config)

type config struct {
	baseURL          string
	timeout          time.Duration
	maxResponseSize  int64
	httpClient       *http.Client
	logger           zerolog.Logger
	lowQuota         int64
	lowQuotaInterval time.Duration

	onRateLimited func(limits Limits)

	requestHook  func(req *http.Request)
	responseHook func(resp *http.Response)
}

func defaultConfig() *config {
	return &config{
		baseURL:          "https://" + APIHost,
		timeout:          30 * time.Second,
		maxResponseSize:  1 << 20, // 1 MB
		logger:           zerolog.Nop(),
		lowQuota:         0, // no low-quota warning by default
		lowQuotaInterval: time.Minute,
	}
}

// WithBaseURL replaces the scheme and host requests are sent to. The
// message path is appended to it.
func WithBaseURL(url string) Option {
	return func(c *config) { c.baseURL = url }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithMaxResponseSize sets the maximum response body size in bytes.
func WithMaxResponseSize(n int64) Option {
	return func(c *config) { c.maxResponseSize = n }
}

// WithHTTPClient sets a custom underlying *http.Client.
// The timeout option is ignored when a custom client is provided.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.httpClient = hc }
}

// WithLogger sets the logger used by the client. The default discards
// everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithLowQuotaThreshold logs a warning, at most once per interval, when a
// successful send reports n or fewer remaining messages.
func WithLowQuotaThreshold(n int64, interval time.Duration) Option {
	return func(c *config) {
		c.lowQuota = n
		if interval > 0 {
			c.lowQuotaInterval = interval
		}
	}
}

// WithOnRateLimited sets a callback invoked when the server answers 429.
func WithOnRateLimited(fn func(limits Limits)) Option {
	return func(c *config) { c.onRateLimited = fn }
}

// WithRequestHook sets a hook called before each request is sent.
func WithRequestHook(fn func(req *http.Request)) Option {
	return func(c *config) { c.requestHook = fn }
}

// WithResponseHook sets a hook called after each response is received.
func WithResponseHook(fn func(resp *http.Response)) Option {
	return func(c *config) { c.responseHook = fn }
}
