package pushover

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Rate-limit headers returned with every message response.
const (
	HeaderAppLimit     = "X-Limit-App-Limit"
	HeaderAppRemaining = "X-Limit-App-Remaining"
	HeaderAppReset     = "X-Limit-App-Reset"
)

// Limits is the application's message quota as reported by the server.
type Limits struct {
	AppLimit     int64
	AppRemaining int64
	// AppReset is the unix time at which AppRemaining resets.
	AppReset int64
}

// ResetAt returns AppReset as a time.Time.
func (l Limits) ResetAt() time.Time {
	return time.Unix(l.AppReset, 0)
}

// ParseLimits reads the rate-limit headers. Missing or malformed values
// are reported as 0.
func ParseLimits(h http.Header) Limits {
	return Limits{
		AppLimit:     headerInt(h, HeaderAppLimit),
		AppRemaining: headerInt(h, HeaderAppRemaining),
		AppReset:     headerInt(h, HeaderAppReset),
	}
}

func headerInt(h http.Header, name string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(headerValue(h, name)), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// headerValue looks name up case-insensitively, including headers that
// were stored without canonicalization.
func headerValue(h http.Header, name string) string {
	if v := h.Get(name); v != "" {
		return v
	}
	for k, v := range h {
		if len(v) > 0 && strings.EqualFold(k, name) {
			return v[0]
		}
	}
	return ""
}
