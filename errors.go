package pushover

import (
	"errors"
	"fmt"
)

// ErrInvalidApplicationToken is returned when the server rejects the
// application token.
var ErrInvalidApplicationToken = errors.New("pushover: application token is invalid")

// BadRequestError is a 400 response for any reason other than an invalid
// application token.
type BadRequestError struct {
	Body string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("pushover: bad request: %s", e.Body)
}

// RateLimitedError is a 429 response.
type RateLimitedError struct {
	Limits Limits
	Body   string
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("pushover: rate limited (limit %d, remaining %d, reset %d): %s",
		e.Limits.AppLimit, e.Limits.AppRemaining, e.Limits.AppReset, e.Body)
}

// UnexpectedResponseError is any status other than 200, 400 or 429.
type UnexpectedResponseError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("pushover: unexpected HTTP %d: %s", e.StatusCode, e.Body)
}

// MessageLimitExceededError reports an exhausted monthly quota.
//
// DecodeMessageResponse never returns it: the API has no status that maps
// to it distinctly from RateLimitedError. It is kept for callers that
// want to signal the condition themselves from a Limits snapshot.
type MessageLimitExceededError struct {
	Limits Limits
}

func (e *MessageLimitExceededError) Error() string {
	return fmt.Sprintf("pushover: message limit of %d exceeded, resets at %d",
		e.Limits.AppLimit, e.Limits.AppReset)
}
