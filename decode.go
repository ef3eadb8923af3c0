package pushover

import (
	"net/http"
	"strings"
)

const invalidTokenText = "application token is invalid"

// DecodeMessageResponse interprets a response from the message endpoint.
// The returned Limits is parsed from header on every branch, so callers
// can inspect the quota even when err is non-nil.
//
// Errors are ErrInvalidApplicationToken, *BadRequestError,
// *RateLimitedError or *UnexpectedResponseError.
func DecodeMessageResponse(status int, header http.Header, body []byte) (Limits, error) {
	limits := ParseLimits(header)
	text := string(body)

	switch status {
	case http.StatusOK:
		return limits, nil
	case http.StatusBadRequest:
		if strings.Contains(text, invalidTokenText) {
			return limits, ErrInvalidApplicationToken
		}
		return limits, &BadRequestError{Body: text}
	case http.StatusTooManyRequests:
		return limits, &RateLimitedError{Limits: limits, Body: text}
	default:
		return limits, &UnexpectedResponseError{StatusCode: status, Body: text}
	}
}
