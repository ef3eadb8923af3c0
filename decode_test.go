package pushover

import (
	"errors"
	"net/http"
	"testing"
	"time"
)

func limitHeaders() http.Header {
	h := http.Header{}
	h.Set("X-Limit-App-Limit", "100")
	h.Set("X-Limit-App-Remaining", "99")
	h.Set("X-Limit-App-Reset", "1700000000")
	return h
}

var wantLimits = Limits{AppLimit: 100, AppRemaining: 99, AppReset: 1700000000}

func TestDecodeSuccess(t *testing.T) {
	limits, err := DecodeMessageResponse(200, limitHeaders(), []byte(`{"status":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if limits != wantLimits {
		t.Fatalf("unexpected limits: %+v", limits)
	}
}

func TestDecodeInvalidToken(t *testing.T) {
	body := []byte(`{"token":"invalid","errors":["application token is invalid"],"status":0}`)
	_, err := DecodeMessageResponse(400, limitHeaders(), body)
	if !errors.Is(err, ErrInvalidApplicationToken) {
		t.Fatalf("expected ErrInvalidApplicationToken, got %v", err)
	}
}

func TestDecodeBadRequest(t *testing.T) {
	_, err := DecodeMessageResponse(400, nil, []byte("user identifier is invalid"))
	var br *BadRequestError
	if !errors.As(err, &br) {
		t.Fatalf("expected *BadRequestError, got %T", err)
	}
	if br.Body != "user identifier is invalid" {
		t.Fatalf("unexpected body: %q", br.Body)
	}
	if errors.Is(err, ErrInvalidApplicationToken) {
		t.Fatal("bad request must not match ErrInvalidApplicationToken")
	}
}

func TestDecodeRateLimited(t *testing.T) {
	limits, err := DecodeMessageResponse(429, limitHeaders(), []byte("slow down"))
	var rl *RateLimitedError
	if !errors.As(err, &rl) {
		t.Fatalf("expected *RateLimitedError, got %T", err)
	}
	if rl.Limits != wantLimits || rl.Body != "slow down" {
		t.Fatalf("unexpected error: %+v", rl)
	}
	if limits != wantLimits {
		t.Fatalf("returned limits differ from error limits: %+v", limits)
	}
}

func TestDecodeUnexpected(t *testing.T) {
	for _, status := range []int{500, 201, 404, 503} {
		_, err := DecodeMessageResponse(status, nil, []byte("oops"))
		var ur *UnexpectedResponseError
		if !errors.As(err, &ur) {
			t.Fatalf("status %d: expected *UnexpectedResponseError, got %T", status, err)
		}
		if ur.StatusCode != status || ur.Body != "oops" {
			t.Fatalf("status %d: unexpected error: %+v", status, ur)
		}
	}
}

func TestParseLimits(t *testing.T) {
	lower := http.Header{
		"x-limit-app-limit":     {"100"},
		"x-limit-app-remaining": {"99"},
		"x-limit-app-reset":     {"1700000000"},
	}
	tests := []struct {
		name string
		h    http.Header
		want Limits
	}{
		{"canonical", limitHeaders(), wantLimits},
		{"raw lowercase", lower, wantLimits},
		{"missing", http.Header{}, Limits{}},
		{"nil", nil, Limits{}},
		{"garbage", http.Header{
			"X-Limit-App-Limit":     {"lots"},
			"X-Limit-App-Remaining": {"1.5"},
			"X-Limit-App-Reset":     {""},
		}, Limits{}},
		{"partial", http.Header{"X-Limit-App-Remaining": {" 7 "}}, Limits{AppRemaining: 7}},
	}
	for _, tt := range tests {
		if got := ParseLimits(tt.h); got != tt.want {
			t.Errorf("%s: ParseLimits = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestDecodeMissingHeadersDefaultToZero(t *testing.T) {
	limits, err := DecodeMessageResponse(200, http.Header{"X-Limit-App-Limit": {"n/a"}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if limits != (Limits{}) {
		t.Fatalf("expected zero limits, got %+v", limits)
	}
}

func TestLimitsResetAt(t *testing.T) {
	if got := wantLimits.ResetAt(); !got.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("unexpected reset time: %v", got)
	}
}

func TestErrorMessages(t *testing.T) {
	errs := []error{
		&BadRequestError{Body: "b"},
		&RateLimitedError{Limits: wantLimits, Body: "b"},
		&UnexpectedResponseError{StatusCode: 500, Body: "b"},
		&MessageLimitExceededError{Limits: wantLimits},
	}
	for _, err := range errs {
		if msg := err.Error(); len(msg) < len("pushover: ") || msg[:len("pushover: ")] != "pushover: " {
			t.Errorf("%T: unexpected message %q", err, msg)
		}
	}
}
