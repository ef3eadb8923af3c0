// Package pushover builds requests for the Pushover message API and decodes
// its responses into typed results.
//
// The core is transport-free:
//   - Builder accumulates message parameters through value-receiver setters
//     and produces a Request descriptor (method, host, path, headers, body)
//   - DecodeMessageResponse maps a status code, headers and body into the
//     Limits snapshot reported by the server or a typed error
//
// Builders are immutable values, so intermediate builders can be reused:
//
//	base := pushover.New(token, user, "backup finished").
//	    WithTitle("nightly").
//	    WithSound("magic")
//	urgent := base.WithPriority(pushover.Emergency{Retry: 60, Expire: 3600})
//
//	req := urgent.BuildRequest()
//
// Client is an optional convenience that sends a Builder over net/http and
// decodes the result:
//
//	client := pushover.NewClient(pushover.WithTimeout(10 * time.Second))
//	limits, err := client.Send(ctx, urgent)
//	var rl *pushover.RateLimitedError
//	if errors.As(err, &rl) {
//	    // wait until rl.Limits.ResetAt() before trying again
//	}
//
// The package never retries and never enforces quotas; it only reports the
// limits the server returns.
package pushover
