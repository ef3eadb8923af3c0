package pushover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	// APIHost is the Pushover API host.
	APIHost = "api.pushover.net"
	// MessagesPath is the path of the message endpoint.
	MessagesPath = "/1/messages.json"

	// MaxMessageLength is the longest message, in characters, kept by New.
	MaxMessageLength = 1024
	// MaxTitleLength is the longest title, in characters, kept by WithTitle.
	MaxTitleLength = 250
)

type supplementaryURL struct {
	title string
	url   string
}

// Builder holds the parameters of a single message. Every With method
// returns a modified copy and leaves the receiver untouched.
type Builder struct {
	token      string
	user       string
	message    string
	device     *string
	title      *string
	priority   Priority
	formatting Formatting
	ttl        *int
	sound      *string
	url        *supplementaryURL
}

// New returns a Builder for message, truncated to MaxMessageLength
// characters. Priority defaults to Normal and formatting to Text.
func New(token, user, message string) Builder {
	return Builder{
		token:      token,
		user:       user,
		message:    truncate(message, MaxMessageLength),
		priority:   Normal,
		formatting: Text,
	}
}

func (b Builder) WithFormatting(f Formatting) Builder {
	b.formatting = f
	return b
}

// WithTitle sets the title, truncated to MaxTitleLength characters.
func (b Builder) WithTitle(title string) Builder {
	t := truncate(title, MaxTitleLength)
	b.title = &t
	return b
}

func (b Builder) WithPriority(p Priority) Builder {
	b.priority = p
	return b
}

// WithTimeToLive makes the message expire from the device after seconds.
func (b Builder) WithTimeToLive(seconds int) Builder {
	b.ttl = &seconds
	return b
}

func (b Builder) WithDevice(device string) Builder {
	b.device = &device
	return b
}

// WithSupplementaryURL attaches a link shown below the message.
func (b Builder) WithSupplementaryURL(title, url string) Builder {
	b.url = &supplementaryURL{title: title, url: url}
	return b
}

func (b Builder) WithSound(sound string) Builder {
	b.sound = &sound
	return b
}

// Message returns the (possibly truncated) message text.
func (b Builder) Message() string { return b.message }

// Title returns the title and whether one was set.
func (b Builder) Title() (string, bool) {
	if b.title == nil {
		return "", false
	}
	return *b.title, true
}

// Priority returns the configured priority.
func (b Builder) Priority() Priority { return b.priority }

// payload is the JSON body of a message request. Pointer fields are nil
// when the option was never set, so the key is left out entirely.
type payload struct {
	Token     string  `json:"token"`
	User      string  `json:"user"`
	Message   string  `json:"message"`
	Priority  int     `json:"priority"`
	Retry     *int    `json:"retry,omitempty"`
	Expire    *int    `json:"expire,omitempty"`
	HTML      int     `json:"html,omitempty"`
	Monospace int     `json:"monospace,omitempty"`
	URL       *string `json:"url,omitempty"`
	URLTitle  *string `json:"url_title,omitempty"`
	TTL       *int    `json:"ttl,omitempty"`
	Title     *string `json:"title,omitempty"`
	Sound     *string `json:"sound,omitempty"`
	Device    *string `json:"device,omitempty"`
}

func (b Builder) payload() payload {
	p := payload{
		Token:    b.token,
		User:     b.user,
		Message:  b.message,
		Priority: priorityValue(b.priority),
		TTL:      b.ttl,
		Title:    b.title,
		Sound:    b.sound,
		Device:   b.device,
	}
	if e, ok := b.priority.(Emergency); ok {
		retry, expire := e.clamped()
		p.Retry, p.Expire = &retry, &expire
	}
	switch b.formatting {
	case HTML:
		p.HTML = 1
	case Monospace:
		p.Monospace = 1
	}
	if b.url != nil {
		p.URL, p.URLTitle = &b.url.url, &b.url.title
	}
	return p
}

// Request describes the HTTP request for a message. It carries no
// connection state and can be sent by any HTTP client.
type Request struct {
	Method string
	Host   string
	Path   string
	Header http.Header
	Body   []byte
}

// URL returns the absolute https URL of the request.
func (r Request) URL() string {
	return "https://" + r.Host + r.Path
}

// HTTPRequest returns an *http.Request for r bound to ctx.
func (r Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	return r.httpRequest(ctx, r.URL())
}

func (r Request) httpRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, url, bytes.NewReader(r.Body))
	if err != nil {
		return nil, fmt.Errorf("pushover: new request: %w", err)
	}
	for k, v := range r.Header {
		req.Header[k] = append([]string(nil), v...)
	}
	return req, nil
}

// BuildRequest finalizes the message. It panics if the message is empty:
// that is a caller bug, not an API failure.
func (b Builder) BuildRequest() Request {
	if b.message == "" {
		panic("pushover: BuildRequest called with an empty message")
	}

	body, err := json.Marshal(b.payload())
	if err != nil {
		// payload holds only strings and ints.
		panic(fmt.Sprintf("pushover: marshal payload: %v", err))
	}

	h := make(http.Header, 2)
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")

	return Request{
		Method: http.MethodPost,
		Host:   APIHost,
		Path:   MessagesPath,
		Header: h,
		Body:   body,
	}
}

// truncate keeps the first n characters of s. It never splits a UTF-8
// sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
