package remote

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrStatus is returned when the server answers with a non-success status.
var ErrStatus = errors.New("unexpected response status")

// DefaultTimeout bounds a fetch unless WithTimeout overrides it.
const DefaultTimeout = 15 * time.Second

// Source fetches configuration bytes from an HTTP(S) resource.
type Source struct {
	client  *resty.Client
	url     string
	timeout time.Duration
	hint    string
}

// Option defines a function type for configuring a Source.
type Option func(*Source)

// WithTimeout bounds the HTTP request. Defaults to DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Source) {
		s.timeout = timeout
	}
}

// WithClient substitutes the HTTP client, e.g. one carrying auth or TLS
// settings. The timeout option is ignored when a client is supplied.
func WithClient(client *resty.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

// New creates a Source fetching the given URL. Nothing is requested until
// Fetch is called.
func New(rawURL string, opts ...Option) *Source {
	s := &Source{url: rawURL, timeout: DefaultTimeout}

	for _, apply := range opts {
		apply(s)
	}

	if s.client == nil {
		s.client = resty.New().SetTimeout(s.timeout)
	}

	return s
}

// Fetch performs a blocking GET and returns the response body. Transport
// errors and non-2xx statuses are reported as errors; on success the
// response Content-Type is recorded as the format hint.
func (s *Source) Fetch() ([]byte, error) {
	resp, err := s.client.R().Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", s.url, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("fetching %q: %w: %s", s.url, ErrStatus, resp.Status())
	}

	s.hint = formatHint(resp.Header().Get("Content-Type"), s.url)

	return resp.Body(), nil
}

// FormatHint reports the format learned from the response Content-Type, or
// from the URL path extension when the header is inconclusive. Empty until
// Fetch has run.
func (s *Source) FormatHint() string {
	return s.hint
}

func formatHint(contentType, rawURL string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch {
	case strings.Contains(mediaType, "json"):
		return "json"
	case strings.Contains(mediaType, "yaml"):
		return "yaml"
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
}
