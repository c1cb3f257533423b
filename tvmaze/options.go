package tvmaze

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBaseURL is the public TVMaze API address
const DefaultBaseURL = "https://api.tvmaze.com"

const defaultTimeout = 30 * time.Second

// Config holds the settings shared by every request of a client.
// NewClient copies it; later changes to the caller's value are not seen by the client.
type Config struct {
	// BaseURL overrides DefaultBaseURL, e.g. for mirrors or tests
	BaseURL string
	// APIKey is appended as the last query parameter when set
	APIKey string
	// Product sets the User-Agent header when its name is set
	Product ProductInfo
}

// ProductInfo identifies the application issuing requests
type ProductInfo struct {
	Name    string
	Version string
}

// UserAgent renders the product as a User-Agent value
func (p ProductInfo) UserAgent() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "/" + p.Version
}

// IsZero reports whether no product identity is configured
func (p ProductInfo) IsZero() bool {
	return p.Name == ""
}

// HTTPDoer sends an HTTP request and returns its response.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Codec decodes a JSON document into v
type Codec interface {
	Unmarshal(data []byte, v any) error
}

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds construction-time settings for the Client.
type clientOptions struct {
	httpClient    HTTPDoer
	httpClientSet bool
	timeout       time.Duration
	codec         Codec
	registerer    prometheus.Registerer
	concurrency   int
}

// WithHTTPClient replaces the default HTTP client.
// Passing nil makes NewClient fail.
func WithHTTPClient(c HTTPDoer) Option {
	return func(o *clientOptions) {
		o.httpClient = c
		o.httpClientSet = true
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// It has no effect together with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithCodec replaces the JSON codec used to decode responses.
// Passing nil makes NewClient fail.
func WithCodec(c Codec) Option {
	return func(o *clientOptions) {
		o.codec = c
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *clientOptions) {
		o.registerer = reg
	}
}

// WithConcurrency bounds the in-flight requests of GetShows and GetEpisodes.
// Values below 1 keep DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
