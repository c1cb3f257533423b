package tvmaze

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

// Client represents a TVMaze API client. It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient HTTPDoer
	codec      Codec
	metrics    *metrics
	logger     zerolog.Logger
	limit      int
}

// NewClient creates a new TVMaze client. cfg is copied.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := clientOptions{
		timeout:     defaultTimeout,
		codec:       jsoniter.ConfigCompatibleWithStandardLibrary,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q is not an absolute URL", ErrInvalidConfig, cfg.BaseURL)
	}

	if isNil(o.codec) {
		return nil, fmt.Errorf("%w: JSON codec is required", ErrInvalidConfig)
	}

	httpClient := o.httpClient
	if o.httpClientSet {
		if isNil(httpClient) {
			return nil, fmt.Errorf("%w: HTTP client is required", ErrInvalidConfig)
		}
	} else {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		codec:      o.codec,
		logger:     logger,
		limit:      o.concurrency,
	}
	if o.registerer != nil {
		c.metrics = newMetrics(o.registerer)
	}

	return c, nil
}

// Config returns a copy of the client's configuration
func (c *Client) Config() Config {
	return c.cfg
}

// requestURL appends the API key, if any, after all other parameters
func (c *Client) requestURL(path string, q Query) string {
	if c.cfg.APIKey != "" {
		q.Add("apikey", c.cfg.APIKey)
	}
	return buildURL(c.cfg.BaseURL, path, q)
}

// doRequest performs a GET request and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, endpoint, path string, q Query) ([]byte, string, error) {
	requestURL := c.requestURL(path, q)
	logURL := c.redact(requestURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, logURL, &TransportError{URL: logURL, Err: fmt.Errorf("failed to create request: %w", c.redactError(err))}
	}

	req.Header.Set("Accept", "application/json")
	if !c.cfg.Product.IsZero() {
		req.Header.Set("User-Agent", c.cfg.Product.UserAgent())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = c.redactError(err)
		c.metrics.observe(endpoint, 0, time.Since(start))
		c.logger.Debug().Err(err).Str("endpoint", endpoint).Str("url", logURL).Msg("TVMaze request failed")
		return nil, logURL, &TransportError{URL: logURL, Err: err}
	}
	defer resp.Body.Close()

	took := time.Since(start)
	c.metrics.observe(endpoint, resp.StatusCode, took)
	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("url", logURL).
		Int("status", resp.StatusCode).
		Dur("took", took).
		Msg("TVMaze API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, logURL, &APIError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			URL:        logURL,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, logURL, &TransportError{URL: logURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return body, logURL, nil
}

// get issues one request and decodes the response into a fresh T.
// On any error the zero T is returned, never a partially decoded value.
func get[T any](ctx context.Context, c *Client, endpoint, path string, q Query) (T, error) {
	var zero T

	body, logURL, err := c.doRequest(ctx, endpoint, path, q)
	if err != nil {
		return zero, err
	}

	var out T
	if err := c.codec.Unmarshal(body, &out); err != nil {
		return zero, &DecodeError{URL: logURL, Err: err}
	}

	return out, nil
}

// getOne is get for endpoints returning a single record
func getOne[T any](ctx context.Context, c *Client, endpoint, path string, q Query) (*T, error) {
	v, err := get[T](ctx, c, endpoint, path, q)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// redact hides the API key in URLs written to logs and errors
func (c *Client) redact(s string) string {
	if c.cfg.APIKey == "" {
		return s
	}
	return strings.ReplaceAll(s, "apikey="+url.QueryEscape(c.cfg.APIKey), "apikey=REDACTED")
}

// redactError strips the API key from the URL net/http puts in its errors
func (c *Client) redactError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = c.redact(uerr.URL)
	}
	return err
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Slice, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
