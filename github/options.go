package github

import (
	"net/http"
	"time"
)

// Option configures a Connection.
type Option func(*clientOptions)

// clientOptions holds configuration options for a Connection.
type clientOptions struct {
	timeout     time.Duration
	dialTimeout time.Duration
	httpClient  *http.Client
	transport   Transport
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:     30 * time.Second,
		dialTimeout: 10 * time.Second,
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithDialTimeout sets the timeout for the initial session dial.
func WithDialTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.dialTimeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client for the session.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTransport replaces the session transport entirely. The reachability
// dial is skipped. Intended for tests.
func WithTransport(transport Transport) Option {
	return func(o *clientOptions) {
		o.transport = transport
	}
}
