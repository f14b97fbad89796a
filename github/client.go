package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog"
)

// Connection is a stateful handle wrapping one persistent session to an
// API host. It exposes Get, Post, and Patch with paths relative to the
// configured base URL.
//
// Requests are strictly sequential: a Connection assumes exactly one
// request in flight at a time and provides no internal locking. Callers
// that need concurrency open one Connection per goroutine.
type Connection struct {
	config    Config
	transport Transport
	logger    zerolog.Logger
}

// Connect validates the configuration, establishes the session, and
// returns a connected handle. Configuration errors (malformed base URL,
// unsupported protocol) and session establishment failures are reported
// before any API request is sent.
func Connect(cfg Config, logger zerolog.Logger, opts ...Option) (*Connection, error) {
	cfg = cfg.normalized()

	ep, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	transport := options.transport
	if transport == nil {
		// Fail fast on an unreachable host rather than on the first
		// request.
		conn, err := net.DialTimeout("tcp", ep.hostPort, options.dialTimeout)
		if err != nil {
			return nil, &Error{
				Kind:    KindConnectionFailure,
				Message: fmt.Sprintf("connection to %s failed", ep.hostPort),
				Err:     err,
			}
		}
		conn.Close()
		transport = newHTTPTransport(options)
	}

	logger.Debug().
		Str("host", ep.hostPort).
		Bool("tls", ep.secure).
		Msg("Connected to API host")

	return &Connection{
		config:    cfg,
		transport: transport,
		logger:    logger,
	}, nil
}

// Close releases the persistent session. The Connection must not be
// used afterwards.
func (c *Connection) Close() {
	if c.transport != nil {
		c.transport.Close()
	}
}

// ensureConnected guards against use of a handle that never went
// through Connect. That is a programming error, not a recoverable
// condition.
func (c *Connection) ensureConnected() {
	if c == nil || c.transport == nil {
		panic("github: connection not established")
	}
}

// send performs one prepared exchange and interprets the status.
func (c *Connection) send(ctx context.Context, method, url string, body []byte) (*Response, error) {
	req := prepareRequest(c.config, method, url, body)

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, &Error{
			Kind:    KindConnectionFailure,
			Message: fmt.Sprintf("%s %s failed", method, url),
			Err:     err,
		}
	}

	if err := interpretStatus(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// Get fetches the resource at path relative to the base URL and returns
// the decoded JSON value.
//
// List-shaped responses are aggregated transparently: each page's
// elements are appended in order and the Link header's rel="next" entry
// drives the loop until no continuation remains. A non-list response
// replaces the result wholesale and is returned as-is; a continuation
// link on such a response is never followed, since single-object
// endpoints do not paginate. Any page failure aborts the entire call —
// no partial aggregate is ever returned.
func (c *Connection) Get(ctx context.Context, path string) (any, error) {
	c.ensureConnected()

	items := []any{}
	var single any
	listShaped := false

	url := c.config.BaseURL + path
	for page := 1; ; page++ {
		resp, err := c.send(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		var value any
		if err := json.Unmarshal(resp.Body, &value); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}

		if pageItems, ok := value.([]any); ok {
			items = append(items, pageItems...)
			listShaped = true
		} else {
			single = value
			listShaped = false
		}

		next := nextPageURL(resp.Header.Get("Link"))
		if next == "" {
			break
		}
		if !listShaped {
			c.logger.Warn().
				Str("url", url).
				Msg("Ignoring continuation link on non-list response")
			break
		}

		c.logger.Debug().
			Int("page", page+1).
			Int("collected", len(items)).
			Str("url", next).
			Msg("Following pagination link")
		url = next
	}

	if listShaped {
		return items, nil
	}
	return single, nil
}

// Post sends body as JSON to path and returns the decoded response.
// Single exchange, no pagination, even for list-shaped responses.
func (c *Connection) Post(ctx context.Context, path string, body any) (any, error) {
	return c.write(ctx, http.MethodPost, path, body)
}

// Patch sends body as JSON to path and returns the decoded response.
// Single exchange, no pagination, even for list-shaped responses.
func (c *Connection) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.write(ctx, http.MethodPatch, path, body)
}

func (c *Connection) write(ctx context.Context, method, path string, body any) (any, error) {
	c.ensureConnected()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := c.send(ctx, method, c.config.BaseURL+path, payload)
	if err != nil {
		return nil, err
	}

	// 204-style responses carry no body.
	if len(resp.Body) == 0 {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal(resp.Body, &value); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return value, nil
}
