package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
)

// Request is an immutable description of one API exchange, assembled in
// full before the transport sends it.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response carries the status, headers, and fully read body of one
// exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport is the capability a Connection uses to exchange requests
// over its persistent session. Exactly one Connection owns a Transport;
// it is never shared between instances.
type Transport interface {
	// Send performs one request/response exchange. The returned
	// Response has its body fully read.
	Send(ctx context.Context, req *Request) (*Response, error)
	// Close releases the underlying session.
	Close()
}

// prepareRequest builds the request description for one exchange. Pure
// function of the configuration and the request parameters: Basic auth
// when a username is configured, otherwise the pre-normalized bearer
// token verbatim, plus the configured Accept header. Nothing else.
func prepareRequest(cfg Config, method, url string, body []byte) *Request {
	header := make(http.Header)

	if cfg.Username != "" {
		credentials := cfg.Username + ":" + cfg.Password
		header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(credentials)))
	} else if cfg.OAuthToken != "" {
		header.Set("Authorization", cfg.OAuthToken)
	}

	header.Set("Accept", cfg.Accept)

	return &Request{
		Method: method,
		URL:    url,
		Header: header,
		Body:   body,
	}
}

// httpTransport implements Transport on top of net/http. The embedded
// client is configured for a single persistent connection to one host.
type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(opts clientOptions) *httpTransport {
	if opts.httpClient != nil {
		return &httpTransport{client: opts.httpClient}
	}

	// One connection, kept alive between requests. The Connection
	// issues requests sequentially, so one is all we need.
	return &httpTransport{
		client: &http.Client{
			Timeout: opts.timeout,
			Transport: &http.Transport{
				MaxConnsPerHost:     1,
				MaxIdleConnsPerHost: 1,
			},
		},
	}
}

// Send performs the exchange and reads the body to completion.
func (t *httpTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Close drops the persistent connection.
func (t *httpTransport) Close() {
	t.client.CloseIdleConnections()
}
