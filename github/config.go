package github

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

// Default connection parameters for the public GitHub API.
const (
	DefaultBaseURL = "https://api.github.com"
	DefaultAccept  = "application/vnd.github.v3+json"
)

// baseURLPattern matches scheme://host with no path segment. Host may
// carry an explicit port.
var baseURLPattern = regexp.MustCompile(`^([a-z][a-z0-9+.-]*)://([^/\s]+)$`)

// Config holds the connection parameters for a Connection. The zero
// value is usable: defaults are applied and the token is normalized
// once when the Config is passed to Connect.
type Config struct {
	// BaseURL is the root address prepended to every relative API
	// path. Must be scheme://host with no trailing slash or path.
	// Defaults to DefaultBaseURL.
	BaseURL string

	// Username and Password select HTTP Basic authentication when
	// Username is non-empty. Password may be empty.
	Username string
	Password string

	// OAuthToken is a bearer credential, used only when Username is
	// empty. Normalized to carry a "bearer " prefix.
	OAuthToken string

	// Accept is sent as the Accept header on every request. Defaults
	// to DefaultAccept.
	Accept string

	// DryRun is preserved for interface compatibility with existing
	// configuration files. The Connection itself never consults it.
	DryRun bool
}

// normalized returns a copy with defaults applied and the token
// bearer-prefixed. Normalization happens exactly once, at Connect time.
func (c Config) normalized() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Accept == "" {
		c.Accept = DefaultAccept
	}
	c.OAuthToken = normalizeToken(c.OAuthToken)
	return c
}

// normalizeToken prefixes token with "bearer " unless it already
// carries the prefix. Idempotent.
func normalizeToken(token string) string {
	if token == "" || strings.HasPrefix(token, "bearer ") {
		return token
	}
	return "bearer " + token
}

// endpoint is the transport-level view of a validated base URL.
type endpoint struct {
	scheme   string
	host     string
	hostPort string
	secure   bool
}

// parseBaseURL validates raw against the scheme://host pattern and maps
// the scheme to transport parameters: http uses port 80 without
// encryption, https uses port 443 with TLS, anything else is rejected.
// An explicit port in the host takes precedence over the scheme default.
func parseBaseURL(raw string) (endpoint, error) {
	m := baseURLPattern.FindStringSubmatch(raw)
	if m == nil {
		return endpoint{}, &Error{
			Kind:    KindMalformedConfig,
			Message: fmt.Sprintf("malformed base URL %q: expected scheme://host", raw),
		}
	}

	scheme, host := m[1], m[2]

	var port string
	var secure bool
	switch scheme {
	case "http":
		port = "80"
	case "https":
		port = "443"
		secure = true
	default:
		return endpoint{}, &Error{
			Kind:    KindUnsupportedProtocol,
			Message: fmt.Sprintf("protocol not supported: %q", scheme),
		}
	}

	hostPort := host
	if _, _, err := net.SplitHostPort(host); err != nil {
		hostPort = net.JoinHostPort(host, port)
	}

	return endpoint{
		scheme:   scheme,
		host:     host,
		hostPort: hostPort,
		secure:   secure,
	}, nil
}
