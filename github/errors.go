package github

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates the error categories the client produces. Callers
// branch on the kind instead of parsing message text.
type Kind int

const (
	// KindMalformedConfig indicates a base URL that does not match the
	// scheme://host form.
	KindMalformedConfig Kind = iota + 1
	// KindUnsupportedProtocol indicates a base URL scheme other than
	// http or https.
	KindUnsupportedProtocol
	// KindNotFound indicates a 404 response.
	KindNotFound
	// KindUnexpectedStatus indicates a non-2xx, non-404 response.
	KindUnexpectedStatus
	// KindConnectionFailure indicates the session could not be
	// established or was lost mid-request.
	KindConnectionFailure
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMalformedConfig:
		return "malformed configuration"
	case KindUnsupportedProtocol:
		return "unsupported protocol"
	case KindNotFound:
		return "not found"
	case KindUnexpectedStatus:
		return "unexpected status"
	case KindConnectionFailure:
		return "connection failure"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by this package. StatusCode
// is set for KindNotFound and KindUnexpectedStatus; Err carries the
// underlying cause for KindConnectionFailure.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsMalformedConfig reports whether err is a malformed base URL error.
func IsMalformedConfig(err error) bool {
	return hasKind(err, KindMalformedConfig)
}

// IsUnsupportedProtocol reports whether err is an unsupported scheme error.
func IsUnsupportedProtocol(err error) bool {
	return hasKind(err, KindUnsupportedProtocol)
}

// IsNotFound reports whether err represents a 404 response.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsUnexpectedStatus reports whether err represents a non-2xx, non-404
// response.
func IsUnexpectedStatus(err error) bool {
	return hasKind(err, KindUnexpectedStatus)
}

// IsConnectionFailure reports whether err represents a transport-level
// failure.
func IsConnectionFailure(err error) bool {
	return hasKind(err, KindConnectionFailure)
}

func hasKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// interpretStatus turns a response status into the package error
// taxonomy. It is the single chokepoint shared by Get, Post, and Patch:
// 404 maps to KindNotFound, any 2xx is success, everything else is
// KindUnexpectedStatus with the numeric code embedded in the message.
func interpretStatus(resp *Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &Error{
			Kind:       KindNotFound,
			StatusCode: resp.StatusCode,
			Message:    "resource not found",
		}
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return &Error{
			Kind:       KindUnexpectedStatus,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}
}
