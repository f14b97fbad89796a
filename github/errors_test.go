package github

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr func(error) bool
	}{
		{"200 is success", http.StatusOK, nil},
		{"201 is success", http.StatusCreated, nil},
		{"204 is success", http.StatusNoContent, nil},
		{"299 is success", 299, nil},
		{"404 is not found", http.StatusNotFound, IsNotFound},
		{"500 is unexpected", http.StatusInternalServerError, IsUnexpectedStatus},
		{"301 is unexpected", http.StatusMovedPermanently, IsUnexpectedStatus},
		{"401 is unexpected", http.StatusUnauthorized, IsUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := interpretStatus(&Response{StatusCode: tt.status})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, tt.wantErr(err))
		})
	}

	t.Run("unexpected status message carries the code", func(t *testing.T) {
		err := interpretStatus(&Response{StatusCode: 500})
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("status code is exposed on the error", func(t *testing.T) {
		var apiErr *Error
		require.ErrorAs(t, interpretStatus(&Response{StatusCode: 502}), &apiErr)
		assert.Equal(t, 502, apiErr.StatusCode)
	})
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &Error{
		Kind:    KindConnectionFailure,
		Message: "connection to x:443 failed",
		Err:     cause,
	}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, IsConnectionFailure(fmt.Errorf("connect: %w", err)))
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindMalformedConfig, "malformed configuration"},
		{KindUnsupportedProtocol, "unsupported protocol"},
		{KindNotFound, "not found"},
		{KindUnexpectedStatus, "unexpected status"},
		{KindConnectionFailure, "connection failure"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}
