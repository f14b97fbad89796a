package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPageURL(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "empty header",
			header:   "",
			expected: "",
		},
		{
			name:     "single next entry",
			header:   `<https://api.github.com/user/repos?page=2>; rel="next"`,
			expected: "https://api.github.com/user/repos?page=2",
		},
		{
			name:     "next among multiple entries",
			header:   `<https://api.github.com/user/repos?page=2>; rel="next", <https://api.github.com/user/repos?page=5>; rel="last"`,
			expected: "https://api.github.com/user/repos?page=2",
		},
		{
			name:     "next after other relations",
			header:   `<https://api.github.com/user/repos?page=1>; rel="prev", <https://api.github.com/user/repos?page=3>; rel="next"`,
			expected: "https://api.github.com/user/repos?page=3",
		},
		{
			name:     "no next on last page",
			header:   `<https://api.github.com/user/repos?page=1>; rel="first", <https://api.github.com/user/repos?page=4>; rel="prev"`,
			expected: "",
		},
		{
			name:     "whitespace around separator",
			header:   `<https://example.com/p2> ;  rel="next"`,
			expected: "https://example.com/p2",
		},
		{
			name:     "rel without quotes is not matched",
			header:   `<https://example.com/p2>; rel=next`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextPageURL(tt.header))
		})
	}
}
