package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeItems(t *testing.T, data string) []any {
	t.Helper()
	var items []any
	require.NoError(t, json.Unmarshal([]byte(data), &items))
	return items
}

func TestCompile(t *testing.T) {
	t.Run("empty expression matches everything", func(t *testing.T) {
		f, err := Compile("   ")
		require.NoError(t, err)

		ok, err := f.Match(map[string]any{"a": 1.0})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := Compile("Item.stars >")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to compile")
	})
}

func TestMatch(t *testing.T) {
	items := decodeItems(t, `[
		{"name": "hubwire", "stargazers_count": 120, "fork": false, "updated_at": "2026-08-01T10:00:00Z"},
		{"name": "dotfiles", "stargazers_count": 3, "fork": false},
		{"name": "hubwire-fork", "stargazers_count": 150, "fork": true}
	]`)

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{
			name:       "numeric comparison",
			expression: "Item.stargazers_count > 100",
			want:       []string{"hubwire", "hubwire-fork"},
		},
		{
			name:       "boolean field",
			expression: "Item.stargazers_count > 100 && !Item.fork",
			want:       []string{"hubwire"},
		},
		{
			name:       "string helper",
			expression: `contains(str(Item.name), "HUB")`,
			want:       []string{"hubwire", "hubwire-fork"},
		},
		{
			name:       "has helper",
			expression: `has("updated_at")`,
			want:       []string{"hubwire"},
		},
		{
			name:       "no matches",
			expression: "Item.stargazers_count > 1000",
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Apply(items)
			require.NoError(t, err)

			names := []string{}
			for _, item := range matched {
				names = append(names, item.(map[string]any)["name"].(string))
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMatchNonBooleanResult(t *testing.T) {
	f, err := Compile("Item.stargazers_count")
	require.NoError(t, err)

	_, err = f.Match(map[string]any{"stargazers_count": 5.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must evaluate to a boolean")
}

func TestApplyPreservesOrder(t *testing.T) {
	items := decodeItems(t, `[{"n": 3}, {"n": 1}, {"n": 2}]`)

	f, err := Compile("Item.n >= 1")
	require.NoError(t, err)

	matched, err := f.Apply(items)
	require.NoError(t, err)
	require.Len(t, matched, 3)
	assert.Equal(t, 3.0, matched[0].(map[string]any)["n"])
	assert.Equal(t, 1.0, matched[1].(map[string]any)["n"])
	assert.Equal(t, 2.0, matched[2].(map[string]any)["n"])
}
