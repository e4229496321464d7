//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory_ValidValues(t *testing.T) {
	for _, name := range []string{"House Help", "Gardener", "Cook", "Driver", "Nanny"} {
		got, err := ParseCategory(name)
		require.NoError(t, err, "ParseCategory(%q)", name)
		assert.Equal(t, name, string(got))
		assert.True(t, got.IsValid())
	}
}

func TestParseCategory_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty string", ""},
		{"Unknown role", "Plumber"},
		{"Wrong casing", "cook"},
		{"Underscore variant", "House_Help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCategory(tt.input)
			assert.Error(t, err)
			assert.False(t, Category(tt.input).IsValid())
		})
	}
}

func TestCategoryNames_MatchesCategories(t *testing.T) {
	names := CategoryNames()
	cats := Categories()
	require.Len(t, names, len(cats))
	for i, c := range cats {
		assert.Equal(t, string(c), names[i])
	}
}
