package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	require.NotEmpty(t, cat)

	seen := make(map[string]bool)
	for _, p := range cat {
		assert.NotEmpty(t, p.Key)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.ImagesFolderID)
		assert.NotEmpty(t, p.VideosFolderID)
		assert.False(t, seen[p.Key], "duplicate key %q", p.Key)
		seen[p.Key] = true
	}
}

func TestLookup(t *testing.T) {
	cat := Default()

	p, ok := cat.Lookup("rise-up")
	require.True(t, ok)
	assert.Equal(t, "Rise Up", p.Name)

	_, ok = cat.Lookup("unknown")
	assert.False(t, ok)
}

func TestKeysPreserveOrder(t *testing.T) {
	cat := Catalog{
		{Key: "b"},
		{Key: "a"},
		{Key: "c"},
	}
	assert.Equal(t, []string{"b", "a", "c"}, cat.Keys())
}
