package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedCatalog(t *testing.T) {
	path := writeCatalog(t, `
categories:
  - name: Music
    description: Live shows
  - name: Art
`)
	catalog, err := LoadSeedCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Categories, 2)
	assert.Equal(t, "Music", catalog.Categories[0].Name)
	assert.Equal(t, "Live shows", catalog.Categories[0].Description)
	assert.Empty(t, catalog.Categories[1].Description)
}

func TestLoadSeedCatalog_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty", "categories: []", "no categories defined"},
		{"missing name", "categories:\n  - description: x", "name is required"},
		{"duplicate name", "categories:\n  - name: Music\n  - name: Music", "duplicate name"},
		{"name too long", "categories:\n  - name: " + strings.Repeat("x", 101), "name exceeds"},
		{"description too long", "categories:\n  - name: Music\n    description: " + strings.Repeat("x", 256), "description exceeds"},
		{"bad yaml", "categories: [", "parse seed catalog"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCatalog(t, tc.content)
			_, err := LoadSeedCatalog(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadSeedCatalog_MissingFile(t *testing.T) {
	_, err := LoadSeedCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
