package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealdeck/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, []string{"a", "b"}, cfg.Seeds())
	assert.Len(t, cfg.Letters(), 26)
	assert.Equal(t, domain.SortRelevance, cfg.Sort())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.DefaultArea = "Indian"
	cfg.DefaultSort = string(domain.SortAlphaAsc)
	cfg.RequestTimeout = Duration{15 * time.Second}
	cfg.FetchConcurrency = 4
	cfg.ComposeSearch = true

	require.NoError(t, svc.Save(cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "version = 1")
	assert.Contains(t, string(raw), "request_timeout")
	assert.Contains(t, string(raw), "15s")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_area = \"Italian\"\n[ui]\nshow_area = false\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Italian", cfg.DefaultArea)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.False(t, cfg.UISettings.ShowArea)
	assert.True(t, cfg.UISettings.ShowRatings)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad duration", "request_timeout = \"soon\""},
		{"empty alphabet", "alphabet = \"\""},
		{"negative concurrency", "fetch_concurrency = -2"},
		{"not toml", "version = ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := NewConfigServiceAt(path).Load()
			assert.Error(t, err)
		})
	}
}

func TestLettersAreDeduplicatedAndLowercased(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SeedLetters = "A, b, a"
	assert.Equal(t, []string{"a", "b"}, cfg.Seeds())
}
