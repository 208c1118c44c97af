package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestParseMergesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("strict_lexing: true\nmax_nesting: 8\n"))
	require.NoError(t, err)

	assert.True(t, cfg.StrictLexing)
	assert.Equal(t, 8, cfg.MaxNesting)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 128, cfg.BodyCacheSize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("promt: '? '\n"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []string{
		"max_nesting: -1\n",
		"body_cache_size: -5\n",
		"log_level: ruidoso\n",
	}

	for _, doc := range tests {
		t.Run(doc, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pseudocode.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: '? '\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "? ", cfg.Prompt)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
