package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Contains(t, cfg.KnownPackages, "sentry/sentry-laravel")
	require.Contains(t, cfg.SourceFiles, "app/Exceptions/Handler.php")
	require.Contains(t, cfg.SourceFiles, "config/logging.php")
	require.Equal(t, int64(1<<20), cfg.MaxFileSize)
}

func TestLoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("known_packages:\n  - acme/error-reporter\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, []string{"acme/error-reporter"}, cfg.KnownPackages)
	// Unset fields fall back to the defaults.
	require.Equal(t, Default().SourceFiles, cfg.SourceFiles)
	require.Equal(t, Default().MaxFileSize, cfg.MaxFileSize)
}

func TestLoadKeepsExplicitlyEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("known_packages: []\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// An empty catalog is valid: manifest-side detection can then never
	// pass and the rule relies on source scanning alone.
	require.NotNil(t, cfg.KnownPackages)
	require.Empty(t, cfg.KnownPackages)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.yaml")
	require.NoError(t, os.WriteFile(path, []byte("known_packages: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]any{
		"known_packages": []any{"acme/error-reporter", 42, "other/sdk"},
		"max_file_size":  4096,
	})

	require.Equal(t, []string{"acme/error-reporter", "other/sdk"}, cfg.KnownPackages)
	require.Equal(t, int64(4096), cfg.MaxFileSize)
	require.Equal(t, Default().SourceFiles, cfg.SourceFiles)
}

func TestFromMapEmpty(t *testing.T) {
	require.Equal(t, Default(), FromMap(map[string]any{}))
}
