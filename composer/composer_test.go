package composer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ManifestFile), []byte(content), 0o644))
	return root
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrManifestNotFound)
}

func TestLoadMalformedManifest(t *testing.T) {
	root := writeManifest(t, `{"require": `)

	_, err := Load(root)
	require.Error(t, err)
	// A broken manifest and a missing one must never be conflated.
	require.NotErrorIs(t, err, ErrManifestNotFound)
}

func TestLoadValidManifest(t *testing.T) {
	root := writeManifest(t, `{
		"require": {"php": "^8.1", "laravel/framework": "^10.0"},
		"require-dev": {"phpunit/phpunit": "^10.0"}
	}`)

	m, err := Load(root)
	require.NoError(t, err)
	require.Equal(t, "^10.0", m.Require["laravel/framework"])
	require.Equal(t, "^10.0", m.RequireDev["phpunit/phpunit"])
}

func TestParseEmptyObject(t *testing.T) {
	m, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	require.False(t, m.Has("sentry/sentry"))
	require.Empty(t, m.Matched([]string{"sentry/sentry"}))
}

func TestHas(t *testing.T) {
	m := &Manifest{
		Require:    map[string]string{"sentry/sentry-laravel": "^4.0"},
		RequireDev: map[string]string{"bugsnag/bugsnag": "^3.0"},
	}

	require.True(t, m.Has("sentry/sentry-laravel"))
	// Dev-only declarations count as evidence.
	require.True(t, m.Has("bugsnag/bugsnag"))
	require.False(t, m.Has("rollbar/rollbar"))
	// Matching is case-sensitive and exact.
	require.False(t, m.Has("Sentry/sentry-laravel"))
	require.False(t, m.Has("sentry/sentry"))
}

func TestMatchedKeepsCatalogOrder(t *testing.T) {
	m := &Manifest{
		Require:    map[string]string{"rollbar/rollbar": "^4.0"},
		RequireDev: map[string]string{"sentry/sentry": "^4.0"},
	}

	catalog := []string{"sentry/sentry", "bugsnag/bugsnag", "rollbar/rollbar"}
	require.Equal(t, []string{"sentry/sentry", "rollbar/rollbar"}, m.Matched(catalog))
}
