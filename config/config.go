// Package config holds the rule configuration with compiled-in defaults and
// optional overrides from a YAML file or a plain nested mapping.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the error-tracking rule's configuration.
type Config struct {
	// KnownPackages are composer package names that satisfy the capability
	// when declared in require or require-dev. An empty list is valid and
	// forces the rule to rely on source scanning alone.
	KnownPackages []string `yaml:"known_packages"`

	// SourceFiles are the designated paths, relative to the project root,
	// inspected when manifest evidence is inconclusive. Each is optional.
	SourceFiles []string `yaml:"source_files"`

	// MaxFileSize caps how large a designated file may be before it is
	// skipped, bounding scanning cost.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// Default returns the compiled-in defaults.
func Default() Config {
	return Config{
		KnownPackages: []string{
			"sentry/sentry",
			"sentry/sentry-laravel",
			"bugsnag/bugsnag",
			"bugsnag/bugsnag-laravel",
			"honeybadger-io/honeybadger-php",
			"honeybadger-io/honeybadger-laravel",
			"rollbar/rollbar",
			"rollbar/rollbar-laravel",
			"airbrake/phpbrake",
			"spatie/flare-client-php",
		},
		SourceFiles: []string{
			"app/Exceptions/Handler.php",
			"config/logging.php",
			"bootstrap/app.php",
		},
		MaxFileSize: 1 << 20,
	}
}

// Load reads a YAML config from disk. Fields left empty fall back to the
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	mergeDefaults(&cfg)
	return cfg, nil
}

// FromMap builds a Config from the nested-mapping form handed over by
// embedding tools, e.g. {"known_packages": [...]}. Unknown keys are ignored;
// missing keys fall back to the defaults.
func FromMap(m map[string]any) Config {
	var cfg Config

	if raw, ok := m["known_packages"]; ok {
		cfg.KnownPackages = toStringSlice(raw)
	}
	if raw, ok := m["source_files"]; ok {
		cfg.SourceFiles = toStringSlice(raw)
	}
	switch v := m["max_file_size"].(type) {
	case int:
		cfg.MaxFileSize = int64(v)
	case int64:
		cfg.MaxFileSize = v
	case float64:
		cfg.MaxFileSize = int64(v)
	}

	mergeDefaults(&cfg)
	return cfg
}

func mergeDefaults(cfg *Config) {
	defaults := Default()

	if cfg.KnownPackages == nil {
		cfg.KnownPackages = defaults.KnownPackages
	}
	if len(cfg.SourceFiles) == 0 {
		cfg.SourceFiles = defaults.SourceFiles
	}
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = defaults.MaxFileSize
	}
}

func toStringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
