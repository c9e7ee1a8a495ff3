package rule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPatternsCoverKnownIdioms(t *testing.T) {
	cases := []struct {
		label string
		code  string
	}{
		{"Sentry", `\Sentry\captureException($e);`},
		{"Sentry", `Sentry\captureMessage('boom');`},
		{"Sentry", `Sentry::captureException($e);`},
		{"Sentry", `app('sentry')->captureException($e);`},
		{"Bugsnag", `Bugsnag::notifyException($e);`},
		{"Bugsnag", `Bugsnag::notifyError('type', 'message');`},
		{"Honeybadger", `Honeybadger::notify($e);`},
		{"Rollbar", `Rollbar::error('oops');`},
		{"Airbrake", `new \Airbrake\Notifier($options);`},
		{"Flare", `Flare::report($e);`},
		{"error tracking client", `$this->client->captureException($e);`},
	}

	patterns := DefaultPatterns()

	for _, tc := range cases {
		matched := ""
		for _, p := range patterns {
			if p.Hook {
				continue
			}
			if p.Expr.MatchString(tc.code) {
				matched = p.Label
				break
			}
		}
		require.Equal(t, tc.label, matched, "code %q", tc.code)
	}
}

func TestHookPatternIsDeclaredAsHook(t *testing.T) {
	var hooks int
	for _, p := range DefaultPatterns() {
		if !p.Hook {
			continue
		}
		hooks++
		require.True(t, p.Expr.MatchString("public function report(Throwable $exception)"))
	}
	require.Equal(t, 1, hooks)
}
