package rule

import "regexp"

// Pattern is one capability-indicating search expression plus the vendor
// label used in reports. Hook patterns name a framework lifecycle override
// whose mere presence is not enough: the override body must do more than
// delegate to the parent behavior.
type Pattern struct {
	Label string
	Expr  *regexp.Regexp
	Hook  bool
}

// DefaultPatterns is the catalog of known SDK invocation idioms searched for
// in designated source files. The catalog is ordered, read-only and shared
// across runs. Expressions stick to bounded quantifiers so no input can
// trigger catastrophic backtracking.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Label: "Sentry", Expr: regexp.MustCompile(`(?:\\)?Sentry\\capture(?:Exception|Message|LastError)\s*\(`)},
		{Label: "Sentry", Expr: regexp.MustCompile(`Sentry::capture(?:Exception|Message)\s*\(`)},
		{Label: "Sentry", Expr: regexp.MustCompile(`app\(\s*.sentry.\s*\)\s*->\s*capture(?:Exception|Message)\s*\(`)},
		{Label: "Bugsnag", Expr: regexp.MustCompile(`Bugsnag::notify(?:Exception|Error)\s*\(`)},
		{Label: "Honeybadger", Expr: regexp.MustCompile(`Honeybadger::notify\s*\(`)},
		{Label: "Rollbar", Expr: regexp.MustCompile(`Rollbar::(?:log|debug|info|warning|error|critical)\s*\(`)},
		{Label: "Airbrake", Expr: regexp.MustCompile(`(?:\\)?Airbrake\\Notifier`)},
		{Label: "Flare", Expr: regexp.MustCompile(`Flare::report\s*\(`)},
		{Label: "error tracking client", Expr: regexp.MustCompile(`->\s*(?:captureException|notifyException)\s*\(`)},
		{Label: "exception handler report() override", Hook: true, Expr: regexp.MustCompile(`function\s+report\s*\(`)},
	}
}
