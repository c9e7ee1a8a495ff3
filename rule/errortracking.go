// Package rule implements the error-tracking detection rule: it decides from
// a project's composer.json and a fixed list of designated source files
// whether exception-reporting instrumentation is present.
package rule

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/phpaudit/error-tracking-analysis/composer"
	"github.com/phpaudit/error-tracking-analysis/config"
	"github.com/phpaudit/error-tracking-analysis/scanner"
)

const (
	noServiceMessage = "No error tracking service detected"

	noServiceRecommendation = "Consider installing an error tracking SDK such as Sentry " +
		"(sentry/sentry-laravel) to get production error visibility for unhandled exceptions."
)

// ErrorTrackingRule checks a project for error-tracking instrumentation.
// One instance performs one analysis run; instances over different projects
// are independent and safe to run in parallel.
type ErrorTrackingRule struct {
	cfg      config.Config
	patterns []Pattern
	scan     *scanner.Scanner

	// Verbose enables progress output on stdout.
	Verbose bool
}

// New creates a rule instance from the given configuration.
func New(cfg config.Config) *ErrorTrackingRule {
	return &ErrorTrackingRule{
		cfg:      cfg,
		patterns: DefaultPatterns(),
		scan:     scanner.New(cfg.MaxFileSize),
	}
}

// Analyze runs the rule against the project rooted at projectRoot. It never
// returns an error: every outcome, including a missing or broken manifest,
// is expressed as a Result. Re-running on unchanged inputs yields an equal
// Result.
func (r *ErrorTrackingRule) Analyze(projectRoot string) Result {
	manifest, err := composer.Load(projectRoot)
	if errors.Is(err, composer.ErrManifestNotFound) {
		r.logf("No %s found, skipping\n", composer.ManifestFile)
		return Result{Status: Skipped}
	}
	if err != nil {
		return Result{
			Status: Failed,
			Issues: []Issue{{
				Message:        fmt.Sprintf("The project manifest could not be read: %v", err),
				Severity:       SeverityError,
				Recommendation: "Fix the composer.json so it is valid JSON before re-running the analysis.",
			}},
		}
	}

	if matched := manifest.Matched(r.cfg.KnownPackages); len(matched) > 0 {
		r.logf("Found error tracking package(s) in %s: %s\n",
			composer.ManifestFile, strings.Join(matched, ", "))
		return Result{Status: Passed, Evidence: matched}
	}

	// Manifest evidence was inconclusive; fall back to scanning the
	// designated source files. The first positive match wins and no further
	// files are read.
	for _, rel := range r.cfg.SourceFiles {
		unit, ok := r.scan.LoadUnit(filepath.Join(projectRoot, rel))
		if !ok {
			continue
		}
		r.logf("Scanning %s...\n", rel)

		if label, found := r.matchUnit(unit); found {
			r.logf("Found %s usage in %s\n", label, rel)
			return Result{Status: Passed, Evidence: []string{label}}
		}
	}

	return Result{
		Status: Warning,
		Issues: []Issue{{
			Message:        noServiceMessage,
			Severity:       SeverityWarning,
			Recommendation: noServiceRecommendation,
		}},
	}
}

// matchUnit tests every catalog pattern against the unit's live code and
// returns the label of the first hit.
func (r *ErrorTrackingRule) matchUnit(unit *scanner.SourceUnit) (string, bool) {
	spans := r.scan.Spans(unit)

	for _, p := range r.patterns {
		offsets := r.scan.FindLive(p.Expr, unit)
		if len(offsets) == 0 {
			continue
		}

		if !p.Hook {
			return p.Label, true
		}

		// A lifecycle override only counts when its body does real work.
		for _, off := range offsets {
			if hookBodyNonTrivial(unit.Content, spans, off) {
				return p.Label, true
			}
		}
	}

	return "", false
}

// parentDelegation matches a bare forward to the framework's default report
// behavior, e.g. "parent::report($exception);".
var parentDelegation = regexp.MustCompile(`(?:return\s+)?parent::report\s*\([^()]*\)\s*;?`)

// hookBodyNonTrivial reports whether the hook whose signature match starts
// at off has a body containing more than a sole delegation to the parent
// behavior. Braces are matched over live-code offsets only, so braces in
// comments or string literals cannot unbalance the walk.
func hookBodyNonTrivial(src string, spans []scanner.Span, off int) bool {
	open := -1
	depth := 0
	bodyEnd := len(src)

scan:
	for i := off; i < len(src); i++ {
		if scanner.KindAt(spans, i) != scanner.LiveCode {
			continue
		}
		switch src[i] {
		case '{':
			if open < 0 {
				open = i
			}
			depth++
		case '}':
			if open < 0 {
				continue
			}
			depth--
			if depth == 0 {
				bodyEnd = i
				break scan
			}
		case ';':
			// A ';' before any '{' means an abstract or interface
			// declaration: there is no body to inspect.
			if open < 0 {
				return false
			}
		}
	}

	if open < 0 {
		// Signature with no body in this unit (interface or abstract
		// declaration); no evidence either way.
		return false
	}

	body := scanner.LiveTextRange(src, spans, open+1, bodyEnd)
	body = parentDelegation.ReplaceAllString(body, "")
	return strings.TrimSpace(body) != ""
}

func (r *ErrorTrackingRule) logf(format string, args ...any) {
	if r.Verbose {
		fmt.Printf(format, args...)
	}
}
