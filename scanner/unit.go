package scanner

import (
	"os"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
)

// spanCacheSize bounds the per-run classification cache. A rule inspects a
// handful of designated files, so this is generous.
const spanCacheSize = 64

// SourceUnit is a designated file's path plus its raw text. Units are read
// once and never mutated.
type SourceUnit struct {
	Path    string
	Content string
}

// Scanner classifies source units and caches the resulting spans for the
// duration of one analysis run, so each unit is classified at most once.
type Scanner struct {
	maxFileSize int64
	spans       *lru.Cache[string, []Span]
}

// New creates a scanner. maxFileSize caps how large a source unit may be
// before it is ignored; zero or negative disables the ceiling.
func New(maxFileSize int64) *Scanner {
	cache, err := lru.New[string, []Span](spanCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}
	return &Scanner{maxFileSize: maxFileSize, spans: cache}
}

// LoadUnit reads a designated file. A missing file is not an error: it
// simply contributes no evidence, as does a file over the size ceiling.
func (s *Scanner) LoadUnit(path string) (*SourceUnit, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, false
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	return &SourceUnit{Path: path, Content: string(content)}, true
}

// Spans returns the classified spans of a unit, computing them on first use
// and serving the cached partition afterwards.
func (s *Scanner) Spans(unit *SourceUnit) []Span {
	if cached, ok := s.spans.Get(unit.Path); ok {
		return cached
	}
	spans := Classify(unit.Content)
	s.spans.Add(unit.Path, spans)
	return spans
}

// FindLive returns the live-code start offsets of re within the unit.
func (s *Scanner) FindLive(re *regexp.Regexp, unit *SourceUnit) []int {
	return FindLiveIn(re, unit.Content, s.Spans(unit))
}

// OccursLive reports whether re matches the unit at a live-code offset.
func (s *Scanner) OccursLive(re *regexp.Regexp, unit *SourceUnit) bool {
	return len(s.FindLive(re, unit)) > 0
}
