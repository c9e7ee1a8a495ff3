// Package scanner classifies raw PHP source text into live code, comments,
// docblocks and string literals, so that pattern searches can ignore
// occurrences inside disabled or documented-only code.
package scanner

import (
	"regexp"
	"sort"
	"strings"
)

// SpanKind identifies what a classified region of source text contains.
type SpanKind int

const (
	LiveCode SpanKind = iota
	LineComment
	BlockComment
	DocBlock
	StringLiteral
)

func (k SpanKind) String() string {
	switch k {
	case LiveCode:
		return "live"
	case LineComment:
		return "line-comment"
	case BlockComment:
		return "block-comment"
	case DocBlock:
		return "docblock"
	case StringLiteral:
		return "string"
	default:
		return "unknown"
	}
}

// Span is a classified region of source text. Start is inclusive, End is
// exclusive. The spans returned by Classify partition the text exactly:
// no overlap, no gaps.
type Span struct {
	Kind  SpanKind
	Start int
	End   int
}

// Classify walks the source once, left to right, keeping a single
// current-mode state. Block and doc comments do not nest; an opener seen
// inside a non-live span is inert text. An unterminated span extends to the
// end of the text.
func Classify(src string) []Span {
	var spans []Span
	n := len(src)
	i := 0

	for i < n {
		start := i

		switch {
		case isLineCommentOpener(src, i):
			// The comment ends before the newline; the newline itself
			// belongs to the following live span.
			if j := strings.IndexByte(src[i:], '\n'); j >= 0 {
				i += j
			} else {
				i = n
			}
			spans = append(spans, Span{Kind: LineComment, Start: start, End: i})

		case strings.HasPrefix(src[i:], "/*"):
			kind := BlockComment
			// "/**" opens a docblock, except the degenerate empty "/**/".
			if i+2 < n && src[i+2] == '*' && !(i+3 < n && src[i+3] == '/') {
				kind = DocBlock
			}
			if j := strings.Index(src[i+2:], "*/"); j >= 0 {
				i += 2 + j + 2
			} else {
				i = n
			}
			spans = append(spans, Span{Kind: kind, Start: start, End: i})

		case src[i] == '\'' || src[i] == '"':
			quote := src[i]
			j := i + 1
			for j < n {
				if src[j] == '\\' {
					// A quote behind an odd run of backslashes is escaped.
					j += 2
					continue
				}
				if src[j] == quote {
					j++
					break
				}
				j++
			}
			if j > n {
				j = n
			}
			spans = append(spans, Span{Kind: StringLiteral, Start: start, End: j})
			i = j

		default:
			j := i
			for j < n && !opensSpan(src, j) {
				j++
			}
			spans = append(spans, Span{Kind: LiveCode, Start: start, End: j})
			i = j
		}
	}

	return spans
}

// isLineCommentOpener recognizes "//" and PHP's "#". A "#[" sequence is an
// attribute, not a comment, and stays live.
func isLineCommentOpener(src string, i int) bool {
	if strings.HasPrefix(src[i:], "//") {
		return true
	}
	if src[i] == '#' && !(i+1 < len(src) && src[i+1] == '[') {
		return true
	}
	return false
}

func opensSpan(src string, i int) bool {
	switch src[i] {
	case '/':
		return i+1 < len(src) && (src[i+1] == '/' || src[i+1] == '*')
	case '#':
		return !(i+1 < len(src) && src[i+1] == '[')
	case '\'', '"':
		return true
	}
	return false
}

// KindAt returns the kind of the span containing the given byte offset.
// Spans must be the exact partition produced by Classify.
func KindAt(spans []Span, offset int) SpanKind {
	idx := sort.Search(len(spans), func(i int) bool {
		return spans[i].End > offset
	})
	if idx < len(spans) && spans[idx].Start <= offset {
		return spans[idx].Kind
	}
	return LiveCode
}

// FindLiveIn returns the start offsets of every raw match of re whose start
// offset falls in a live-code span. A match that begins in live code but
// whose text runs into a trailing comment is still accepted: only the start
// offset is classified. That keeps the check single-pass and offset-only and
// favors recall for calls with trailing comments; it is intentional.
func FindLiveIn(re *regexp.Regexp, src string, spans []Span) []int {
	var offsets []int
	for _, m := range re.FindAllStringIndex(src, -1) {
		if KindAt(spans, m[0]) == LiveCode {
			offsets = append(offsets, m[0])
		}
	}
	return offsets
}

// OccursLive reports whether re matches the source at a live-code offset.
func OccursLive(re *regexp.Regexp, src string) bool {
	return len(FindLiveIn(re, src, Classify(src))) > 0
}

// LiveText returns the live-code bytes of the source, with all comment,
// docblock and string-literal spans removed.
func LiveText(src string) string {
	return LiveTextRange(src, Classify(src), 0, len(src))
}

// LiveTextRange concatenates the live-code bytes that fall inside
// [from, to).
func LiveTextRange(src string, spans []Span, from, to int) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Kind != LiveCode || s.End <= from || s.Start >= to {
			continue
		}
		lo, hi := s.Start, s.End
		if lo < from {
			lo = from
		}
		if hi > to {
			hi = to
		}
		b.WriteString(src[lo:hi])
	}
	return b.String()
}
