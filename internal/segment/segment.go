// Package segment splits prose into paragraphs, sentences and words.
package segment

import (
	"regexp"
	"strings"
	"unicode"
)

// Granularity selects the unit a text is split into.
type Granularity int

const (
	// Paragraph splits on runs of two or more newlines.
	Paragraph Granularity = iota
	// Sentence splits on runs of terminal punctuation.
	Sentence
	// Word splits on runs of whitespace.
	Word
)

// String implements fmt.Stringer.
func (g Granularity) String() string {
	switch g {
	case Paragraph:
		return "paragraph"
	case Sentence:
		return "sentence"
	case Word:
		return "word"
	default:
		return "unknown"
	}
}

var (
	paragraphDelimiter = regexp.MustCompile(`\n\n+`)
	sentenceDelimiter  = regexp.MustCompile(`[.!?]+\s*`)
	wordDelimiter      = regexp.MustCompile(`\s+`)
)

// Span is a half-open byte range [Start, End) inside the split text.
type Span struct {
	Start int
	End   int
}

// Text returns the slice of text covered by the span.
func (s Span) Text(text string) string {
	return text[s.Start:s.End]
}

func delimiterFor(g Granularity) *regexp.Regexp {
	switch g {
	case Paragraph:
		return paragraphDelimiter
	case Sentence:
		return sentenceDelimiter
	default:
		return wordDelimiter
	}
}

// Spans returns the byte ranges of the segments found between delimiters.
// Segments made only of whitespace are dropped.
func Spans(text string, g Granularity) []Span {
	var spans []Span
	start := 0
	for _, loc := range delimiterFor(g).FindAllStringIndex(text, -1) {
		spans = appendSpan(spans, text, start, loc[0])
		start = loc[1]
	}
	return appendSpan(spans, text, start, len(text))
}

func appendSpan(spans []Span, text string, start, end int) []Span {
	if strings.TrimSpace(text[start:end]) == "" {
		return spans
	}
	return append(spans, Span{Start: start, End: end})
}

// Split returns the segments of text at the given granularity. Paragraph and
// sentence segments that do not end in terminal punctuation get a trailing
// period so every unit downstream is sentence-terminated.
func Split(text string, g Granularity) []string {
	spans := Spans(text, g)
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		seg := sp.Text(text)
		if g != Word {
			seg = terminate(seg)
		}
		out = append(out, seg)
	}
	return out
}

func terminate(seg string) string {
	trimmed := strings.TrimRightFunc(seg, unicode.IsSpace)
	if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") {
		return seg
	}
	return trimmed + "."
}
