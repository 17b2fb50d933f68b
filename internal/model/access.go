package model

import (
	"strconv"
	"strings"
)

// Map returns the highlight counters keyed by their serialized names.
func (h Highlights) Map() map[string]any {
	return map[string]any{
		"adverbs":             h.Adverbs,
		"complex_words":       h.ComplexWords,
		"grammar_issues":      h.GrammarIssues,
		"hard_sentences":      h.HardSentences,
		"passive_voices":      h.PassiveVoices,
		"qualifiers":          h.Qualifiers,
		"very_hard_sentences": h.VeryHardSentences,
	}
}

// Map returns the paragraph stats keyed by their serialized names.
func (p ParagraphStats) Map() map[string]any {
	return map[string]any{
		"characters":    p.Characters,
		"letters":       p.Letters,
		"words":         p.Words,
		"sentences":     p.Sentences,
		"highlights":    p.Highlights.Map(),
		"reading_level": p.ReadingLevel,
	}
}

// Map returns the text stats keyed by their serialized names.
func (s TextStats) Map() map[string]any {
	return map[string]any{
		"characters":           s.Characters,
		"letters":              s.Letters,
		"words":                s.Words,
		"sentences":            s.Sentences,
		"paragraphs":           s.Paragraphs,
		"highlights":           s.Highlights.Map(),
		"reading_level":        s.ReadingLevel,
		"readability":          string(s.Readability),
		"reading_time_in_secs": s.ReadingTimeInSecs,
	}
}

// Map returns the result as nested maps and slices, for callers that index
// by key instead of by field.
func (r AnalysisResult) Map() map[string]any {
	paragraphs := make([]any, len(r.Paragraphs))
	for i, p := range r.Paragraphs {
		paragraphs[i] = p
	}
	paragraphStats := make([]any, len(r.ParagraphStats))
	for i, p := range r.ParagraphStats {
		paragraphStats[i] = p.Map()
	}
	return map[string]any{
		"stats":           r.Stats.Map(),
		"paragraphs":      paragraphs,
		"paragraph_stats": paragraphStats,
		"text":            r.Text,
	}
}

// Lookup resolves a dotted path such as "stats.highlights.adverbs" or
// "paragraphs.0" against the result.
func (r AnalysisResult) Lookup(path string) (any, bool) {
	var cur any = r.Map()
	if strings.TrimSpace(path) == "" {
		return cur, true
	}
	for _, key := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}
