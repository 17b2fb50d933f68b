package analyzer

import (
	"sort"
	"strings"

	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/readability"
	"github.com/verte-zerg/hemingway/internal/segment"
)

// MarkKind names the weakness a mark points at.
type MarkKind string

// Mark kinds.
const (
	MarkAdverb    MarkKind = "adverb"
	MarkQualifier MarkKind = "qualifier"
	MarkPassive   MarkKind = "passive"
)

// Mark is a highlighted byte range [Start, End) in the annotated text.
type Mark struct {
	Start  int
	End    int
	Kind   MarkKind
	Phrase string
}

// SentenceMark is a sentence's byte range with its display difficulty.
type SentenceMark struct {
	Start        int
	End          int
	Words        int
	ReadingLevel int
	Class        readability.Class
}

// Annotation locates highlights inside a text for display.
type Annotation struct {
	Marks     []Mark
	Sentences []SentenceMark
}

// Count returns the number of marks of the given kind.
func (an Annotation) Count(kind MarkKind) int {
	n := 0
	for _, m := range an.Marks {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// Annotate finds the byte offsets of every adverb, passive form and weak
// phrase in text, and grades each sentence on its own. Sentence grades are
// for display only and do not feed the hard_sentences counters.
func (a *Analyzer) Annotate(text string, settings model.Settings) Annotation {
	target := settings.Target()
	var an Annotation
	for _, p := range segment.Spans(text, segment.Paragraph) {
		paragraph := p.Text(text)
		for _, s := range segment.Spans(paragraph, segment.Sentence) {
			start := p.Start + s.Start
			end := p.Start + s.End
			an.Marks = append(an.Marks, a.sentenceMarks(text[start:end], start)...)

			stats := a.AnalyzeSentence(text[start:end])
			level := readability.ReadingLevel(stats.Letters, stats.Words, 1)
			an.Sentences = append(an.Sentences, SentenceMark{
				Start:        start,
				End:          end,
				Words:        stats.Words,
				ReadingLevel: level,
				Class:        readability.Classify(level, stats.Words, target),
			})
		}
	}
	sort.SliceStable(an.Marks, func(i, j int) bool {
		return an.Marks[i].Start < an.Marks[j].Start
	})
	return an
}

func (a *Analyzer) sentenceMarks(sentence string, offset int) []Mark {
	var marks []Mark
	for _, loc := range tokenPattern.FindAllStringIndex(sentence, -1) {
		tok := strings.ToLower(sentence[loc[0]:loc[1]])
		if a.lex.IsAdverb(tok) {
			marks = append(marks, Mark{Start: offset + loc[0], End: offset + loc[1], Kind: MarkAdverb, Phrase: tok})
		}
		if _, ok := a.lex.PassiveRoot(tok); ok {
			marks = append(marks, Mark{Start: offset + loc[0], End: offset + loc[1], Kind: MarkPassive, Phrase: tok})
		}
	}
	for _, m := range a.matchers {
		locs := m.exact.findAll(sentence)
		if len(locs) == 0 && m.gapped != nil {
			locs = m.gapped.findAll(sentence)
		}
		for _, loc := range locs {
			marks = append(marks, Mark{Start: offset + loc[0], End: offset + loc[1], Kind: MarkQualifier, Phrase: m.phrase})
		}
	}
	return marks
}

// Phrases returns the distinct phrases of the marks of one kind.
func (an Annotation) Phrases(kind MarkKind) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, m := range an.Marks {
		if m.Kind != kind {
			continue
		}
		if _, ok := seen[m.Phrase]; ok {
			continue
		}
		seen[m.Phrase] = struct{}{}
		out = append(out, m.Phrase)
	}
	return out
}
