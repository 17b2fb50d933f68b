package analyzer

import (
	"unicode/utf8"

	"github.com/verte-zerg/hemingway/internal/model"
)

// AnalyzeSentence counts characters, letters, words and highlights in one
// sentence. Adverbs and passive forms count once per occurrence; each weak
// phrase counts at most once.
func (a *Analyzer) AnalyzeSentence(sentence string) model.SentenceStats {
	tokens := tokenize(sentence)
	stats := model.SentenceStats{
		Characters: utf8.RuneCountInString(sentence),
		Words:      len(tokens),
		Sentences:  1,
	}
	for _, tok := range tokens {
		stats.Letters += utf8.RuneCountInString(tok)
		if a.lex.IsAdverb(tok) {
			stats.Highlights.Adverbs++
		}
		if _, ok := a.lex.PassiveRoot(tok); ok {
			stats.Highlights.PassiveVoices++
		}
	}
	stats.Highlights.Qualifiers = len(matchPhrases(a.matchers, sentence))
	return stats
}

// Qualifiers returns the distinct weak phrases found in a sentence.
func (a *Analyzer) Qualifiers(sentence string) []string {
	return matchPhrases(a.matchers, sentence)
}
