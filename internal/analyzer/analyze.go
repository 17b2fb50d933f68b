// Package analyzer scores prose for readability and flags weak writing.
//
// An Analyzer is immutable once built and safe for concurrent use. Empty or
// whitespace-only input yields a result with zero paragraphs and zero stats.
package analyzer

import (
	"github.com/verte-zerg/hemingway/internal/lexicon"
	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/segment"
)

// Analyzer runs the analysis pipeline against one lexicon.
type Analyzer struct {
	lex      *lexicon.Lexicon
	matchers []phraseMatcher
}

var defaultAnalyzer = New(lexicon.Default())

// New builds an Analyzer for the lexicon, compiling its phrase matchers once.
func New(lex *lexicon.Lexicon) *Analyzer {
	phrases := lex.WeakPhrases()
	matchers := make([]phraseMatcher, 0, len(phrases))
	for _, phrase := range phrases {
		matchers = append(matchers, newPhraseMatcher(phrase))
	}
	return &Analyzer{lex: lex, matchers: matchers}
}

// Default returns the analyzer for the built-in lexicon.
func Default() *Analyzer {
	return defaultAnalyzer
}

// Analyze runs the default analyzer.
func Analyze(text string, settings model.Settings) model.AnalysisResult {
	return defaultAnalyzer.Analyze(text, settings)
}

// Analyze splits text into paragraphs and sentences, counts highlights and
// scores the whole text.
func (a *Analyzer) Analyze(text string, settings model.Settings) model.AnalysisResult {
	paragraphs := segment.Split(text, segment.Paragraph)
	paragraphStats := make([]model.ParagraphStats, 0, len(paragraphs))
	for _, p := range paragraphs {
		paragraphStats = append(paragraphStats, a.FoldParagraph(p))
	}
	return model.AnalysisResult{
		Stats:          Score(FoldText(paragraphStats), settings.Target()),
		Paragraphs:     paragraphs,
		ParagraphStats: paragraphStats,
		Text:           text,
	}
}
