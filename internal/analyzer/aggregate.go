package analyzer

import (
	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/readability"
	"github.com/verte-zerg/hemingway/internal/segment"
)

// FoldParagraph analyzes every sentence of a paragraph and sums the results.
// The sentence count is the number of sentence segments.
func (a *Analyzer) FoldParagraph(paragraph string) model.ParagraphStats {
	sentences := segment.Split(paragraph, segment.Sentence)
	stats := model.ParagraphStats{Sentences: len(sentences)}
	for _, sentence := range sentences {
		s := a.AnalyzeSentence(sentence)
		stats.Characters += s.Characters
		stats.Letters += s.Letters
		stats.Words += s.Words
		stats.Highlights = stats.Highlights.Add(s.Highlights)
	}
	stats.ReadingLevel = readability.ReadingLevel(stats.Letters, stats.Words, stats.Sentences)
	return stats
}

// FoldText sums paragraph stats into text totals. Scoring fields are left
// zero; see Score.
func FoldText(paragraphs []model.ParagraphStats) model.TextStats {
	stats := model.TextStats{Paragraphs: len(paragraphs)}
	for _, p := range paragraphs {
		stats.Characters += p.Characters
		stats.Letters += p.Letters
		stats.Words += p.Words
		stats.Sentences += p.Sentences
		stats.Highlights = stats.Highlights.Add(p.Highlights)
	}
	return stats
}

// Score fills the reading level, readability class and reading time.
func Score(stats model.TextStats, target readability.Target) model.TextStats {
	stats.ReadingLevel, stats.Readability = readability.Score(stats.Letters, stats.Words, stats.Sentences, target)
	stats.ReadingTimeInSecs = readability.ReadingTime(stats.Words)
	return stats
}
