// Package model defines shared data structures.
package model

import (
	"time"

	"github.com/verte-zerg/hemingway/internal/readability"
)

// Settings carries analyzer options. The zero value means the NORMAL target.
type Settings struct {
	ReadingLevelTarget readability.Target `json:"reading_level_target" yaml:"reading_level_target"`
}

// DefaultSettings returns settings with the NORMAL target.
func DefaultSettings() Settings {
	return Settings{ReadingLevelTarget: readability.Normal}
}

// SettingsFromMap builds settings from a loose key/value record. Only
// reading_level_target is recognized; unknown values fall back to NORMAL.
func SettingsFromMap(values map[string]string) Settings {
	return Settings{ReadingLevelTarget: readability.ParseTarget(values["reading_level_target"])}
}

// Target returns the effective reading level target.
func (s Settings) Target() readability.Target {
	return readability.ParseTarget(string(s.ReadingLevelTarget))
}

// Highlights counts detected weaknesses. ComplexWords, GrammarIssues,
// HardSentences and VeryHardSentences have no detector and stay zero.
type Highlights struct {
	Adverbs           int `json:"adverbs" yaml:"adverbs"`
	ComplexWords      int `json:"complex_words" yaml:"complex_words"`
	GrammarIssues     int `json:"grammar_issues" yaml:"grammar_issues"`
	HardSentences     int `json:"hard_sentences" yaml:"hard_sentences"`
	PassiveVoices     int `json:"passive_voices" yaml:"passive_voices"`
	Qualifiers        int `json:"qualifiers" yaml:"qualifiers"`
	VeryHardSentences int `json:"very_hard_sentences" yaml:"very_hard_sentences"`
}

// Add returns the field-wise sum of h and o.
func (h Highlights) Add(o Highlights) Highlights {
	return Highlights{
		Adverbs:           h.Adverbs + o.Adverbs,
		ComplexWords:      h.ComplexWords + o.ComplexWords,
		GrammarIssues:     h.GrammarIssues + o.GrammarIssues,
		HardSentences:     h.HardSentences + o.HardSentences,
		PassiveVoices:     h.PassiveVoices + o.PassiveVoices,
		Qualifiers:        h.Qualifiers + o.Qualifiers,
		VeryHardSentences: h.VeryHardSentences + o.VeryHardSentences,
	}
}

// Total returns the sum of all highlight counters.
func (h Highlights) Total() int {
	return h.Adverbs + h.ComplexWords + h.GrammarIssues + h.HardSentences +
		h.PassiveVoices + h.Qualifiers + h.VeryHardSentences
}

// SentenceStats describes a single sentence. Sentences is always 1.
type SentenceStats struct {
	Characters int        `json:"characters" yaml:"characters"`
	Letters    int        `json:"letters" yaml:"letters"`
	Words      int        `json:"words" yaml:"words"`
	Sentences  int        `json:"sentences" yaml:"sentences"`
	Highlights Highlights `json:"highlights" yaml:"highlights"`
}

// ParagraphStats sums the sentences of one paragraph. Sentences is the
// number of sentence segments, not a sum of per-sentence markers.
type ParagraphStats struct {
	Characters   int        `json:"characters" yaml:"characters"`
	Letters      int        `json:"letters" yaml:"letters"`
	Words        int        `json:"words" yaml:"words"`
	Sentences    int        `json:"sentences" yaml:"sentences"`
	Highlights   Highlights `json:"highlights" yaml:"highlights"`
	ReadingLevel int        `json:"reading_level" yaml:"reading_level"`
}

// TextStats aggregates a whole text.
type TextStats struct {
	Characters        int               `json:"characters" yaml:"characters"`
	Letters           int               `json:"letters" yaml:"letters"`
	Words             int               `json:"words" yaml:"words"`
	Sentences         int               `json:"sentences" yaml:"sentences"`
	Paragraphs        int               `json:"paragraphs" yaml:"paragraphs"`
	Highlights        Highlights        `json:"highlights" yaml:"highlights"`
	ReadingLevel      int               `json:"reading_level" yaml:"reading_level"`
	Readability       readability.Class `json:"readability" yaml:"readability"`
	ReadingTimeInSecs float64           `json:"reading_time_in_secs" yaml:"reading_time_in_secs"`
}

// AnalysisResult is the outcome of analyzing one text.
type AnalysisResult struct {
	Stats          TextStats        `json:"stats" yaml:"stats"`
	Paragraphs     []string         `json:"paragraphs" yaml:"paragraphs"`
	ParagraphStats []ParagraphStats `json:"paragraph_stats" yaml:"paragraph_stats"`
	Text           string           `json:"text" yaml:"text"`
}

// ScoreConfig defines options for the score command.
type ScoreConfig struct {
	Target         readability.Target
	Format         string
	Field          string
	Markdown       bool
	Workers        int
	Save           bool
	Excludes       []string
	AdverbsFile    string
	QualifiersFile string
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Source string
	Since  *time.Time
	Last   int
	Window int
}

// AnalysisRecord is a stored analysis.
type AnalysisRecord struct {
	ID        int64
	CreatedAt time.Time
	Source    string
	Target    readability.Target
	Stats     TextStats
}

// ParagraphRecord is a stored per-paragraph row of an analysis.
type ParagraphRecord struct {
	AnalysisID   int64
	Index        int
	Words        int
	Sentences    int
	ReadingLevel int
}

// SourceAggregate summarizes the stored analyses of one source.
type SourceAggregate struct {
	Source          string
	Analyses        int
	Words           int
	AvgReadingLevel float64
	LastAt          time.Time
}
