package output

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hemingway/internal/readability"
)

var (
	sourceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hardStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	veryHardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	labelStyle    = lipgloss.NewStyle().Faint(true)
)

// TextFormatter prints a short human-readable summary per report.
type TextFormatter struct {
	Color bool
}

// Format writes one block per report, separated by blank lines.
func (f *TextFormatter) Format(w io.Writer, reports []Report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := f.formatOne(w, r); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatOne(w io.Writer, r Report) error {
	s := r.Result.Stats
	h := s.Highlights
	lines := []string{
		f.style(sourceStyle, r.Source),
		fmt.Sprintf("  %s %s", f.label("Readability"), f.grade(s.ReadingLevel, s.Readability)),
		fmt.Sprintf("  %s %d words, %d sentences, %d paragraphs, %d letters",
			f.label("Counts     "), s.Words, s.Sentences, s.Paragraphs, s.Letters),
		fmt.Sprintf("  %s %s", f.label("Reading    "), formatDuration(s.ReadingTimeInSecs)),
		fmt.Sprintf("  %s %d adverbs, %d qualifiers, %d passive voice",
			f.label("Highlights "), h.Adverbs, h.Qualifiers, h.PassiveVoices),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) grade(level int, class readability.Class) string {
	text := fmt.Sprintf("Grade %d (%s)", level, ClassLabel(class))
	switch class {
	case readability.ClassHard:
		return f.style(hardStyle, text)
	case readability.ClassVeryHard:
		return f.style(veryHardStyle, text)
	default:
		return f.style(normalStyle, text)
	}
}

func (f *TextFormatter) label(s string) string {
	return f.style(labelStyle, s)
}

func (f *TextFormatter) style(st lipgloss.Style, s string) string {
	if !f.Color {
		return s
	}
	return st.Render(s)
}

// ClassLabel returns the display name of a readability class.
func ClassLabel(class readability.Class) string {
	switch class {
	case readability.ClassHard:
		return "hard to read"
	case readability.ClassVeryHard:
		return "very hard to read"
	default:
		return "good"
	}
}

func formatDuration(secs float64) string {
	total := int(math.Round(secs))
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	return fmt.Sprintf("%dm %02ds", total/60, total%60)
}
