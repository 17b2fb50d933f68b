// Package stats contains history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/readability"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 || len(values) == 0 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		n := i + 1
		if i >= window {
			sum -= values[i-window]
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints totals and averages for the analyses.
func RenderSummary(w io.Writer, records []model.AnalysisRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No analyses found.")
		return err
	}
	var words, levels int
	var seconds float64
	hard, veryHard := 0, 0
	best := records[0]
	for _, r := range records {
		words += r.Stats.Words
		levels += r.Stats.ReadingLevel
		seconds += r.Stats.ReadingTimeInSecs
		switch r.Stats.Readability {
		case readability.ClassHard:
			hard++
		case readability.ClassVeryHard:
			veryHard++
		}
		if r.Stats.ReadingLevel < best.Stats.ReadingLevel {
			best = r
		}
	}
	count := float64(len(records))
	lines := []string{
		"Summary",
		fmt.Sprintf("Analyses: %d", len(records)),
		fmt.Sprintf("Words: %d", words),
		fmt.Sprintf("Avg reading level: %.2f", float64(levels)/count),
		fmt.Sprintf("Lowest reading level: %d (%s)", best.Stats.ReadingLevel, best.Source),
		fmt.Sprintf("Hard: %d  Very hard: %d", hard, veryHard),
		fmt.Sprintf("Total reading time: %.0fs", seconds),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints smoothed sparklines of reading level, word count and
// highlight density (highlights per 100 words) across the analyses.
func RenderCurves(w io.Writer, records []model.AnalysisRecord, window int) error {
	if len(records) == 0 {
		return nil
	}
	levels := make([]float64, len(records))
	words := make([]float64, len(records))
	density := make([]float64, len(records))
	for i, r := range records {
		levels[i] = float64(r.Stats.ReadingLevel)
		words[i] = float64(r.Stats.Words)
		if r.Stats.Words > 0 {
			density[i] = float64(r.Stats.Highlights.Total()) / float64(r.Stats.Words) * 100
		}
	}
	levels = MovingAverage(levels, window)
	words = MovingAverage(words, window)
	density = MovingAverage(density, window)

	lines := []string{
		fmt.Sprintf("Trends (moving average over %d)", max(window, 1)),
		formatCurve("Reading level", levels),
		formatCurve("Words", words),
		formatCurve("Highlights/100w", density),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatCurve(label string, values []float64) string {
	return fmt.Sprintf("%-16s %6.2f |%s| %.2f", label, values[0], Sparkline(values), values[len(values)-1])
}

// RenderTable prints one row per analysis under the given title.
func RenderTable(w io.Writer, title string, records []model.AnalysisRecord) error {
	if len(records) == 0 {
		return nil
	}
	headers := []string{"When", "Source", "Words", "Level", "Readability", "Adverbs", "Qualifiers", "Passive"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			displaySource(r.Source),
			fmt.Sprintf("%d", r.Stats.Words),
			fmt.Sprintf("%d", r.Stats.ReadingLevel),
			string(r.Stats.Readability),
			fmt.Sprintf("%d", r.Stats.Highlights.Adverbs),
			fmt.Sprintf("%d", r.Stats.Highlights.Qualifiers),
			fmt.Sprintf("%d", r.Stats.Highlights.PassiveVoices),
		})
	}
	return writeTable(w, title, headers, rows, map[int]bool{2: true, 3: true, 5: true, 6: true, 7: true})
}

// RenderSources prints per-source aggregates.
func RenderSources(w io.Writer, aggs []model.SourceAggregate) error {
	if len(aggs) == 0 {
		return nil
	}
	headers := []string{"Source", "Analyses", "Words", "Avg Level", "Last"}
	rows := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, []string{
			displaySource(a.Source),
			fmt.Sprintf("%d", a.Analyses),
			fmt.Sprintf("%d", a.Words),
			fmt.Sprintf("%.2f", a.AvgReadingLevel),
			a.LastAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return writeTable(w, "Per-Source (Windowed)", headers, rows, map[int]bool{1: true, 2: true, 3: true})
}

// RenderParagraphs prints the paragraph reading levels of one analysis.
func RenderParagraphs(w io.Writer, rec model.AnalysisRecord, paragraphs []model.ParagraphRecord) error {
	if len(paragraphs) == 0 {
		return nil
	}
	levels := make([]float64, len(paragraphs))
	hardest := paragraphs[0]
	for i, p := range paragraphs {
		levels[i] = float64(p.ReadingLevel)
		if p.ReadingLevel > hardest.ReadingLevel {
			hardest = p
		}
	}
	lines := []string{
		fmt.Sprintf("Latest: %s (%d paragraphs)", displaySource(rec.Source), len(paragraphs)),
		fmt.Sprintf("Paragraph levels |%s|", Sparkline(levels)),
		fmt.Sprintf("Hardest paragraph: #%d, level %d, %d words", hardest.Index+1, hardest.ReadingLevel, hardest.Words),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, title string, headers []string, rows [][]string, rightAlign map[int]bool) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func displaySource(source string) string {
	if source == "" || source == "-" {
		return "<stdin>"
	}
	return filepath.Base(source)
}
