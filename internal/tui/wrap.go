package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hemingway/internal/analyzer"
	"github.com/verte-zerg/hemingway/internal/readability"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	newline bool
	mark    analyzer.MarkKind
	class   readability.Class
}

// buildStyledRunes colors text by its annotation. Word marks take
// precedence over the sentence background; the first mark covering a byte
// wins.
func buildStyledRunes(text string, an analyzer.Annotation) []styledRune {
	marks := make([]analyzer.MarkKind, len(text))
	for _, m := range an.Marks {
		for i := max(m.Start, 0); i < m.End && i < len(text); i++ {
			if marks[i] == "" {
				marks[i] = m.Kind
			}
		}
	}
	classes := make([]readability.Class, len(text))
	for _, s := range an.Sentences {
		for i := max(s.Start, 0); i < s.End && i < len(text); i++ {
			classes[i] = s.Class
		}
	}

	out := make([]styledRune, 0, len(text))
	for i, r := range text {
		if r == '\n' {
			out = append(out, styledRune{newline: true})
			continue
		}
		if r == '\t' {
			r = ' '
		}
		out = append(out, styledRune{
			s:       styleFor(marks[i], classes[i]).Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
			mark:    marks[i],
			class:   classes[i],
		})
	}
	return out
}

func styleFor(mark analyzer.MarkKind, class readability.Class) lipgloss.Style {
	switch mark {
	case analyzer.MarkAdverb:
		return adverbStyle
	case analyzer.MarkQualifier:
		return qualifierStyle
	case analyzer.MarkPassive:
		return passiveStyle
	}
	switch class {
	case readability.ClassHard:
		return hardStyle
	case readability.ClassVeryHard:
		return veryHardStyle
	}
	return plainStyle
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		if item.newline {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits in width.
// Newlines in the text always start a new line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if item.newline {
			out.WriteString(renderStyledRunes(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
			i++
			continue
		}
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
