package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A word is a maximal run of letters, combining marks, digits and underscores.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

// tokenize returns the lower-cased words of s.
func tokenize(s string) []string {
	raw := tokenPattern.FindAllString(s, -1)
	out := make([]string, len(raw))
	for i, tok := range raw {
		out[i] = strings.ToLower(tok)
	}
	return out
}

// boundedPattern matches a regular expression only where it is not glued to
// surrounding word characters.
type boundedPattern struct {
	re *regexp.Regexp
}

func newBoundedPattern(body string) boundedPattern {
	return boundedPattern{re: regexp.MustCompile(`(?i)` + body)}
}

func (p boundedPattern) bounded(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// find returns the first word-bounded match in s.
func (p boundedPattern) find(s string) (int, int, bool) {
	matches := p.findN(s, 1)
	if len(matches) == 0 {
		return 0, 0, false
	}
	return matches[0][0], matches[0][1], true
}

// findAll returns every non-overlapping word-bounded match in s.
func (p boundedPattern) findAll(s string) [][2]int {
	return p.findN(s, -1)
}

func (p boundedPattern) findN(s string, n int) [][2]int {
	var out [][2]int
	pos := 0
	for pos <= len(s) && (n < 0 || len(out) < n) {
		loc := p.re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && p.bounded(s, start, end) {
			out = append(out, [2]int{start, end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		if size == 0 {
			break
		}
		pos = start + size
	}
	return out
}
