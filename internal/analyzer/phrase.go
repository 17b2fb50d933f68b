package analyzer

import (
	"regexp"
	"strings"
)

// gap matches exactly one intervening word between two phrase words.
const gap = `\s+[\p{L}\p{M}\p{N}_]+\s+`

// phraseMatcher finds one weak phrase, either verbatim or with a single
// extra word wedged between each pair of its words ("I really think").
type phraseMatcher struct {
	phrase string
	exact  boundedPattern
	gapped *boundedPattern
}

func newPhraseMatcher(phrase string) phraseMatcher {
	words := strings.Fields(phrase)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	m := phraseMatcher{
		phrase: phrase,
		exact:  newBoundedPattern(strings.Join(quoted, " ")),
	}
	if len(words) > 1 {
		gapped := newBoundedPattern(strings.Join(quoted, gap))
		m.gapped = &gapped
	}
	return m
}

// matchPhrases returns the distinct weak phrases found in sentence. Exact
// matches are collected first, then the one-gap variants of the phrases not
// yet found.
func matchPhrases(matchers []phraseMatcher, sentence string) []string {
	found := make(map[string]struct{})
	var out []string
	for _, m := range matchers {
		if _, _, ok := m.exact.find(sentence); ok {
			found[m.phrase] = struct{}{}
			out = append(out, m.phrase)
		}
	}
	for _, m := range matchers {
		if m.gapped == nil {
			continue
		}
		if _, ok := found[m.phrase]; ok {
			continue
		}
		if _, _, ok := m.gapped.find(sentence); ok {
			found[m.phrase] = struct{}{}
			out = append(out, m.phrase)
		}
	}
	return out
}
