// Package lexicon holds the word tables used to flag weak prose.
package lexicon

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Lexicon is an immutable set of adverbs, weak phrases and passive forms.
// All entries are lower case; weak phrases use single spaces between words.
type Lexicon struct {
	adverbs     map[string]struct{}
	weakPhrases []string
	passives    map[string]string
}

var defaultLexicon = build(adverbs, weakPhrases, passiveVoices)

// Default returns the built-in lexicon. The value is shared and must not be modified.
func Default() *Lexicon {
	return defaultLexicon
}

func build(adverbList, phraseList []string, passiveMap map[string]string) *Lexicon {
	l := &Lexicon{
		adverbs:     make(map[string]struct{}, len(adverbList)),
		weakPhrases: make([]string, 0, len(phraseList)),
		passives:    make(map[string]string, len(passiveMap)),
	}
	for _, word := range adverbList {
		if word = NormalizeEntry(word); word != "" {
			l.adverbs[word] = struct{}{}
		}
	}
	seen := make(map[string]struct{}, len(phraseList))
	for _, phrase := range phraseList {
		phrase = NormalizeEntry(phrase)
		if phrase == "" {
			continue
		}
		if _, ok := seen[phrase]; ok {
			continue
		}
		seen[phrase] = struct{}{}
		l.weakPhrases = append(l.weakPhrases, phrase)
	}
	for participle, root := range passiveMap {
		l.passives[participle] = root
	}
	return l
}

// Extend returns a new lexicon containing the receiver's entries plus the
// extra adverbs and weak phrases. The receiver is left untouched.
func (l *Lexicon) Extend(extraAdverbs, extraPhrases []string) *Lexicon {
	adverbList := make([]string, 0, len(l.adverbs)+len(extraAdverbs))
	for word := range l.adverbs {
		adverbList = append(adverbList, word)
	}
	adverbList = append(adverbList, extraAdverbs...)
	phraseList := make([]string, 0, len(l.weakPhrases)+len(extraPhrases))
	phraseList = append(phraseList, l.weakPhrases...)
	phraseList = append(phraseList, extraPhrases...)
	return build(adverbList, phraseList, l.passives)
}

// IsAdverb reports whether the lower-cased word is a flagged adverb.
func (l *Lexicon) IsAdverb(word string) bool {
	_, ok := l.adverbs[lookupKey(word)]
	return ok
}

// PassiveRoot returns the base verb for a lower-cased past participle.
func (l *Lexicon) PassiveRoot(word string) (string, bool) {
	root, ok := l.passives[lookupKey(word)]
	return root, ok
}

// lookupKey brings a token to the NFC form the tables are keyed by.
func lookupKey(word string) string {
	if norm.NFC.IsNormalString(word) {
		return word
	}
	return norm.NFC.String(word)
}

// WeakPhrases returns the weak phrases in a stable order.
func (l *Lexicon) WeakPhrases() []string {
	out := make([]string, len(l.weakPhrases))
	copy(out, l.weakPhrases)
	return out
}

// Adverbs returns the flagged adverbs sorted alphabetically.
func (l *Lexicon) Adverbs() []string {
	out := make([]string, 0, len(l.adverbs))
	for word := range l.adverbs {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// PassiveForms returns the past participles sorted alphabetically.
func (l *Lexicon) PassiveForms() []string {
	out := make([]string, 0, len(l.passives))
	for word := range l.passives {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

// Counts returns the number of adverbs, weak phrases and passive forms.
func (l *Lexicon) Counts() (adverbCount, phraseCount, passiveCount int) {
	return len(l.adverbs), len(l.weakPhrases), len(l.passives)
}

// NormalizeEntry lower-cases an entry, collapses inner whitespace and
// converts it to NFC.
func NormalizeEntry(entry string) string {
	return norm.NFC.String(strings.Join(strings.Fields(strings.ToLower(entry)), " "))
}
