package wordlist

import (
	"strings"
	"unicode"
)

// FilterFunc returns true when an entry should be kept.
type FilterFunc func(string) bool

// SingleWord accepts entries made of one token. Adverbs are matched token
// by token, so anything else could never match.
func SingleWord(entry string) bool {
	if entry == "" {
		return false
	}
	for _, r := range entry {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

// Phrase accepts one or more tokens separated by single spaces.
func Phrase(entry string) bool {
	if entry == "" {
		return false
	}
	for _, word := range strings.Split(entry, " ") {
		if !SingleWord(word) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}
