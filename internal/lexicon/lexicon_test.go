package lexicon

import (
	"sort"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	lex := Default()
	if !lex.IsAdverb("actually") {
		t.Fatalf("expected actually to be an adverb")
	}
	if lex.IsAdverb("quickly") {
		t.Fatalf("quickly is not in the adverb table")
	}
	root, ok := lex.PassiveRoot("thrown")
	if !ok || root != "threw" {
		t.Fatalf("expected thrown -> threw, got %q %v", root, ok)
	}
	adverbCount, phraseCount, passiveCount := lex.Counts()
	if adverbCount != 173 || phraseCount != 37 || passiveCount != 126 {
		t.Fatalf("unexpected table sizes: %d %d %d", adverbCount, phraseCount, passiveCount)
	}
}

func TestWeakPhrasesReturnsCopy(t *testing.T) {
	lex := Default()
	phrases := lex.WeakPhrases()
	phrases[0] = "mutated"
	if lex.WeakPhrases()[0] == "mutated" {
		t.Fatalf("expected WeakPhrases to return a copy")
	}
}

func TestExtendLeavesDefaultUntouched(t *testing.T) {
	base := Default()
	ext := base.Extend([]string{"Truly"}, []string{"I  Reckon", "i think"})
	if !ext.IsAdverb("truly") {
		t.Fatalf("expected extended lexicon to contain truly")
	}
	if base.IsAdverb("truly") {
		t.Fatalf("expected default lexicon to be unchanged")
	}
	_, basePhrases, _ := base.Counts()
	_, extPhrases, _ := ext.Counts()
	if extPhrases != basePhrases+1 {
		t.Fatalf("expected one new phrase, got %d -> %d", basePhrases, extPhrases)
	}
	found := false
	for _, p := range ext.WeakPhrases() {
		if p == "i reckon" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected normalized phrase %q", "i reckon")
	}
}

func TestNormalizeEntry(t *testing.T) {
	cases := map[string]string{
		"  In   My Opinion ": "in my opinion",
		"":                   "",
		"\tJust\n":           "just",
	}
	for in, want := range cases {
		if got := NormalizeEntry(in); got != want {
			t.Fatalf("NormalizeEntry(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSortedListings(t *testing.T) {
	adverbs := Default().Adverbs()
	if len(adverbs) != 173 || !sort.StringsAreSorted(adverbs) {
		t.Fatalf("expected 173 sorted adverbs, got %d", len(adverbs))
	}
	forms := Default().PassiveForms()
	if len(forms) != 126 || !sort.StringsAreSorted(forms) {
		t.Fatalf("expected 126 sorted passive forms, got %d", len(forms))
	}
}

func TestLookupMatchesComposedAndDecomposed(t *testing.T) {
	composed := "na\u00efvely"
	decomposed := "nai\u0308vely"
	for _, entry := range []string{composed, decomposed} {
		lex := Default().Extend([]string{entry}, nil)
		if !lex.IsAdverb(composed) || !lex.IsAdverb(decomposed) {
			t.Fatalf("entry %q: expected both accent forms to match", entry)
		}
	}
	if _, ok := Default().PassiveRoot("thrown"); !ok {
		t.Fatalf("expected ASCII lookups to keep working")
	}
}
