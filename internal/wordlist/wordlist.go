// Package wordlist loads lexicon extension lists from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/hemingway/internal/lexicon"
)

// LoadWords reads one entry per line from the provided file path. Blank
// lines and lines starting with # are skipped. Entries go through
// lexicon.NormalizeEntry, so an accented word matches tokens written with
// either composed or decomposed accents.
func LoadWords(path string, keep FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		entry = lexicon.NormalizeEntry(entry)
		if keep != nil && !keep(entry) {
			return nil, fmt.Errorf("%s:%d: invalid entry %q", path, line, entry)
		}
		words = append(words, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Extend loads the adverb and qualifier lists and returns base extended by
// them. Empty paths are skipped; with both empty base is returned as is.
func Extend(base *lexicon.Lexicon, adverbsPath, qualifiersPath string) (*lexicon.Lexicon, error) {
	if adverbsPath == "" && qualifiersPath == "" {
		return base, nil
	}
	var adverbs, qualifiers []string
	var err error
	if adverbsPath != "" {
		if adverbs, err = LoadWords(adverbsPath, SingleWord); err != nil {
			return nil, fmt.Errorf("failed to load adverbs: %w", err)
		}
	}
	if qualifiersPath != "" {
		if qualifiers, err = LoadWords(qualifiersPath, Phrase); err != nil {
			return nil, fmt.Errorf("failed to load qualifiers: %w", err)
		}
	}
	return base.Extend(adverbs, qualifiers), nil
}
