// Package ingest resolves command line arguments into documents to score.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/verte-zerg/hemingway/internal/mdtext"
)

// StdinSource labels documents read from standard input.
const StdinSource = "-"

// dirPattern selects the files picked up when a directory is given.
const dirPattern = "**/*.{txt,md,markdown,pdf}"

// Document is a named piece of prose ready for analysis.
type Document struct {
	Source string
	Text   string
}

// Options controls resolution and reading.
type Options struct {
	// Excludes are glob patterns matched against the path and its base name.
	Excludes []string
	// Markdown forces Markdown extraction for stdin and plain text files.
	Markdown bool
}

// Resolve expands files, directories and glob patterns into a sorted,
// deduplicated file list. Directories are walked recursively.
func Resolve(args []string, excludes []string) ([]string, error) {
	matchers, err := compileExcludes(excludes)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var result []string
	add := func(path string) {
		if excluded(matchers, path) {
			return
		}
		key, err := filepath.Abs(path)
		if err != nil {
			key = path
		}
		if seen[key] {
			return
		}
		seen[key] = true
		result = append(result, path)
	}
	for _, arg := range args {
		if err := resolveArg(arg, add); err != nil {
			return nil, err
		}
	}
	sort.Strings(result)
	return result, nil
}

func resolveArg(arg string, add func(string)) error {
	if strings.ContainsAny(arg, "*?[{") {
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return fmt.Errorf("invalid glob pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("failed to expand %q: %w", arg, err)
		}
		for _, m := range matches {
			add(m)
		}
		return nil
	}
	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}
	if !info.IsDir() {
		add(arg)
		return nil
	}
	matches, err := doublestar.Glob(os.DirFS(arg), dirPattern, doublestar.WithFilesOnly())
	if err != nil {
		return fmt.Errorf("failed to walk %q: %w", arg, err)
	}
	for _, m := range matches {
		add(filepath.Join(arg, filepath.FromSlash(m)))
	}
	return nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}

func excluded(matchers []glob.Glob, path string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))
	for _, g := range matchers {
		if g.Match(path) || g.Match(slashed) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// Load resolves args and reads every file. With no args it reads r.
func Load(args []string, r io.Reader, opts Options) ([]Document, error) {
	if len(args) == 0 {
		doc, err := ReadStdin(r, opts.Markdown)
		if err != nil {
			return nil, err
		}
		return []Document{doc}, nil
	}
	paths, err := Resolve(args, opts.Excludes)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no input files matched")
	}
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		text, err := ReadFile(path, opts.Markdown)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Source: path, Text: text})
	}
	return docs, nil
}

// ReadStdin reads a whole document from r.
func ReadStdin(r io.Reader, markdown bool) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	text := string(data)
	if markdown {
		text = mdtext.Extract(data)
	}
	return Document{Source: StdinSource, Text: text}, nil
}

// ReadFile returns the prose of a file chosen by its extension: PDF text,
// Markdown through extraction, anything else as is.
func ReadFile(path string, markdown bool) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return readPDF(path)
	case ".md", ".markdown":
		markdown = true
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if markdown {
		return mdtext.Extract(data), nil
	}
	return string(data), nil
}
