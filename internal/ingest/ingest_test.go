package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolveDirectoryAndGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# A\n")
	writeFile(t, filepath.Join(dir, "notes", "b.txt"), "B.")
	writeFile(t, filepath.Join(dir, "notes", "skip.go"), "package x")
	writeFile(t, filepath.Join(dir, "drafts", "c.md"), "C.")

	got, err := Resolve([]string{dir, filepath.Join(dir, "*.md")}, []string{"drafts/*", "*/drafts/*"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "notes", "b.txt")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveExcludeByBaseName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.txt"), "x")
	writeFile(t, filepath.Join(dir, "README.md"), "x")
	got, err := Resolve([]string{dir}, []string{"README.*"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "keep.txt" {
		t.Fatalf("unexpected files: %v", got)
	}
}

func TestResolveMissingFile(t *testing.T) {
	if _, err := Resolve([]string{filepath.Join(t.TempDir(), "nope.txt")}, nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestResolveBadExclude(t *testing.T) {
	if _, err := Resolve(nil, []string{"[unterminated"}); err == nil {
		t.Fatalf("expected error for invalid exclude")
	}
}

func TestReadFileByExtension(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "doc.md")
	txt := filepath.Join(dir, "doc.txt")
	writeFile(t, md, "# Heading\n\nSome **bold** prose.\n")
	writeFile(t, txt, "# Heading\n")

	got, err := ReadFile(md, false)
	if err != nil {
		t.Fatalf("read md: %v", err)
	}
	if got != "Heading\n\nSome bold prose." {
		t.Fatalf("unexpected markdown text %q", got)
	}
	got, err = ReadFile(txt, false)
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	if got != "# Heading\n" {
		t.Fatalf("plain text must be kept as is, got %q", got)
	}
	got, err = ReadFile(txt, true)
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	if got != "Heading" {
		t.Fatalf("forced markdown extraction failed, got %q", got)
	}
}

func TestReadFileBadPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	writeFile(t, path, "not a pdf")
	if _, err := ReadFile(path, false); err == nil {
		t.Fatalf("expected error for invalid pdf")
	}
}

func TestLoadStdin(t *testing.T) {
	docs, err := Load(nil, strings.NewReader("*Hi* there."), Options{Markdown: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 1 || docs[0].Source != StdinSource || docs[0].Text != "Hi there." {
		t.Fatalf("unexpected docs: %+v", docs)
	}
}

func TestLoadNoMatches(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "*.txt")
	if _, err := Load([]string{pattern}, nil, Options{}); err == nil {
		t.Fatalf("expected error when nothing matches")
	}
}
