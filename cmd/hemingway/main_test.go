package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	path := filepath.Join(home, "config", "hemingway", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestScoreStdinJSON(t *testing.T) {
	setupHome(t)
	out, err := run(t, "He actually ran quickly. The ball was thrown.", "--format", "json")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	var decoded struct {
		Stats struct {
			Sentences  int `json:"sentences"`
			Highlights struct {
				Adverbs       int `json:"adverbs"`
				PassiveVoices int `json:"passive_voices"`
			} `json:"highlights"`
		} `json:"stats"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if decoded.Stats.Sentences != 2 || decoded.Stats.Highlights.Adverbs != 1 || decoded.Stats.Highlights.PassiveVoices != 1 {
		t.Fatalf("unexpected stats: %+v", decoded.Stats)
	}
}

func TestScoreFilesField(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, "docs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("# Title\n\n```\ncode here\n```\n\nOne two three.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("One two."), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "", "score", dir, "--field", "stats.words", "--workers", "2")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	want := filepath.Join(dir, "a.md") + ": 4\n" + filepath.Join(dir, "b.txt") + ": 2\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestRootScoresFileArgs(t *testing.T) {
	home := setupHome(t)
	path := filepath.Join(home, "a.txt")
	if err := os.WriteFile(path, []byte("One two three."), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "", path, "--field", "stats.words")
	if err != nil {
		t.Fatalf("root score: %v", err)
	}
	if out != "3\n" {
		t.Fatalf("got %q, want %q", out, "3\n")
	}

	out, err = run(t, "", "score", path, "--field", "stats.words")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if out != "3\n" {
		t.Fatalf("got %q from score subcommand", out)
	}
}

func TestScoreConfigPrecedence(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "[analysis]\ntarget = \"technical\"\nformat = \"json\"\n")

	out, err := run(t, "Hello there.", "--field", "stats.readability", "--format", "text")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if strings.TrimSpace(out) != "normal" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = run(t, "Hello there.")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected json from config, got %q", out)
	}
}

func TestScoreRejectsBadInput(t *testing.T) {
	setupHome(t)
	if _, err := run(t, "x", "--target", "expert"); err == nil {
		t.Fatalf("expected error for unknown target")
	}
	if _, err := run(t, "x", "--format", "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	_, err := run(t, "", "missing-file.txt")
	if err == nil || !strings.Contains(err.Error(), "cannot access") {
		t.Fatalf("expected file access error, got %v", err)
	}
}

func TestSaveAndHistory(t *testing.T) {
	setupHome(t)
	if _, err := run(t, "I think it was written quickly.", "--save", "--format", "yaml"); err != nil {
		t.Fatalf("score: %v", err)
	}
	if _, err := run(t, "Short text.", "--save"); err != nil {
		t.Fatalf("score: %v", err)
	}
	out, err := run(t, "", "history", "--window", "2")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	for _, want := range []string{"Analyses: 2", "-", "Trends"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in history:\n%s", want, out)
		}
	}
	if _, err := run(t, "", "history", "--since", "yesterday"); err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestLexiconCommand(t *testing.T) {
	home := setupHome(t)
	out, err := run(t, "", "lexicon")
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	if !strings.Contains(out, "adverbs     173") || !strings.Contains(out, "passives    126") {
		t.Fatalf("unexpected counts %q", out)
	}

	extra := filepath.Join(home, "config", "hemingway", "adverbs.txt")
	if err := os.MkdirAll(filepath.Dir(extra), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(extra, []byte("zanily\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err = run(t, "", "lexicon", "adverbs")
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	if !strings.Contains(out, "\nzanily\n") {
		t.Fatalf("expected default-path extension to be loaded")
	}
	if _, err := run(t, "", "lexicon", "verbs"); err == nil {
		t.Fatalf("expected error for unknown table")
	}
}
