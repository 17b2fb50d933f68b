package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Analysis.Target != nil || cfg.History.Save != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[analysis]
target = "technical"
workers = 3
markdown = true
adverbs-file = "/tmp/adverbs.txt"

[history]
save = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Analysis.Target == nil || *cfg.Analysis.Target != "technical" {
		t.Fatalf("unexpected target: %v", cfg.Analysis.Target)
	}
	if cfg.Analysis.Workers == nil || *cfg.Analysis.Workers != 3 {
		t.Fatalf("unexpected workers: %v", cfg.Analysis.Workers)
	}
	if cfg.Analysis.Markdown == nil || !*cfg.Analysis.Markdown {
		t.Fatalf("expected markdown true")
	}
	if cfg.Analysis.Format != nil || cfg.History.DB != nil {
		t.Fatalf("unset keys must stay nil")
	}
	if cfg.History.Save == nil || !*cfg.History.Save {
		t.Fatalf("expected save true")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[analysis]\ntargte = \"NORMAL\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(Template), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err != nil {
		t.Fatalf("template must decode: %v", err)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "hemingway", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "hemingway", "hemingway.db") {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultLexiconPath("adverbs"); got != filepath.Join("/cfg", "hemingway", "adverbs.txt") {
		t.Fatalf("unexpected lexicon path %q", got)
	}
}
