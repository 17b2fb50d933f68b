// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analysis AnalysisConfig `toml:"analysis"`
	History  HistoryConfig  `toml:"history"`
}

// AnalysisConfig maps scoring settings. Nil fields were not set in the file.
type AnalysisConfig struct {
	Target         *string `toml:"target"`
	Format         *string `toml:"format"`
	Workers        *int    `toml:"workers"`
	Markdown       *bool   `toml:"markdown"`
	AdverbsFile    *string `toml:"adverbs-file"`
	QualifiersFile *string `toml:"qualifiers-file"`
}

// HistoryConfig maps history settings.
type HistoryConfig struct {
	Save *bool   `toml:"save"`
	DB   *string `toml:"db"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Template is written when the config command creates a new file.
const Template = `# hemingway configuration

[analysis]
# Reading level target: ACCESSIBLE, NORMAL or TECHNICAL.
# target = "NORMAL"
# Output format for the score command: text, json or yaml.
# format = "text"
# Parallel workers when scoring several files (0 = one per CPU).
# workers = 0
# Treat stdin and .txt files as Markdown.
# markdown = false
# Extra adverbs and weak phrases, one entry per line.
# adverbs-file = ""
# qualifiers-file = ""

[history]
# Store every score run in the history database.
# save = false
# db = ""
`
