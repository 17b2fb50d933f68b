// Package main provides the CLI entrypoint for hemingway.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hemingway/internal/config"
	"github.com/verte-zerg/hemingway/internal/lexicon"
	"github.com/verte-zerg/hemingway/internal/log"
	"github.com/verte-zerg/hemingway/internal/store"
	"github.com/verte-zerg/hemingway/internal/wordlist"
)

var (
	globalVerbose bool
	globalDB      string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hemingway [files|dirs|globs...]",
		Short:         "Readability scoring for prose",
		Long:          "Scores prose for readability and flags adverbs, qualifiers and passive voice.\nWith no arguments the text is read from stdin.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.ArbitraryArgs,
		RunE:          runScoreCmd,
	}
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&globalDB, "db", "", "history database path")
	addScoreFlags(rootCmd)

	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newLexiconCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func loadConfig() (config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg, nil
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	return log.New(cmd.ErrOrStderr(), globalVerbose)
}

func openStore(cmd *cobra.Command, fileCfg config.FileConfig) (*store.Store, error) {
	path := config.DefaultDBPath()
	applyStringConfig(cmd, "db", &globalDB, fileCfg.History.DB)
	if globalDB != "" {
		path = globalDB
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store, logger zerolog.Logger) {
	if cerr := st.Close(); cerr != nil {
		logger.Warn().Err(cerr).Msg("failed to close db")
	}
}

// loadLexicon extends the built-in lexicon with the configured word lists.
// Lists in the config directory are picked up when nothing is configured.
func loadLexicon(adverbsFile, qualifiersFile string) (*lexicon.Lexicon, error) {
	return wordlist.Extend(lexicon.Default(),
		lexiconPath(adverbsFile, "adverbs"),
		lexiconPath(qualifiersFile, "qualifiers"))
}

func lexiconPath(configured, kind string) string {
	if configured != "" {
		return configured
	}
	path := config.DefaultLexiconPath(kind)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func useColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
