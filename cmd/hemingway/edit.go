package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/hemingway/internal/analyzer"
	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/readability"
	"github.com/verte-zerg/hemingway/internal/tui"
)

var editTarget string

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the live editor",
		Long:  "Opens a terminal editor that highlights adverbs, qualifiers, passive voice and hard sentences as you type.\nctrl+s writes the file and records the analysis in history.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEditCmd,
	}
	cmd.Flags().StringVarP(&editTarget, "target", "t", string(readability.Normal), "reading level target: ACCESSIBLE, NORMAL or TECHNICAL")
	return cmd
}

func runEditCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "target", &editTarget, fileCfg.Analysis.Target)
	target, err := readability.ValidateTarget(editTarget)
	if err != nil {
		return err
	}

	var adverbsFile, qualifiersFile string
	if fileCfg.Analysis.AdverbsFile != nil {
		adverbsFile = *fileCfg.Analysis.AdverbsFile
	}
	if fileCfg.Analysis.QualifiersFile != nil {
		qualifiersFile = *fileCfg.Analysis.QualifiersFile
	}
	lex, err := loadLexicon(adverbsFile, qualifiersFile)
	if err != nil {
		return err
	}

	var path, text string
	if len(args) == 1 {
		path = args[0]
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(data)
		case os.IsNotExist(err):
		default:
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	logger := newLogger(cmd)
	opts := tui.Options{
		Analyzer: analyzer.New(lex),
		Settings: model.Settings{ReadingLevelTarget: target},
		Path:     path,
		Text:     text,
		Log:      logger,
	}
	st, err := openStore(cmd, fileCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("history disabled")
	} else {
		defer closeStore(st, logger)
		opts.Store = st
	}
	return tui.Run(opts)
}
