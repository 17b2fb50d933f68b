package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/hemingway/internal/analyzer"
	"github.com/verte-zerg/hemingway/internal/ingest"
	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/output"
	"github.com/verte-zerg/hemingway/internal/readability"
)

var (
	scoreTarget         string
	scoreFormat         string
	scoreField          string
	scoreMarkdown       bool
	scoreExcludes       []string
	scoreWorkers        int
	scoreSave           bool
	scoreAdverbsFile    string
	scoreQualifiersFile string
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [files|dirs|globs...]",
		Short: "Score text, Markdown or PDF files (the default command)",
		Args:  cobra.ArbitraryArgs,
		RunE:  runScoreCmd,
	}
	addScoreFlags(cmd)
	return cmd
}

func addScoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&scoreTarget, "target", "t", string(readability.Normal), "reading level target: ACCESSIBLE, NORMAL or TECHNICAL")
	cmd.Flags().StringVarP(&scoreFormat, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().StringVar(&scoreField, "field", "", "print a single dotted field, e.g. stats.reading_level")
	cmd.Flags().BoolVar(&scoreMarkdown, "markdown", false, "treat stdin and .txt files as Markdown")
	cmd.Flags().StringArrayVarP(&scoreExcludes, "exclude", "e", nil, "glob pattern of files to skip (repeatable)")
	cmd.Flags().IntVarP(&scoreWorkers, "workers", "j", 0, "parallel workers (0 = one per CPU)")
	cmd.Flags().BoolVar(&scoreSave, "save", false, "store the analyses in history")
	cmd.Flags().StringVar(&scoreAdverbsFile, "adverbs-file", "", "extra adverbs, one per line")
	cmd.Flags().StringVar(&scoreQualifiersFile, "qualifiers-file", "", "extra qualifiers, one per line")
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "target", &scoreTarget, fileCfg.Analysis.Target)
	applyStringConfig(cmd, "format", &scoreFormat, fileCfg.Analysis.Format)
	applyIntConfig(cmd, "workers", &scoreWorkers, fileCfg.Analysis.Workers)
	applyBoolConfig(cmd, "markdown", &scoreMarkdown, fileCfg.Analysis.Markdown)
	applyStringConfig(cmd, "adverbs-file", &scoreAdverbsFile, fileCfg.Analysis.AdverbsFile)
	applyStringConfig(cmd, "qualifiers-file", &scoreQualifiersFile, fileCfg.Analysis.QualifiersFile)
	applyBoolConfig(cmd, "save", &scoreSave, fileCfg.History.Save)

	target, err := readability.ValidateTarget(scoreTarget)
	if err != nil {
		return err
	}
	cfg := model.ScoreConfig{
		Target:         target,
		Format:         scoreFormat,
		Field:          scoreField,
		Markdown:       scoreMarkdown,
		Workers:        scoreWorkers,
		Save:           scoreSave,
		Excludes:       scoreExcludes,
		AdverbsFile:    scoreAdverbsFile,
		QualifiersFile: scoreQualifiersFile,
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("--workers must be >= 0")
	}
	formatter, err := output.New(cfg.Format, cfg.Field, useColor())
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	lex, err := loadLexicon(cfg.AdverbsFile, cfg.QualifiersFile)
	if err != nil {
		return err
	}
	adverbs, phrases, passives := lex.Counts()
	logger.Debug().Int("adverbs", adverbs).Int("qualifiers", phrases).Int("passives", passives).Msg("lexicon loaded")

	docs, err := ingest.Load(args, cmd.InOrStdin(), ingest.Options{Excludes: cfg.Excludes, Markdown: cfg.Markdown})
	if err != nil {
		return err
	}
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	logger.Debug().Int("documents", len(docs)).Int("workers", cfg.Workers).Str("target", string(cfg.Target)).Msg("scoring")

	settings := model.Settings{ReadingLevelTarget: cfg.Target}
	results, err := analyzer.New(lex).AnalyzeBatch(cmd.Context(), texts, settings, cfg.Workers)
	if err != nil {
		return fmt.Errorf("failed to score documents: %w", err)
	}
	reports := make([]output.Report, len(docs))
	for i, doc := range docs {
		reports[i] = output.Report{Source: doc.Source, Result: results[i]}
		logger.Debug().Str("source", doc.Source).Int("words", results[i].Stats.Words).
			Int("reading_level", results[i].Stats.ReadingLevel).Msg("scored")
	}
	if err := formatter.Format(cmd.OutOrStdout(), reports); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !cfg.Save {
		return nil
	}
	st, err := openStore(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)
	now := time.Now()
	for _, r := range reports {
		rec := model.AnalysisRecord{CreatedAt: now, Source: r.Source, Target: cfg.Target, Stats: r.Result.Stats}
		id, err := st.InsertAnalysis(cmd.Context(), rec, r.Result.ParagraphStats)
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		logger.Info().Int64("id", id).Str("source", r.Source).Msg("saved analysis")
	}
	return nil
}
