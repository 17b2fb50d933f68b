package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/hemingway/internal/model"
	"github.com/verte-zerg/hemingway/internal/stats"
)

const defaultHistoryWindow = 5

var (
	historySource string
	historySince  string
	historyLast   int
	historyWindow int
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored analyses",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySource, "source", "", "only analyses of this source")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N analyses")
	cmd.Flags().IntVar(&historyWindow, "window", defaultHistoryWindow, "moving average window")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 || historyWindow < 0 {
		return fmt.Errorf("--last and --window must be >= 0")
	}
	cfg := model.HistoryConfig{
		Source: historySource,
		Since:  sinceTime,
		Last:   historyLast,
		Window: historyWindow,
	}

	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd)
	st, err := openStore(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	report, err := stats.BuildReport(cmd.Context(), st, cfg)
	if err != nil {
		return err
	}
	logger.Debug().Int("analyses", len(report.Analyses)).Msg("history loaded")
	return stats.Render(cmd.OutOrStdout(), report)
}
