package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lexiconAdverbsFile    string
	lexiconQualifiersFile string
)

func newLexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "lexicon [adverbs|qualifiers|passives]",
		Short:     "List lexicon entries",
		Long:      "Without arguments prints the size of each table. With a table name prints its entries, one per line.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"adverbs", "qualifiers", "passives"},
		RunE:      runLexiconCmd,
	}
	cmd.Flags().StringVar(&lexiconAdverbsFile, "adverbs-file", "", "extra adverbs, one per line")
	cmd.Flags().StringVar(&lexiconQualifiersFile, "qualifiers-file", "", "extra qualifiers, one per line")
	return cmd
}

func runLexiconCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "adverbs-file", &lexiconAdverbsFile, fileCfg.Analysis.AdverbsFile)
	applyStringConfig(cmd, "qualifiers-file", &lexiconQualifiersFile, fileCfg.Analysis.QualifiersFile)
	lex, err := loadLexicon(lexiconAdverbsFile, lexiconQualifiersFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		adverbs, qualifiers, passives := lex.Counts()
		_, err := fmt.Fprintf(out, "adverbs     %d\nqualifiers  %d\npassives    %d\n", adverbs, qualifiers, passives)
		return err
	}
	var entries []string
	switch args[0] {
	case "adverbs":
		entries = lex.Adverbs()
	case "qualifiers":
		entries = lex.WeakPhrases()
	case "passives":
		for _, form := range lex.PassiveForms() {
			root, _ := lex.PassiveRoot(form)
			entries = append(entries, form+" "+root)
		}
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintln(out, entry); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
