// internal/cli/aggregate.go
package ckpoint

import (
	"encoding/csv"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prajaktaborse1234/synthmerge/internal/checkpoint"
	"github.com/prajaktaborse1234/synthmerge/internal/logging"
)

// aggregateCmd computes combined accuracy ratios across checkpoint files.
var aggregateCmd = &cobra.Command{
	Use:   "aggregate <model_regex> <results.csv> [results.csv ...]",
	Short: "Aggregate per-entry accuracy across checkpoint files",
	Long: `Filter checkpoint rows by a model pattern (matched at the start of the
model name), group the remaining rows by entry_index, and print the share of
entries with at least one "true" cell per outcome column, as percentages.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := checkpoint.CompileModelPattern(args[0])
		if err != nil {
			return err
		}

		combined, err := checkpoint.ReadFiles(args[1:])
		if err != nil {
			return err
		}
		matched := combined.Filter(func(r checkpoint.Row) bool {
			return pattern.MatchString(r[checkpoint.ColModel])
		})

		summary := checkpoint.Aggregate(matched.Rows)
		if DebugEnabled() {
			logging.LogEvent("aggregated %d matching rows into %d entries", summary.Rows, summary.Entries)
		}

		w := csv.NewWriter(cmd.OutOrStdout())
		if err := w.Write([]string{"accuracy", "accuracy_aligned", "accuracy_stripped"}); err != nil {
			return err
		}
		if err := w.Write([]string{
			fmt.Sprintf("%.6f", summary.Correct*100),
			fmt.Sprintf("%.6f", summary.Aligned*100),
			fmt.Sprintf("%.6f", summary.Stripped*100),
		}); err != nil {
			return err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Total entries: %d\n", summary.Rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aggregateCmd)
}
