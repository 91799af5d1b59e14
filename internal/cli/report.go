// internal/cli/report.go
package ckpoint

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/prajaktaborse1234/synthmerge/internal/checkpoint"
	"github.com/prajaktaborse1234/synthmerge/internal/logging"
)

type reportOptions struct {
	maxEntries int
}

var reportOpts reportOptions

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	reportModelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	goodAccuracy     = color.New(color.FgGreen).SprintFunc()
	poorAccuracy     = color.New(color.FgRed).SprintFunc()
)

// reportCmd prints per-model statistics for one or more checkpoint files.
var reportCmd = &cobra.Command{
	Use:   "report <results.csv> [results.csv ...]",
	Short: "Per-model accuracy statistics for checkpoint files",
	Long: `Read checkpoint files and print per-model statistics: accuracy for the
plain, aligned and stripped comparisons, error rate, and average tokens,
duration and answer confidence, ranked by accuracy.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		combined, err := checkpoint.ReadFiles(args)
		if err != nil {
			return err
		}

		stats, err := checkpoint.ComputeModelStats(combined.Rows, reportOpts.maxEntries)
		if err != nil {
			return err
		}
		if cfg := GetConfig(); cfg != nil && cfg.Debug {
			logging.LogEvent("computed stats for %d models from %d rows", len(stats), len(combined.Rows))
			pp.Fprintln(cmd.ErrOrStderr(), stats)
		}

		writeReport(cmd.OutOrStdout(), stats)
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportOpts.maxEntries, "max-entries", 0, "Only count rows with entry_index below this value (0 = all)")

	rootCmd.AddCommand(reportCmd)
}

// writeReport renders the per-model sections in ranking order.
func writeReport(w io.Writer, stats []checkpoint.ModelStats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, reportTitleStyle.Render("=== MODEL ACCURACY RESULTS ==="))
	if len(stats) == 0 {
		fmt.Fprintln(w, "No results available")
		return
	}

	logprobLabels := [...]string{
		"Average logprob",
		"Average logprob (errors)",
		"Average logprob (incorrect)",
		"Average logprob (stripped)",
		"Average logprob (aligned)",
		"Average logprob (correct)",
	}

	for _, s := range stats {
		fmt.Fprintln(w)
		fmt.Fprintln(w, reportModelStyle.Render("Model: "+s.Model))

		accuracyLine := fmt.Sprintf("  Accuracy: %.2f%% (%d/%d)", s.Accuracy*100, s.Correct, s.Total)
		if s.Accuracy >= 0.5 {
			fmt.Fprintln(w, goodAccuracy(accuracyLine))
		} else {
			fmt.Fprintln(w, poorAccuracy(accuracyLine))
		}

		fmt.Fprintf(w, "  Accuracy (aligned): %.2f%% (%d/%d)\n", s.AccuracyAligned*100, s.CorrectAligned, s.Total)
		fmt.Fprintf(w, "  Accuracy (stripped): %.2f%% (%d/%d)\n", s.AccuracyStripped*100, s.CorrectStripped, s.Total)
		fmt.Fprintf(w, "  Error Rate: %.2f%% (%d/%d)\n", s.ErrorRate*100, s.Errors, s.Total)
		if s.TokenSamples > 0 {
			fmt.Fprintf(w, "  Average tokens: %.2f\n", s.AvgTokens)
		}
		fmt.Fprintf(w, "  Average duration: %.2f s\n", s.AvgDuration)
		for b, label := range logprobLabels {
			if s.LogprobSamples[b] > 0 {
				fmt.Fprintf(w, "  %s: %.1f\n", label, checkpoint.LogprobToProb(s.AvgLogprob[b]))
			}
		}
	}
}
