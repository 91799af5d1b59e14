// internal/cli/browse.go
package ckpoint

import (
	"github.com/spf13/cobra"

	"github.com/prajaktaborse1234/synthmerge/internal/browse"
	"github.com/prajaktaborse1234/synthmerge/internal/checkpoint"
	"github.com/prajaktaborse1234/synthmerge/internal/logging"
)

type browseOptions struct {
	modelPattern string
}

var browseOpts browseOptions

// browseCmd opens an interactive viewer over a checkpoint file.
var browseCmd = &cobra.Command{
	Use:   "browse <results.csv>",
	Short: "Interactively browse checkpoint entries",
	Long: `Open a terminal UI over a checkpoint file. The entry list shows each
entry_index with its per-model outcomes; selecting an entry shows the full
rows, including error messages and failed patch output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := checkpoint.ReadFile(args[0])
		if err != nil {
			return err
		}

		if browseOpts.modelPattern != "" {
			pattern, err := checkpoint.CompileModelPattern(browseOpts.modelPattern)
			if err != nil {
				return err
			}
			table = table.Filter(func(r checkpoint.Row) bool {
				return pattern.MatchString(r[checkpoint.ColModel])
			})
		}
		if DebugEnabled() {
			logging.LogEvent("browsing %s: %d rows after filtering", args[0], len(table.Rows))
		}

		return browse.Run(args[0], table)
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseOpts.modelPattern, "model", "", "Only show rows whose model matches this pattern")

	rootCmd.AddCommand(browseCmd)
}
