// internal/cli/diff.go
package ckpoint

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prajaktaborse1234/synthmerge/internal/checkpoint"
	"github.com/prajaktaborse1234/synthmerge/internal/logging"
	"github.com/prajaktaborse1234/synthmerge/internal/testset"
)

// diffCmd reports entries whose outcome flipped between two checkpoint files.
var diffCmd = &cobra.Command{
	Use:   "diff <test.csv> <file1.csv> <file2.csv> <field1> [field2 ...]",
	Short: "Report entries that flipped between two checkpoint files",
	Long: `Group two checkpoint files by entry_index and report each entry whose
requested fields read "false" throughout the first file and "true" throughout
the second. Reported rows are resolved against the test-set CSV by finding
the test row whose Description mentions the result's patch_commit_hash.`,
	Args: cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		testFile, file1, file2, fields := args[0], args[1], args[2], args[3:]

		results1, err := checkpoint.ReadFile(file1)
		if err != nil {
			return err
		}
		results2, err := checkpoint.ReadFile(file2)
		if err != nil {
			return err
		}
		ref, err := checkpoint.ReadFile(testFile)
		if err != nil {
			return err
		}

		if missing := checkpoint.MissingFields(fields, results1, results2); len(missing) > 0 {
			return fmt.Errorf("fields not found in CSV files: %s", strings.Join(missing, ", "))
		}

		differing := checkpoint.DifferingRows(results1.Rows, results2.Rows, fields)
		emitted, err := testset.CrossReference(ref, differing)
		if err != nil {
			return err
		}
		if DebugEnabled() {
			logging.LogEvent("compared %d and %d rows: %d differing entries", len(results1.Rows), len(results2.Rows), len(emitted))
		}

		if len(emitted) > 0 {
			if err := checkpoint.WriteRows(cmd.OutOrStdout(), ref.Header, emitted); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.ErrOrStderr(), len(emitted))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
