// internal/testset/testset.go
// Package testset cross-references benchmark result rows against the test-set
// CSV the benchmark entries were generated from.
package testset

import (
	"fmt"
	"strings"

	"github.com/prajaktaborse1234/synthmerge/internal/checkpoint"
)

// ColDescription is the test-set column embedding the source commit hashes of
// each entry.
const ColDescription = "Description"

// CrossReference resolves each differing result row to the test-set row whose
// Description contains the result's patch_commit_hash as a literal substring,
// scanning the test set in file order and taking the first match. A row with
// no match falls back to the result row itself. Emitting requires the test
// set to supply the output header, so a test set with no rows, or without the
// Description column, is an error when differing is non-empty.
func CrossReference(ref checkpoint.Table, differing []checkpoint.Row) ([]checkpoint.Row, error) {
	if len(differing) == 0 {
		return nil, nil
	}
	if len(ref.Rows) == 0 {
		return nil, fmt.Errorf("test set has no rows to cross-reference against")
	}
	if !hasColumn(ref.Header, ColDescription) {
		return nil, fmt.Errorf("test set is missing the %s column", ColDescription)
	}

	out := make([]checkpoint.Row, 0, len(differing))
	for _, row := range differing {
		out = append(out, resolve(ref, row))
	}
	return out, nil
}

func resolve(ref checkpoint.Table, row checkpoint.Row) checkpoint.Row {
	commit := row[checkpoint.ColPatchCommitHash]
	for _, refRow := range ref.Rows {
		if strings.Contains(refRow[ColDescription], commit) {
			return refRow
		}
	}
	return row
}

func hasColumn(header []string, name string) bool {
	for _, col := range header {
		if col == name {
			return true
		}
	}
	return false
}
