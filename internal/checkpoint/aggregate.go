// internal/checkpoint/aggregate.go
package checkpoint

import (
	"github.com/prajaktaborse1234/synthmerge/internal/util"
)

// AccuracySummary holds the aggregate accuracy ratios computed over a set of
// result rows. Ratios are fractions in [0, 1]; Rows is the row count before
// grouping, Entries the number of distinct entry groups.
type AccuracySummary struct {
	Rows     int
	Entries  int
	Correct  float64
	Aligned  float64
	Stripped float64
}

// Aggregate groups rows by entry_index and computes, for each outcome column,
// the share of entries with at least one "true" cell. An entry counts as
// correct for a column when any of its rows has that cell exactly "true".
// Zero entries yields all-zero ratios rather than a division error.
func Aggregate(rows []Row) AccuracySummary {
	groups := GroupByEntry(rows)
	summary := AccuracySummary{Rows: len(rows), Entries: groups.Len()}
	if groups.Len() == 0 {
		return summary
	}

	var correct, aligned, stripped int
	for _, idx := range groups.Order {
		group := groups.Groups[idx]
		correct += util.BoolToInt(anyTrue(group, ColCorrect))
		aligned += util.BoolToInt(anyTrue(group, ColCorrectAligned))
		stripped += util.BoolToInt(anyTrue(group, ColCorrectStripped))
	}

	total := float64(groups.Len())
	summary.Correct = float64(correct) / total
	summary.Aligned = float64(aligned) / total
	summary.Stripped = float64(stripped) / total
	return summary
}

func anyTrue(group []Row, field string) bool {
	for _, row := range group {
		if row.True(field) {
			return true
		}
	}
	return false
}
