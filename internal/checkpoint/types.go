// internal/checkpoint/types.go
// Package checkpoint reads and analyzes the result CSV files written by the
// merge-resolution benchmark harness.
package checkpoint

// Column names used by the harness's checkpoint files. Result rows carry one
// evaluation attempt per (entry, model) pair.
const (
	ColEntryIndex        = "entry_index"
	ColModel             = "model"
	ColCorrect           = "correct"
	ColCorrectAligned    = "correct_aligned"
	ColCorrectStripped   = "correct_stripped"
	ColDuration          = "duration"
	ColTokens            = "tokens"
	ColLogprob           = "logprob"
	ColFailedPatchedCode = "failed_patched_code"
	ColError             = "error"
	ColPatchCommitHash   = "patch_commit_hash"
	ColCodeCommitHash    = "code_commit_hash"
)

// Row maps column names to raw cell values for one CSV record. Cells are kept
// as strings; outcome columns compare by exact string match, never parsed
// booleans.
type Row map[string]string

// True reports whether the field's value is exactly the string "true".
func (r Row) True(field string) bool {
	return r[field] == "true"
}

// Table holds the rows of a CSV file along with the header order the file was
// read with.
type Table struct {
	Header []string
	Rows   []Row
}

// Filter returns a table with the same header containing only the rows keep
// reports true for, preserving row order.
func (t Table) Filter(keep func(Row) bool) Table {
	out := Table{Header: t.Header}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
