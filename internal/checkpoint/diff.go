// internal/checkpoint/diff.go
package checkpoint

import (
	"sort"
)

// MissingFields returns the requested field names absent from the union of
// column names across both tables' rows, deduplicated and sorted for stable
// error messages. A table with no data rows contributes no columns.
func MissingFields(fields []string, tables ...Table) []string {
	known := make(map[string]bool)
	for _, t := range tables {
		if len(t.Rows) == 0 {
			continue
		}
		for _, name := range t.Header {
			known[name] = true
		}
	}

	reported := make(map[string]bool)
	var missing []string
	for _, f := range fields {
		if !known[f] && !reported[f] {
			reported[f] = true
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	return missing
}

// DifferingRows compares two result tables grouped by entry_index and collects
// one row per entry whose outcome flipped between the runs: an entry qualifies
// when the inspected rows hold "false" on every requested field in the first
// run and "true" on every requested field in the second. The recorded row is
// the last of the second run's group.
//
// Entries are skipped when the two groups have different sizes, or when either
// group disagrees internally on a requested field. Row pairs are inspected in
// position order and inspection stops at the first pair that disqualifies
// either side, so rows past a mixed pair are never examined. The one-sided
// checks (first run against "false" only, second against "true" only) are the
// comparison's long-standing observed behavior and are kept as-is.
func DifferingRows(rows1, rows2 []Row, fields []string) []Row {
	groups1 := GroupByEntry(rows1)
	groups2 := GroupByEntry(rows2)

	var differing []Row
	for _, idx := range groups1.UnionOrder(groups2) {
		group1 := groups1.Groups[idx]
		group2 := groups2.Groups[idx]
		if len(group1) != len(group2) {
			continue
		}
		if !agreesOnFields(group1, fields) || !agreesOnFields(group2, fields) {
			continue
		}

		difference1, difference2 := true, true
		for i := range group1 {
			if anyFieldNot(group1[i], fields, "false") {
				difference1 = false
				break
			}
			if anyFieldNot(group2[i], fields, "true") {
				difference2 = false
				break
			}
		}
		if difference1 && difference2 {
			differing = append(differing, group2[len(group2)-1])
		}
	}
	return differing
}

// agreesOnFields reports whether every row in the group matches the group's
// first row on all requested fields.
func agreesOnFields(group []Row, fields []string) bool {
	first := group[0]
	for _, row := range group[1:] {
		for _, field := range fields {
			if row[field] != first[field] {
				return false
			}
		}
	}
	return true
}

// anyFieldNot reports whether any requested field in the row holds a value
// other than want.
func anyFieldNot(row Row, fields []string, want string) bool {
	for _, field := range fields {
		if row[field] != want {
			return true
		}
	}
	return false
}
