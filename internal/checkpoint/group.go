// internal/checkpoint/group.go
package checkpoint

// EntryGroups partitions rows by their entry_index value. Order records each
// index the first time it is seen; membership is keyed by exact string
// equality of the index cell.
type EntryGroups struct {
	Order  []string
	Groups map[string][]Row
}

// GroupByEntry partitions rows by entry_index, preserving first-seen order.
func GroupByEntry(rows []Row) EntryGroups {
	g := EntryGroups{Groups: make(map[string][]Row)}
	for _, row := range rows {
		idx := row[ColEntryIndex]
		if _, seen := g.Groups[idx]; !seen {
			g.Order = append(g.Order, idx)
		}
		g.Groups[idx] = append(g.Groups[idx], row)
	}
	return g
}

// Len returns the number of distinct entry indexes.
func (g EntryGroups) Len() int { return len(g.Order) }

// UnionOrder returns g's indexes in first-seen order followed by the indexes
// present only in other, in other's first-seen order.
func (g EntryGroups) UnionOrder(other EntryGroups) []string {
	union := make([]string, 0, len(g.Order)+len(other.Order))
	union = append(union, g.Order...)
	for _, idx := range other.Order {
		if _, ok := g.Groups[idx]; !ok {
			union = append(union, idx)
		}
	}
	return union
}
