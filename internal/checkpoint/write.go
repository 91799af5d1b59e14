// internal/checkpoint/write.go
package checkpoint

import (
	"encoding/csv"
	"io"
)

// WriteRows writes the header and then each row's cells in header order to w
// as CSV. Columns a row lacks are written blank; row cells outside the header
// are dropped.
func WriteRows(w io.Writer, header []string, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, name := range header {
			record[i] = row[name]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
