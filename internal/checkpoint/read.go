// internal/checkpoint/read.go
package checkpoint

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
)

// ReadFile parses one CSV file into a Table. The first record is the header;
// later records are keyed by header position. A record shorter than the header
// leaves the trailing columns unset (lookups yield ""), a longer record has
// the extra cells dropped. Cell size is unbounded; blank lines produce no row.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("unable to open results file %s: %w", path, err)
	}
	defer f.Close()

	t, err := readTable(f)
	if err != nil {
		return Table{}, fmt.Errorf("unable to parse results file %s: %w", path, err)
	}
	return t, nil
}

// ReadFiles reads every named file and concatenates their rows in argument
// order. The combined header is the first file's.
func ReadFiles(paths []string) (Table, error) {
	var combined Table
	for i, path := range paths {
		t, err := ReadFile(path)
		if err != nil {
			return Table{}, err
		}
		if i == 0 {
			combined.Header = t.Header
		}
		combined.Rows = append(combined.Rows, t.Rows...)
	}
	return combined, nil
}

func readTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	// Result files mix wide text blobs with short rows; don't enforce a
	// uniform field count.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, err
	}

	table := Table{Header: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, err
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// CompileModelPattern compiles a model-name pattern with match-at-start
// semantics: anchored to the beginning of the name, open at the end, so "gpt"
// matches "gpt-4" but not "my-gpt-4". The raw pattern is checked on its own
// first so a malformed pattern fails with its own compile error rather than
// one distorted by the anchor wrapper.
func CompileModelPattern(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, fmt.Errorf("invalid model pattern: %w", err)
	}
	return regexp.Compile(`\A(?:` + pattern + `)`)
}
