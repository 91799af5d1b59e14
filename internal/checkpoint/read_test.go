// internal/checkpoint/read_test.go
package checkpoint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := writeCSV(t, "checkpoint.csv", strings.Join([]string{
		"entry_index,model,correct",
		"0,llama3,true",
		"1,qwen2,false",
	}, "\n"))

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if len(table.Header) != 3 || table.Header[0] != ColEntryIndex {
		t.Fatalf("unexpected header: %v", table.Header)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][ColModel] != "llama3" || !table.Rows[0].True(ColCorrect) {
		t.Fatalf("unexpected first row: %v", table.Rows[0])
	}
	if table.Rows[1].True(ColCorrect) {
		t.Fatalf("expected second row incorrect: %v", table.Rows[1])
	}
}

func TestReadFileShortRecord(t *testing.T) {
	path := writeCSV(t, "short.csv", strings.Join([]string{
		"entry_index,model,correct,error",
		"0,llama3",
	}, "\n"))

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	row := table.Rows[0]
	if row[ColModel] != "llama3" {
		t.Fatalf("expected model cell, got %q", row[ColModel])
	}
	if row[ColCorrect] != "" || row.True(ColCorrect) {
		t.Fatalf("expected missing correct cell to read blank, got %q", row[ColCorrect])
	}
}

func TestReadFileQuotedBlob(t *testing.T) {
	blob := "if a {\n\treturn b, nil\n}"
	path := writeCSV(t, "blob.csv", strings.Join([]string{
		"entry_index,failed_patched_code",
		`0,"` + blob + `"`,
	}, "\n"))

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got := table.Rows[0][ColFailedPatchedCode]; got != blob {
		t.Fatalf("expected quoted blob preserved, got %q", got)
	}
}

func TestReadFileLargeCell(t *testing.T) {
	blob := strings.Repeat("x", 256*1024)
	path := writeCSV(t, "large.csv", "entry_index,failed_patched_code\n0,"+blob+"\n")

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got := len(table.Rows[0][ColFailedPatchedCode]); got != len(blob) {
		t.Fatalf("expected %d byte cell, got %d", len(blob), got)
	}
}

func TestReadFileEmpty(t *testing.T) {
	path := writeCSV(t, "empty.csv", "")

	table, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if len(table.Header) != 0 || len(table.Rows) != 0 {
		t.Fatalf("expected empty table, got %v", table)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFilesConcatenatesInOrder(t *testing.T) {
	first := writeCSV(t, "first.csv", "entry_index,model\n0,llama3\n1,llama3\n")
	second := writeCSV(t, "second.csv", "entry_index,model\n0,qwen2\n")

	table, err := ReadFiles([]string{first, second})
	if err != nil {
		t.Fatalf("ReadFiles error: %v", err)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 combined rows, got %d", len(table.Rows))
	}
	if table.Rows[2][ColModel] != "qwen2" {
		t.Fatalf("expected second file's rows last, got %v", table.Rows[2])
	}
	if len(table.Header) != 2 {
		t.Fatalf("expected header from first file, got %v", table.Header)
	}
}

func TestCompileModelPatternMatchesAtStart(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{pattern: "gpt", input: "gpt-4", want: true},
		{pattern: "gpt", input: "my-gpt-4", want: false},
		{pattern: "gpt.*", input: "gpt-4", want: true},
		{pattern: "llama|qwen", input: "qwen2-72b", want: true},
		{pattern: "llama|qwen", input: "abcqwen", want: false},
		{pattern: "", input: "anything", want: true},
	}

	for _, tt := range tests {
		re, err := CompileModelPattern(tt.pattern)
		if err != nil {
			t.Fatalf("CompileModelPattern(%q) error: %v", tt.pattern, err)
		}
		if got := re.MatchString(tt.input); got != tt.want {
			t.Fatalf("pattern %q against %q: got %v want %v", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func TestCompileModelPatternRejectsInvalid(t *testing.T) {
	for _, pattern := range []string{"(", "a)(b"} {
		if _, err := CompileModelPattern(pattern); err == nil {
			t.Fatalf("expected error for pattern %q", pattern)
		}
	}
}
