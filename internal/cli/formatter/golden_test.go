package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func sampleSummary() Summary {
	records := []domain.Record{
		{Name: "main.go - Cursor", Process: "Cursor", Duration: "0:30:00"},
		{Name: "Inbox - Vivaldi", Process: "Vivaldi", Duration: "0:05:00"},
		{Name: "main.go - Cursor", Process: "Cursor", Duration: "0:10:00"},
	}
	return Summary{
		Date:    "2025-05-20",
		Totals:  analysis.Aggregate(records),
		Records: len(records),
		Skipped: 1,
		Files: []File{
			{Label: "export", Path: "/vault/ManicTime_Export_2025-05-20.csv"},
			{Label: "report", Path: "/vault/日報_2025-05-20.md"},
		},
	}
}

func TestFormatSummary_Golden(t *testing.T) {
	goldenTest(t, "summary", FormatSummary(sampleSummary()))
}

func TestFormatSummary_Sections(t *testing.T) {
	got := stripANSI(FormatSummary(sampleSummary()))

	assert.Contains(t, got, "DAILY LOG 2025-05-20")
	assert.Contains(t, got, "0時間45分")
	assert.Contains(t, got, "(3 records, 1 skipped)")
	assert.Contains(t, got, "1 rows could not be parsed")
	assert.Less(t, strings.Index(got, "main.go - Cursor"), strings.Index(got, "Inbox - Vivaldi"))
	assert.Contains(t, got, "0時間40分")
	assert.Contains(t, got, " 89%")
	assert.Contains(t, got, "/vault/日報_2025-05-20.md")
}

func TestFormatSummary_NoRecords(t *testing.T) {
	got := stripANSI(FormatSummary(Summary{Date: "2025-05-20"}))

	assert.Contains(t, got, "No records.")
	assert.NotContains(t, got, "TOP ACTIVITIES")
	assert.NotContains(t, got, "FILES")
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "abc", shorten("abc", 3))
	assert.Equal(t, "ab…", shorten("abcd", 3))
	assert.Equal(t, "日報…", shorten("日報テスト", 3))
}
