package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/report"
)

// TopActivities is how many activities the console summary lists.
const TopActivities = report.TopN

const (
	labelWidth = 48
	barWidth   = 20
)

// Summary is the console view of one processed day.
type Summary struct {
	Date    string
	Totals  analysis.Summary
	Records int
	Skipped int
	Files   []File
}

// File is one artifact a run wrote.
type File struct {
	Label string
	Path  string
}

// FormatSummary renders totals, the top activities, per-process time and
// the files written.
func FormatSummary(s Summary) string {
	var b strings.Builder

	b.WriteString(Header("Daily log " + s.Date))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s\n",
		Bold("Total"),
		report.FormatHoursMinutes(s.Totals.TotalSeconds),
		Dim(fmt.Sprintf("(%d records, %d skipped)", s.Records, s.Skipped)),
	)
	if s.Skipped > 0 {
		b.WriteString(Warn(fmt.Sprintf("%d rows could not be parsed; see the log for line numbers", s.Skipped)))
		b.WriteString("\n")
	}

	if s.Records == 0 {
		b.WriteString("\n")
		b.WriteString(Dim("No records."))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(Header("Top activities"))
		b.WriteString("\n")
		b.WriteString(activityTable(s.Totals.TopActivities(TopActivities)))

		b.WriteString("\n")
		b.WriteString(Header("Processes"))
		b.WriteString("\n")
		b.WriteString(processTable(s.Totals))
	}

	if len(s.Files) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Files"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(s.Files))
		for _, f := range s.Files {
			rows = append(rows, []string{f.Label, f.Path})
		}
		b.WriteString(RenderTable([]string{"Output", "Path"}, rows))
	}

	return b.String()
}

func activityTable(entries []analysis.Entry) string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			shorten(e.Label, labelWidth),
			report.FormatHoursMinutes(e.Seconds),
		})
	}
	return RenderTable([]string{"#", "Activity", "Time"}, rows, 0, 2)
}

func processTable(s analysis.Summary) string {
	entries := s.TopProcesses(0)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		share := 0.0
		if s.TotalSeconds > 0 {
			share = float64(e.Seconds) / float64(s.TotalSeconds)
		}
		rows = append(rows, []string{
			shorten(e.Label, labelWidth),
			report.FormatHoursMinutes(e.Seconds),
			ShareBar(share, barWidth),
		})
	}
	return RenderTable([]string{"Process", "Time", "Share"}, rows, 1)
}

// shorten cuts s to n runes, marking the cut with an ellipsis.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
