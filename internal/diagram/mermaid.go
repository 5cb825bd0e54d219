// Package diagram renders parsed records as Mermaid pie, gantt and table
// blocks for embedding in notes.
package diagram

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/domain"
)

// Escape stringifies v and replaces double quotes with &quot;.
func Escape(v any) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return strings.ReplaceAll(s, `"`, "&quot;")
}

// Pie renders total seconds per process, largest first. Processes with no
// recorded time are left out.
func Pie(records []domain.Record, title string) string {
	var b strings.Builder
	b.WriteString("pie\n")
	fmt.Fprintf(&b, "    title \"%s\"\n", Escape(title))
	for _, e := range analysis.Aggregate(records).TopProcesses(0) {
		if e.Seconds <= 0 {
			continue
		}
		fmt.Fprintf(&b, "    \"%s\" : %d\n", Escape(e.Label), e.Seconds)
	}
	return b.String()
}

// Gantt renders records as a timeline grouped into one section per process,
// in first-seen order. maxEntries > 0 keeps only that many leading records.
// Records without positive duration produce no task line, but their process
// still gets a section header.
func Gantt(records []domain.Record, title string, maxEntries int) string {
	var b strings.Builder
	b.WriteString("gantt\n")
	b.WriteString("    dateFormat  YYYY-MM-DDTHH:mm:ss\n")
	fmt.Fprintf(&b, "    title \"%s 作業タイムライン\"\n", Escape(title))
	b.WriteString("    axisFormat %H:%M\n\n")

	shown := truncate(records, maxEntries)

	var order []string
	byProcess := make(map[string][]domain.Record)
	for _, r := range shown {
		if _, ok := byProcess[r.Process]; !ok {
			order = append(order, r.Process)
		}
		byProcess[r.Process] = append(byProcess[r.Process], r)
	}

	for _, process := range order {
		fmt.Fprintf(&b, "    section %s\n", Escape(process))
		for _, r := range byProcess[process] {
			secs := r.DurationSeconds()
			if secs <= 0 {
				continue
			}
			fmt.Fprintf(&b, "    %s :%s,%ds\n", Escape(r.Name), r.Start.Format(domain.TimestampLayout), secs)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Table renders the given columns of up to maxRows records, in input order.
// maxRows <= 0 renders every record.
func Table(records []domain.Record, columns []string, title string, maxRows int) string {
	var b strings.Builder
	b.WriteString("table\n")
	fmt.Fprintf(&b, "    title %s\n", Escape(title))

	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = quote(c)
	}
	fmt.Fprintf(&b, "    %s\n", strings.Join(cells, " "))

	for _, r := range truncate(records, maxRows) {
		for i, c := range columns {
			cells[i] = quote(r.Field(c))
		}
		fmt.Fprintf(&b, "    %s\n", strings.Join(cells, " "))
	}
	return b.String()
}

func quote(v any) string {
	return `"` + Escape(v) + `"`
}

func truncate(records []domain.Record, n int) []domain.Record {
	if n > 0 && len(records) > n {
		return records[:n]
	}
	return records
}
