package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/dailylog/internal/domain"
)

// UnknownDate labels documents whose export file name carries no date.
const UnknownDate = "日付不明"

// Options controls document assembly.
type Options struct {
	Date         string
	GanttMax     int // 0 shows every record
	TableMax     int // 0 shows every record
	TableColumns []string
}

// DefaultTableColumns are the columns listed when none are configured.
var DefaultTableColumns = []string{domain.ColumnProcess, domain.ColumnStart, domain.ColumnEnd, domain.ColumnDuration}

// DefaultOptions returns the 30-entry gantt and 20-row table layout.
func DefaultOptions(date string) Options {
	return Options{
		Date:         date,
		GanttMax:     30,
		TableMax:     20,
		TableColumns: DefaultTableColumns,
	}
}

// Document assembles the pie, gantt and table blocks into one Markdown text,
// adding a notice under each block that was truncated.
func Document(records []domain.Record, opts Options) string {
	date := opts.Date
	if date == "" {
		date = UnknownDate
	}
	columns := opts.TableColumns
	if len(columns) == 0 {
		columns = DefaultTableColumns
	}
	total := len(records)

	var b strings.Builder

	b.WriteString("--- アプリケーション別 総利用時間 (Mermaid Pie Chart) ---\n")
	writeFence(&b, Pie(records, date+" アプリケーション別 総利用時間"))
	b.WriteString("\n" + strings.Repeat("=", 50) + "\n\n")

	fmt.Fprintf(&b, "--- %s 作業タイムライン (Mermaid Gantt Chart - %s) ---\n", date, scopeLabel(opts.GanttMax))
	writeFence(&b, Gantt(records, date, opts.GanttMax))
	if shown, ok := truncated(total, opts.GanttMax); ok {
		fmt.Fprintf(&b, "\n注意: ガントチャートはデータが多いため、全 %d 件中、最初の %d 件のみ表示しています。\n", total, shown)
		b.WriteString("全件表示するには `--gantt-max 0` を指定してください（非常に長くなる可能性があります）。\n\n")
	}

	fmt.Fprintf(&b, "--- %s アプリ利用ログ (Mermaid Table - %s) ---\n", date, scopeLabel(opts.TableMax))
	writeFence(&b, Table(records, columns, date+" アプリ利用ログ", opts.TableMax))
	if shown, ok := truncated(total, opts.TableMax); ok {
		fmt.Fprintf(&b, "\n注意: 表はデータが多いため、全 %d 件中、最初の %d 件のみ表示しています。全件表示するには `--table-max` を変更してください。\n", total, shown)
	}

	return b.String()
}

// WriteFile renders Document and stores it at path.
func WriteFile(path string, records []domain.Record, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating diagram directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Document(records, opts)), 0644); err != nil {
		return fmt.Errorf("writing diagrams: %w", err)
	}
	return nil
}

// FileName returns the default diagram file name for date.
func FileName(date string) string {
	return "ManicTime_Diagrams_" + date + ".md"
}

// DateFromFilename extracts the date from "ManicTime_Export_<date>.csv".
func DateFromFilename(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '_')
	if i < 0 {
		return UnknownDate
	}
	date := base[i+1:]
	if j := strings.IndexByte(date, '.'); j >= 0 {
		date = date[:j]
	}
	if date == "" {
		return UnknownDate
	}
	return date
}

func writeFence(b *strings.Builder, block string) {
	b.WriteString("```mermaid\n")
	b.WriteString(block)
	b.WriteString("\n```\n")
}

func scopeLabel(limit int) string {
	if limit > 0 {
		return fmt.Sprintf("先頭%d件", limit)
	}
	return "全件"
}

func truncated(total, limit int) (int, bool) {
	if limit > 0 && total > limit {
		return limit, true
	}
	return total, false
}
