package domain

import (
	"strconv"
	"strings"
	"time"
)

// Column names every export must carry.
const (
	ColumnName     = "Name"
	ColumnStart    = "Start"
	ColumnEnd      = "End"
	ColumnDuration = "Duration"
	ColumnProcess  = "Process"
)

// RequiredColumns lists the header names a parser must locate, in the order
// the prompt documents them.
var RequiredColumns = []string{ColumnName, ColumnStart, ColumnEnd, ColumnDuration, ColumnProcess}

// Record is one logged interval of window usage from a tracker export.
// Duration is the exporter's own H:M:S string and is authoritative over End-Start.
type Record struct {
	Name     string
	Start    time.Time
	End      time.Time
	Duration string
	Process  string

	// Fields holds every raw cell of the source row keyed by header name.
	Fields map[string]string
}

// DurationSeconds returns the parsed Duration, or 0 when it is malformed.
func (r Record) DurationSeconds() int {
	return ParseDuration(r.Duration)
}

// Field returns the raw cell for column, falling back to the typed fields
// when the record was built without source cells.
func (r Record) Field(column string) string {
	if v, ok := r.Fields[column]; ok {
		return v
	}
	switch column {
	case ColumnName:
		return r.Name
	case ColumnStart:
		return r.Start.Format(TimestampLayout)
	case ColumnEnd:
		return r.End.Format(TimestampLayout)
	case ColumnDuration:
		return r.Duration
	case ColumnProcess:
		return r.Process
	}
	return ""
}

// ParseDuration converts "H:M:S" (or the shorter "M:S" and "S" forms) into
// seconds. Any malformed or out-of-range input yields 0.
func ParseDuration(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return 0
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0
		}
		next := total*60 + n
		if next/60 < total { // overflow
			return 0
		}
		total = next
	}
	return total
}

// TimestampLayout is the canonical local date-time form, also used as the
// gantt dateFormat.
const TimestampLayout = "2006-01-02T15:04:05"

var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TrimFraction drops a fractional-seconds suffix introduced by '.'.
func TrimFraction(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseTimestamp parses an exporter date-time as local time. The fractional
// suffix is discarded and no timezone conversion is applied.
func ParseTimestamp(s string) (time.Time, error) {
	v := strings.TrimSpace(TrimFraction(s))
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, v, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
