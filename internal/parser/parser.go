// Package parser reads tracker export files into domain records.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/dailylog/internal/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrMissingColumn indicates the header lacks a required column name.
	// It fails the whole run, unlike a RowError.
	ErrMissingColumn = errors.New("required column missing from header")

	// ErrEmptyInput indicates the file has no header row at all.
	ErrEmptyInput = errors.New("export file is empty")

	// ErrMissingField indicates a data row is shorter than the header needs.
	ErrMissingField = errors.New("row is missing required fields")

	// ErrBadTimestamp indicates a Start or End cell is not a local date-time.
	ErrBadTimestamp = errors.New("unparseable timestamp")
)

// RowError describes one data row that was skipped.
type RowError struct {
	Line int // 1-based line in the source file
	Row  []string
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Result is the outcome of parsing one export.
type Result struct {
	// Raw is the decoded file text with any byte-order mark removed.
	Raw       string
	Header    []string
	Records   []domain.Record
	Skipped   []*RowError
	TotalRows int
}

// ParseFile opens path and parses it. A missing file is reported with an
// error satisfying errors.Is(err, os.ErrNotExist).
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes r (UTF-8 or BOM-marked UTF-16, optional BOM stripped) and
// converts each data row into a Record. Rows that cannot be converted are
// collected in Result.Skipped and do not abort parsing.
func Parse(r io.Reader) (*Result, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("decoding export: %w", err)
	}

	res := &Result{Raw: strings.ReplaceAll(string(data), "\r\n", "\n")}

	cr := csv.NewReader(strings.NewReader(res.Raw))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	res.Header = header

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("reading export: %w", err)
			}
			res.TotalRows++
			res.Skipped = append(res.Skipped, &RowError{Line: perr.StartLine, Row: row, Err: err})
			continue
		}
		res.TotalRows++
		line, _ := cr.FieldPos(0)

		rec, err := cols.record(header, row)
		if err != nil {
			res.Skipped = append(res.Skipped, &RowError{Line: line, Row: row, Err: err})
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// columns holds the header position of each required field.
type columns struct {
	name, start, end, duration, process int
}

func locateColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := idx[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	c := columns{
		name:     lookup(domain.ColumnName),
		start:    lookup(domain.ColumnStart),
		end:      lookup(domain.ColumnEnd),
		duration: lookup(domain.ColumnDuration),
		process:  lookup(domain.ColumnProcess),
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return c, nil
}

func (c columns) record(header, row []string) (domain.Record, error) {
	maxIdx := max(c.name, c.start, c.end, c.duration, c.process)
	if len(row) <= maxIdx {
		return domain.Record{}, fmt.Errorf("%w: got %d of %d", ErrMissingField, len(row), maxIdx+1)
	}

	start, err := domain.ParseTimestamp(row[c.start])
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: Start %q: %v", ErrBadTimestamp, row[c.start], err)
	}
	end, err := domain.ParseTimestamp(row[c.end])
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: End %q: %v", ErrBadTimestamp, row[c.end], err)
	}

	fields := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(row) {
			if _, seen := fields[h]; !seen {
				fields[h] = row[i]
			}
		}
	}

	return domain.Record{
		Name:     row[c.name],
		Start:    start,
		End:      end,
		Duration: row[c.duration],
		Process:  row[c.process],
		Fields:   fields,
	}, nil
}
