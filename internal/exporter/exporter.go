// Package exporter drives the ManicTime command-line exporter.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrExportFailed indicates the exporter could not be started or exited non-zero.
var ErrExportFailed = errors.New("manictime export failed")

// DefaultView is the data view exported when none is configured.
const DefaultView = "ManicTime/Applications"

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Exporter writes one day of tracker data to a CSV file.
type Exporter struct {
	exe    string
	view   string
	runner Runner
}

// New creates an Exporter for the executable at exe. An empty view uses
// DefaultView; a nil runner uses ExecRunner.
func New(exe, view string, runner Runner) *Exporter {
	if view == "" {
		view = DefaultView
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Exporter{exe: exe, view: view, runner: runner}
}

// FileName returns the export file name for date.
func FileName(date time.Time) string {
	return "ManicTime_Export_" + date.Format("2006-01-02") + ".csv"
}

// Args returns the exporter arguments for a single-day export of date into outPath.
func (e *Exporter) Args(outPath string, date time.Time) []string {
	d := date.Format("2006-01-02")
	return []string{"export", e.view, outPath, "/fd:" + d, "/td:" + d}
}

// Export runs the exporter for date, writing to dir/FileName(date), and
// returns the written path.
func (e *Exporter) Export(ctx context.Context, dir string, date time.Time) (string, error) {
	outPath := filepath.Join(dir, FileName(date))
	out, err := e.runner.Run(ctx, e.exe, e.Args(outPath, date)...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return "", fmt.Errorf("%w: %v: %s", ErrExportFailed, err, msg)
		}
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return outPath, nil
}
