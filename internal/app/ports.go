package app

import (
	"context"
	"time"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/parser"
)

// ExportSource says where a run finds the day's CSV.
type ExportSource struct {
	Date time.Time
	// Input names an existing export file. When empty the file is
	// <vault>/ManicTime_Export_<date>.csv.
	Input string
	// SkipExport reuses an existing file instead of invoking the exporter.
	// Ignored when Input is set.
	SkipExport bool
}

type ReportRequest struct {
	ExportSource
}

type ReportResult struct {
	ExportPath string
	ReportPath string
	Parsed     *parser.Result
	Summary    analysis.Summary
}

type PromptResult struct {
	ExportPath string
	Prompt     string
	Parsed     *parser.Result
	Summary    analysis.Summary
}

type DiagramRequest struct {
	ExportSource
	Output   string // empty uses the configured diagram path
	GanttMax *int   // nil uses the configured limit
	TableMax *int
}

type DiagramResult struct {
	ExportPath  string
	DiagramPath string
	Parsed      *parser.Result
	GanttShown  int
	TableShown  int
}

type RunRequest struct {
	ExportSource
	Diagram DiagramRequest
}

type RunResult struct {
	Report  *ReportResult
	Diagram *DiagramResult
}

type ReportUseCase interface {
	Report(ctx context.Context, req ReportRequest) (*ReportResult, error)
}

type PromptUseCase interface {
	Prompt(ctx context.Context, req ReportRequest) (*PromptResult, error)
}

type DiagramUseCase interface {
	Diagram(ctx context.Context, req DiagramRequest) (*DiagramResult, error)
}

// RunUseCase exports once and feeds the same file to both report and diagrams.
type RunUseCase interface {
	Run(ctx context.Context, req RunRequest) (*RunResult, error)
}
