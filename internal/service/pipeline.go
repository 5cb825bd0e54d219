package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/app"
	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/alexanderramin/dailylog/internal/exporter"
	"github.com/alexanderramin/dailylog/internal/parser"
)

var (
	// ErrInputNotFound indicates the export file to parse does not exist.
	ErrInputNotFound = errors.New("export file not found")

	// ErrNoExporter indicates an export was needed but none is configured.
	ErrNoExporter = errors.New("no exporter configured")

	// ErrNoGenerator indicates a report was requested without a text generator.
	ErrNoGenerator = errors.New("no text generator configured")
)

// Pipeline runs the export, report and diagram use cases for one day.
type Pipeline struct {
	cfg       config.Config
	exporter  Exporter
	generator TextGenerator
	logger    *slog.Logger
	observer  UseCaseObserver
}

// NewPipeline wires a Pipeline. exporter and generator may be nil for use
// cases that do not need them.
func NewPipeline(cfg config.Config, exp Exporter, gen TextGenerator, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{
		cfg:       cfg,
		exporter:  exp,
		generator: gen,
		logger:    logger,
		observer:  NewLogUseCaseObserver(logger),
	}
}

var (
	_ app.ReportUseCase  = (*Pipeline)(nil)
	_ app.PromptUseCase  = (*Pipeline)(nil)
	_ app.DiagramUseCase = (*Pipeline)(nil)
	_ app.RunUseCase     = (*Pipeline)(nil)
)

// resolveExport returns the CSV to read, invoking the exporter when needed.
func (p *Pipeline) resolveExport(ctx context.Context, src app.ExportSource) (string, error) {
	if src.Input != "" {
		return src.Input, nil
	}
	if src.SkipExport {
		return filepath.Join(p.cfg.VaultPath, exporter.FileName(src.Date)), nil
	}
	if p.exporter == nil {
		return "", ErrNoExporter
	}

	p.logger.InfoContext(ctx, "exporting application history", "date", src.Date.Format("2006-01-02"))
	var path string
	fields := map[string]any{}
	err := observeStep(ctx, p.observer, "export", fields, func() error {
		var err error
		path, err = p.exporter.Export(ctx, p.cfg.VaultPath, src.Date)
		fields["path"] = path
		return err
	})
	if err != nil {
		return "", err
	}
	p.logger.InfoContext(ctx, "export complete", "path", path)
	return path, nil
}

// load parses path, logging one warning per skipped row.
func (p *Pipeline) load(ctx context.Context, path string) (*parser.Result, error) {
	res, err := parser.ParseFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, skip := range res.Skipped {
		p.logger.WarnContext(ctx, "skipping row",
			"line", skip.Line,
			"row", strings.Join(skip.Row, ","),
			"error", skip.Err,
		)
	}
	p.logger.InfoContext(ctx, "parsed export",
		"path", path,
		"rows", res.TotalRows,
		"records", len(res.Records),
		"skipped", len(res.Skipped),
	)
	return res, nil
}

func (p *Pipeline) loadSummary(ctx context.Context, path string) (*parser.Result, analysis.Summary, error) {
	res, err := p.load(ctx, path)
	if err != nil {
		return nil, analysis.Summary{}, err
	}
	return res, analysis.Aggregate(res.Records), nil
}
