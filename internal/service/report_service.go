package service

import (
	"context"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/app"
	"github.com/alexanderramin/dailylog/internal/parser"
	"github.com/alexanderramin/dailylog/internal/report"
)

// Prompt builds the report prompt without calling the text generator.
func (p *Pipeline) Prompt(ctx context.Context, req app.ReportRequest) (*app.PromptResult, error) {
	path, err := p.resolveExport(ctx, req.ExportSource)
	if err != nil {
		return nil, err
	}
	res, summary, err := p.loadSummary(ctx, path)
	if err != nil {
		return nil, err
	}
	return &app.PromptResult{
		ExportPath: path,
		Prompt:     report.BuildPrompt(res.Raw, summary),
		Parsed:     res,
		Summary:    summary,
	}, nil
}

// Report exports, builds the prompt, generates the report and writes it
// verbatim to the vault. Any generator failure aborts without output.
func (p *Pipeline) Report(ctx context.Context, req app.ReportRequest) (*app.ReportResult, error) {
	if p.generator == nil {
		return nil, ErrNoGenerator
	}
	path, err := p.resolveExport(ctx, req.ExportSource)
	if err != nil {
		return nil, err
	}
	res, summary, err := p.loadSummary(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.writeReport(ctx, req.ExportSource, path, res, summary)
}

func (p *Pipeline) writeReport(ctx context.Context, src app.ExportSource, path string, res *parser.Result, summary analysis.Summary) (*app.ReportResult, error) {
	prompt := report.BuildPrompt(res.Raw, summary)

	p.logger.InfoContext(ctx, "generating report", "prompt_chars", len(prompt))
	var text string
	err := observeStep(ctx, p.observer, "generate_report", map[string]any{"records": len(res.Records)}, func() error {
		var err error
		text, err = p.generator.Generate(ctx, prompt)
		return err
	})
	if err != nil {
		return nil, err
	}

	out, err := report.Write(p.cfg.VaultPath, src.Date, text)
	if err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "report saved", "path", out)

	return &app.ReportResult{
		ExportPath: path,
		ReportPath: out,
		Parsed:     res,
		Summary:    summary,
	}, nil
}
