package service

import (
	"context"

	"github.com/alexanderramin/dailylog/internal/app"
	"github.com/alexanderramin/dailylog/internal/diagram"
	"github.com/alexanderramin/dailylog/internal/parser"
)

// Diagram renders the pie, gantt and table document for one export.
func (p *Pipeline) Diagram(ctx context.Context, req app.DiagramRequest) (*app.DiagramResult, error) {
	path, err := p.resolveExport(ctx, req.ExportSource)
	if err != nil {
		return nil, err
	}
	res, err := p.load(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.writeDiagram(ctx, req, path, res)
}

func (p *Pipeline) writeDiagram(ctx context.Context, req app.DiagramRequest, path string, res *parser.Result) (*app.DiagramResult, error) {
	date := diagram.DateFromFilename(path)
	opts := diagram.Options{
		Date:         date,
		GanttMax:     p.cfg.GanttMax,
		TableMax:     p.cfg.TableMax,
		TableColumns: p.cfg.TableColumns,
	}
	if req.GanttMax != nil {
		opts.GanttMax = *req.GanttMax
	}
	if req.TableMax != nil {
		opts.TableMax = *req.TableMax
	}

	out := req.Output
	if out == "" {
		out = p.cfg.DiagramPath(date)
	}
	if err := diagram.WriteFile(out, res.Records, opts); err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "diagrams saved", "path", out)

	return &app.DiagramResult{
		ExportPath:  path,
		DiagramPath: out,
		Parsed:      res,
		GanttShown:  shown(len(res.Records), opts.GanttMax),
		TableShown:  shown(len(res.Records), opts.TableMax),
	}, nil
}

// Run exports and parses once, then feeds the same records to the report
// and the diagrams.
func (p *Pipeline) Run(ctx context.Context, req app.RunRequest) (*app.RunResult, error) {
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

	rep, err := p.writeReport(ctx, req.ExportSource, path, res, summary)
	if err != nil {
		return nil, err
	}
	dia, err := p.writeDiagram(ctx, req.Diagram, path, res)
	if err != nil {
		return nil, err
	}
	return &app.RunResult{Report: rep, Diagram: dia}, nil
}

func shown(total, limit int) int {
	if limit > 0 && total > limit {
		return limit
	}
	return total
}
