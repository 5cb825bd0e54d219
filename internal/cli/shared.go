package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/app"
	"github.com/alexanderramin/dailylog/internal/cli/formatter"
	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/alexanderramin/dailylog/internal/llm"
	"github.com/alexanderramin/dailylog/internal/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// sourceFlags are the export-selection flags every command shares.
type sourceFlags struct {
	date       string
	input      string
	skipExport bool
}

// register adds the flags to fs. Commands that never export pass
// exports=false and always read an existing file.
func (f *sourceFlags) register(fs *pflag.FlagSet, exports bool) {
	fs.StringVar(&f.date, "date", "", "day to process as YYYY-MM-DD (default today)")
	if !exports {
		f.skipExport = true
		fs.StringVarP(&f.input, "input", "i", "", "export CSV to read (default <vault>/ManicTime_Export_<date>.csv)")
		return
	}
	fs.StringVarP(&f.input, "input", "i", "", "read this export CSV instead of exporting")
	fs.BoolVar(&f.skipExport, "skip-export", false, "reuse the export already in the vault")
}

func (f *sourceFlags) source(now time.Time) (app.ExportSource, error) {
	src := app.ExportSource{Input: f.input, SkipExport: f.skipExport}
	if f.date == "" {
		y, m, d := now.Date()
		src.Date = time.Date(y, m, d, 0, 0, 0, 0, time.Local)
		return src, nil
	}
	date, err := time.ParseInLocation(dateLayout, f.date, time.Local)
	if err != nil {
		return src, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", f.date)
	}
	src.Date = date
	return src, nil
}

// diagramFlags are the limits and output path for the diagram document.
type diagramFlags struct {
	output   string
	ganttMax int
	tableMax int
}

func (f *diagramFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.output, "output", "o", "", "diagram file to write (default <vault>/ManicTime_Diagrams_<date>.md)")
	fs.IntVar(&f.ganttMax, "gantt-max", 0, "gantt tasks to show, 0 for all (default from config)")
	fs.IntVar(&f.tableMax, "table-max", 0, "table rows to show, 0 for all (default from config)")
}

func (f *diagramFlags) request(cmd *cobra.Command, src app.ExportSource) (app.DiagramRequest, error) {
	req := app.DiagramRequest{ExportSource: src, Output: f.output}
	if cmd.Flags().Changed("gantt-max") {
		if f.ganttMax < 0 {
			return req, fmt.Errorf("invalid --gantt-max %d", f.ganttMax)
		}
		v := f.ganttMax
		req.GanttMax = &v
	}
	if cmd.Flags().Changed("table-max") {
		if f.tableMax < 0 {
			return req, fmt.Errorf("invalid --table-max %d", f.tableMax)
		}
		v := f.tableMax
		req.TableMax = &v
	}
	return req, nil
}

// setup loads the services and checks the settings need requires before
// any export or network call happens.
func setup(cmd *cobra.Command, a *App, need func(config.Config) config.Requirement) (*Services, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	svc, err := a.Setup(envFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(svc.Config, need(svc.Config)); err != nil {
		return nil, err
	}
	return svc, nil
}

func exportNeeds(src app.ExportSource) config.Requirement {
	switch {
	case src.Input != "":
		return 0
	case src.SkipExport:
		return config.NeedVault
	default:
		return config.NeedVault | config.NeedExporter
	}
}

func reportNeeds(cfg config.Config, src app.ExportSource) config.Requirement {
	need := exportNeeds(src) | config.NeedVault
	if cfg.LLM().Provider != llm.ProviderOllama {
		need |= config.NeedAPIKey
	}
	return need
}

func diagramNeeds(cfg config.Config, req app.DiagramRequest) config.Requirement {
	need := exportNeeds(req.ExportSource)
	if req.Output == "" && cfg.DiagramOutput == "" {
		need |= config.NeedVault
	}
	return need
}

func summaryView(date time.Time, parsed *parser.Result, totals analysis.Summary, files ...formatter.File) formatter.Summary {
	view := formatter.Summary{
		Date:   date.Format(dateLayout),
		Totals: totals,
		Files:  files,
	}
	if parsed != nil {
		view.Records = len(parsed.Records)
		view.Skipped = len(parsed.Skipped)
	}
	return view
}
