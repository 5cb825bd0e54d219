package cli

import (
	"fmt"

	"github.com/alexanderramin/dailylog/internal/app"
	"github.com/alexanderramin/dailylog/internal/cli/formatter"
	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/spf13/cobra"
)

func newRunCmd(a *App) *cobra.Command {
	var src sourceFlags
	var dia diagramFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Export the day, write the report and the diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := src.source(a.Now())
			if err != nil {
				return err
			}
			diaReq, err := dia.request(cmd, source)
			if err != nil {
				return err
			}

			svc, err := setup(cmd, a, func(cfg config.Config) config.Requirement {
				return reportNeeds(cfg, source) | diagramNeeds(cfg, diaReq)
			})
			if err != nil {
				return err
			}

			res, err := svc.Run.Run(cmd.Context(), app.RunRequest{ExportSource: source, Diagram: diaReq})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(summaryView(
				source.Date, res.Report.Parsed, res.Report.Summary,
				formatter.File{Label: "export", Path: res.Report.ExportPath},
				formatter.File{Label: "report", Path: res.Report.ReportPath},
				formatter.File{Label: "diagrams", Path: res.Diagram.DiagramPath},
			)))
			return nil
		},
	}

	src.register(cmd.Flags(), true)
	dia.register(cmd.Flags())

	return cmd
}
