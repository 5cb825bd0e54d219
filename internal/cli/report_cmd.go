package cli

import (
	"fmt"

	"github.com/alexanderramin/dailylog/internal/app"
	"github.com/alexanderramin/dailylog/internal/cli/formatter"
	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/spf13/cobra"
)

func newReportCmd(a *App) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the day and write the generated daily report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := src.source(a.Now())
			if err != nil {
				return err
			}
			svc, err := setup(cmd, a, func(cfg config.Config) config.Requirement {
				return reportNeeds(cfg, source)
			})
			if err != nil {
				return err
			}

			res, err := svc.Report.Report(cmd.Context(), app.ReportRequest{ExportSource: source})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(summaryView(
				source.Date, res.Parsed, res.Summary,
				formatter.File{Label: "export", Path: res.ExportPath},
				formatter.File{Label: "report", Path: res.ReportPath},
			)))
			return nil
		},
	}

	src.register(cmd.Flags(), true)

	return cmd
}
