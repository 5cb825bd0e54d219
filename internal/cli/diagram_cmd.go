package cli

import (
	"fmt"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/cli/formatter"
	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/spf13/cobra"
)

func newDiagramCmd(a *App) *cobra.Command {
	var src sourceFlags
	var dia diagramFlags

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Write Mermaid pie, gantt and table diagrams from an existing export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := src.source(a.Now())
			if err != nil {
				return err
			}
			req, err := dia.request(cmd, source)
			if err != nil {
				return err
			}
			svc, err := setup(cmd, a, func(cfg config.Config) config.Requirement {
				return diagramNeeds(cfg, req)
			})
			if err != nil {
				return err
			}

			res, err := svc.Diagram.Diagram(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatSummary(summaryView(
				source.Date, res.Parsed, analysis.Aggregate(res.Parsed.Records),
				formatter.File{Label: "export", Path: res.ExportPath},
				formatter.File{Label: "diagrams", Path: res.DiagramPath},
			)))

			total := len(res.Parsed.Records)
			if res.GanttShown < total || res.TableShown < total {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf(
					"gantt shows %d of %d, table shows %d of %d; pass --gantt-max 0 or --table-max 0 for all",
					res.GanttShown, total, res.TableShown, total)))
			}
			return nil
		},
	}

	src.register(cmd.Flags(), false)
	dia.register(cmd.Flags())

	return cmd
}
