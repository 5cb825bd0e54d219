package cli

import (
	"fmt"

	"github.com/alexanderramin/dailylog/internal/app"
	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/spf13/cobra"
)

func newPromptCmd(a *App) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the report prompt without calling the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := src.source(a.Now())
			if err != nil {
				return err
			}
			svc, err := setup(cmd, a, func(config.Config) config.Requirement {
				return exportNeeds(source)
			})
			if err != nil {
				return err
			}

			res, err := svc.Prompt.Prompt(cmd.Context(), app.ReportRequest{ExportSource: source})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), res.Prompt)
			return nil
		},
	}

	src.register(cmd.Flags(), true)

	return cmd
}
