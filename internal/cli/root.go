package cli

import (
	"time"

	"github.com/alexanderramin/dailylog/internal/app"
	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/spf13/cobra"
)

// Services holds the use cases commands run against, wired from Config.
type Services struct {
	Config  config.Config
	Report  app.ReportUseCase
	Prompt  app.PromptUseCase
	Diagram app.DiagramUseCase
	Run     app.RunUseCase
}

// App carries what commands need to build their services.
type App struct {
	// Setup loads configuration from envFile (empty for the default) and
	// wires the services. Commands call it after flag parsing.
	Setup func(envFile string) (*Services, error)
	// Now returns the current time; the default date is taken from it.
	Now func() time.Time
}

// NewRootCmd creates the top-level "dailylog" command and registers all
// subcommands against the provided App. Without a subcommand it behaves
// like "dailylog run".
func NewRootCmd(a *App) *cobra.Command {
	if a.Now == nil {
		a.Now = time.Now
	}

	root := &cobra.Command{
		Use:           "dailylog",
		Short:         "Turn a day of ManicTime history into a report and diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("env-file", "", "dotenv file to read (default ./"+config.DefaultEnvFile+")")

	run := newRunCmd(a)
	root.Flags().AddFlagSet(run.Flags())
	root.RunE = run.RunE

	root.AddCommand(
		run,
		newReportCmd(a),
		newDiagramCmd(a),
		newPromptCmd(a),
	)

	return root
}
