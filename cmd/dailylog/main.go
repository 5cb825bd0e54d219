package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexanderramin/dailylog/internal/cli"
	"github.com/alexanderramin/dailylog/internal/cli/formatter"
	"github.com/alexanderramin/dailylog/internal/config"
	"github.com/alexanderramin/dailylog/internal/exporter"
	"github.com/alexanderramin/dailylog/internal/llm"
	"github.com/alexanderramin/dailylog/internal/report"
	"github.com/alexanderramin/dailylog/internal/service"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		os.Exit(fail(os.Stdout, err))
	}
}

// fail writes the fatal error next to the log lines on stdout so a
// redirected run keeps it, and returns the exit code.
func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Styled output only when a person is watching.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.SetPlain()
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("run_id", uuid.NewString())

	app := &cli.App{
		Setup: func(envFile string) (*cli.Services, error) {
			return wire(envFile, logger)
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// wire loads configuration and builds the pipeline behind every command.
func wire(envFile string, logger *slog.Logger) (*cli.Services, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if cfg.EnvFile != "" {
		logger.Info("loaded settings", "env_file", cfg.EnvFile)
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(logger)
	}
	llmClient, err := llm.NewClient(cfg.LLM(), observer)
	if err != nil {
		return nil, err
	}

	// Left nil without an executable so the pipeline reports it cleanly.
	var exp service.Exporter
	if cfg.ManicTimeExe != "" {
		exp = exporter.New(cfg.ManicTimeExe, cfg.ExportView, exporter.ExecRunner{})
	}

	pipeline := service.NewPipeline(cfg, exp, report.NewGenerator(llmClient), logger)
	return &cli.Services{
		Config:  cfg,
		Report:  pipeline,
		Prompt:  pipeline,
		Diagram: pipeline,
		Run:     pipeline,
	}, nil
}
