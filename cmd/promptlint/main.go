package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/randalmurphal/promptlint/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appl := &cli.Command{
		Name:    "promptlint",
		Usage:   "Prompt quality analysis tool",
		Version: report.SDKVersion,
		Commands: []*cli.Command{
			analyzeCommand(),
			schemaCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
