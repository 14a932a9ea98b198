package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/randalmurphal/promptlint/analyzer"
	"github.com/randalmurphal/promptlint/config"
	"github.com/randalmurphal/promptlint/report"
)

// thresholdExitCode is returned when --fail-on or --min-score trips.
const thresholdExitCode = 2

var (
	errNoPromptSource     = errors.New("provide a file argument, --text, or --stdin")
	errConflictingSources = errors.New("file argument, --text, and --stdin are mutually exclusive")
	errInvalidFailOn      = errors.New("--fail-on must be one of: low, medium, high")
	errWatchNeedsFile     = errors.New("--watch requires a file argument")
)

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a prompt and print a report",
		ArgsUsage: "[file | -]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "text",
				Usage: "Prompt text to analyze",
			},
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "Read prompt from STDIN",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to config file (YAML or TOML)",
				Value: "promptanalysis.yml",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Model name (overrides config default)",
			},
			&cli.StringFlag{
				Name:  "tokenizer",
				Usage: "Tokenizer name override",
			},
			&cli.IntFlag{
				Name:  "expected-output",
				Usage: "Expected output tokens (override)",
			},
			&cli.IntFlag{
				Name:  "max-input",
				Usage: "Max input token budget (override)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print machine-readable JSON output",
			},
			&cli.StringFlag{
				Name:  "fail-on",
				Usage: "Exit non-zero if any issue meets/exceeds this severity: low|medium|high",
			},
			&cli.IntFlag{
				Name:  "min-score",
				Usage: "Exit non-zero if the overall score is below this value (0-100)",
				Value: -1,
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Re-run the analysis whenever the prompt file changes",
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(ctx context.Context, cmd *cli.Command) error {
	src, err := promptSource(cmd)
	if err != nil {
		return err
	}

	failOnRank := 0
	if s := cmd.String("fail-on"); s != "" {
		failOnRank = report.Severity(strings.ToLower(s)).Rank()
		if failOnRank == 0 {
			return fmt.Errorf("%w: %q", errInvalidFailOn, s)
		}
	}

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	a := analyzer.New(cfg, nil, nil)
	opts := analyzer.Options{
		Model:                cmd.String("model"),
		Tokenizer:            cmd.String("tokenizer"),
		ExpectedOutputTokens: cmd.Int("expected-output"),
		MaxInputTokens:       cmd.Int("max-input"),
	}

	run := func() (int, error) {
		text, readErr := src.read()
		if readErr != nil {
			return 0, readErr
		}

		rep, analyzeErr := a.Analyze(text, opts)
		if analyzeErr != nil {
			return 0, analyzeErr
		}

		if outErr := printReport(os.Stdout, rep, cmd.Bool("json")); outErr != nil {
			return 0, outErr
		}

		return exitCode(rep, failOnRank, cmd.Int("min-score")), nil
	}

	if cmd.Bool("watch") {
		if src.path == "" {
			return errWatchNeedsFile
		}
		return watch(ctx, src.path, run)
	}

	code, err := run()
	if err != nil {
		return err
	}
	if code != 0 {
		return cli.Exit("", code)
	}
	return nil
}

// source is the single place the prompt text comes from.
// Exactly one of path, text, or stdin may be selected.
type source struct {
	path  string
	text  string
	stdin bool
}

func (s source) read() (string, error) {
	switch {
	case s.stdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case s.path != "":
		data, err := os.ReadFile(s.path)
		if err != nil {
			return "", fmt.Errorf("read prompt: %w", err)
		}
		return string(data), nil
	default:
		return s.text, nil
	}
}

func promptSource(cmd *cli.Command) (source, error) {
	var s source

	count := 0
	if cmd.NArg() > 0 {
		if path := cmd.Args().First(); path == "-" {
			s.stdin = true
		} else {
			s.path = path
		}
		count++
	}
	if cmd.IsSet("text") {
		s.text = cmd.String("text")
		count++
	}
	if cmd.Bool("stdin") {
		s.stdin = true
		count++
	}

	switch {
	case count == 0:
		return source{}, errNoPromptSource
	case count > 1:
		return source{}, errConflictingSources
	}
	return s, nil
}

// loadConfig reads the config file, falling back to built-in defaults
// when the file does not exist. A present-but-malformed file is an
// error, not a fallback.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.New(), nil
	}
	return config.Load(path)
}

func exitCode(rep *report.PromptReport, failOnRank, minScore int) int {
	if minScore >= 0 && rep.Scores.Overall < minScore {
		return thresholdExitCode
	}
	if failOnRank > 0 {
		for _, issue := range rep.Issues {
			if issue.Severity.Rank() >= failOnRank {
				return thresholdExitCode
			}
		}
	}
	return 0
}
