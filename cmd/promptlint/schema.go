package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/randalmurphal/promptlint/report"
)

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON schema of the report format",
		Action: func(_ context.Context, _ *cli.Command) error {
			out, err := json.MarshalIndent(report.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode schema: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	}
}
