package main

import (
	"fmt"
	"io"

	"github.com/randalmurphal/promptlint/report"
)

// printReport writes the report to w, either as indented JSON or in the
// human-readable console layout.
func printReport(w io.Writer, rep *report.PromptReport, asJSON bool) error {
	if asJSON {
		out, err := rep.JSON()
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	fmt.Fprintf(w, "Model: %s\n", rep.Model)
	fmt.Fprintf(w, "Overall score: %d/100\n", rep.Scores.Overall)
	fmt.Fprintf(w, "Scores: clarity=%d, completeness=%d, structure=%d, efficiency=%d\n",
		rep.Scores.Clarity, rep.Scores.Completeness, rep.Scores.Structure, rep.Scores.Efficiency)
	fmt.Fprintf(w, "Tokens: input=%d, output_est=%d, wasted_est=%d\n",
		rep.TokenEstimates.InputTokens, rep.TokenEstimates.OutputTokensEst, rep.TokenEstimates.WastedTokensEst)

	if ce := rep.CostEstimate; ce != nil {
		fmt.Fprintf(w, "Cost (%s): current=%v optimized=%v savings=%v (%v%%)\n",
			ce.Currency, ce.Current, ce.Optimized, ce.Savings, ce.SavingsPct)
	}

	if len(rep.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, issue := range rep.Issues {
			fmt.Fprintf(w, "- [%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
			fmt.Fprintf(w, "  Fix: %s\n", issue.Fix)
		}
	} else {
		fmt.Fprintln(w, "\nIssues: none")
	}

	if rep.Suggestions.RewrittenPrompt != "" {
		fmt.Fprintln(w, "\nSuggested prompt:")
		fmt.Fprintln(w, rep.Suggestions.RewrittenPrompt)
	}

	return nil
}
