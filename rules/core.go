package rules

import (
	"strings"

	"github.com/randalmurphal/promptlint/prompt"
	"github.com/randalmurphal/promptlint/report"
)

// Codes of the built-in core rules.
const (
	CodeMissingOutputFormat = "MISSING_OUTPUT_FORMAT"
	CodeNoOutputLimit       = "NO_OUTPUT_LIMIT"
)

// Core returns the built-in rule set in its fixed evaluation order.
func Core() []Rule {
	return []Rule{
		MissingOutputFormat{},
		NoOutputLimit{},
	}
}

// MissingOutputFormat fires when the prompt never pins down an output
// format, which tends to produce verbose, inconsistent responses.
type MissingOutputFormat struct{}

var formatKeywords = []string{"json", "yaml", "table", "bullet", "schema", "format:"}

// Code returns CodeMissingOutputFormat.
func (MissingOutputFormat) Code() string { return CodeMissingOutputFormat }

// Evaluate reports one high-severity issue unless the prompt mentions a
// recognizable output format.
func (MissingOutputFormat) Evaluate(p prompt.NormalizedPrompt, _ Context) []report.Issue {
	if containsAny(strings.ToLower(p.JoinedText), formatKeywords) {
		return nil
	}
	return []report.Issue{{
		Code:             CodeMissingOutputFormat,
		Severity:         report.SeverityHigh,
		Message:          "No output format specified; responses may be verbose and inconsistent.",
		Fix:              "Add an explicit output format (e.g., JSON fields, bullet structure, or table columns).",
		SavingsTokensEst: 30,
	}}
}

// NoOutputLimit fires when the prompt sets no bound on response length.
type NoOutputLimit struct{}

var limitKeywords = []string{"max ", "no more than", "limit", "words", "tokens", "bullets"}

// Code returns CodeNoOutputLimit.
func (NoOutputLimit) Code() string { return CodeNoOutputLimit }

// Evaluate reports one high-severity issue unless the prompt contains a
// length constraint.
func (NoOutputLimit) Evaluate(p prompt.NormalizedPrompt, _ Context) []report.Issue {
	if containsAny(strings.ToLower(p.JoinedText), limitKeywords) {
		return nil
	}
	return []report.Issue{{
		Code:             CodeNoOutputLimit,
		Severity:         report.SeverityHigh,
		Message:          "No output length limit specified; responses may consume unnecessary tokens.",
		Fix:              "Add a max length (e.g., 'max 6 bullets' or '≤150 words').",
		SavingsTokensEst: 40,
	}}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
