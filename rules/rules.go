package rules

import (
	"github.com/randalmurphal/promptlint/prompt"
	"github.com/randalmurphal/promptlint/report"
)

// Context carries the resolved analysis settings shared by every rule in
// one run. It is built once per analysis and never mutated mid-run.
type Context struct {
	Model     string
	Tokenizer string
	Budgets   map[string]int
}

// Rule is a single independent heuristic check over a normalized prompt.
//
// Rules must be pure: no mutation of inputs, no state shared between
// invocations. Each rule owns a unique code used both as the issue
// discriminator and as a deduplication key across the system.
type Rule interface {
	// Code returns the rule's unique identifier, e.g. "NO_OUTPUT_LIMIT".
	Code() string

	// Evaluate checks the prompt and returns zero or more issues.
	Evaluate(p prompt.NormalizedPrompt, ctx Context) []report.Issue
}

// Run evaluates every rule in order against one prompt/context pair and
// concatenates the results: registration order first, then each rule's
// own emission order.
func Run(ruleset []Rule, p prompt.NormalizedPrompt, ctx Context) []report.Issue {
	var issues []report.Issue
	for _, r := range ruleset {
		issues = append(issues, r.Evaluate(p, ctx)...)
	}
	return issues
}
