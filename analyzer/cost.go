package analyzer

import (
	"math"

	"github.com/randalmurphal/promptlint/config"
	"github.com/randalmurphal/promptlint/report"
	"github.com/randalmurphal/promptlint/rules"
)

// outputReduction is the factor applied to the expected output when the
// prompt lacks format or length controls: adding them typically trims
// responses by about a fifth.
const outputReduction = 0.8

// costEstimate projects current vs. optimized spend. A nil pricing
// profile yields a nil estimate; cost is never reported as zero just
// because no rates are known.
func costEstimate(pricing *config.Pricing, inputTokens, outputTokens int, issues []report.Issue) *report.CostEstimate {
	if pricing == nil {
		return nil
	}

	current := cost(inputTokens, outputTokens, pricing)

	inputSavings := 0
	for _, issue := range issues {
		inputSavings += max(issue.SavingsTokensEst, 0)
	}
	optimizedInput := max(inputTokens-inputSavings, 0)

	optimizedOutput := outputTokens
	if hasIssue(issues, rules.CodeMissingOutputFormat) || hasIssue(issues, rules.CodeNoOutputLimit) {
		optimizedOutput = int(float64(outputTokens) * outputReduction)
	}
	optimizedOutput = max(optimizedOutput, 0)

	optimized := cost(optimizedInput, optimizedOutput, pricing)
	savings := math.Max(current-optimized, 0)

	savingsPct := 0.0
	if current > 0 {
		savingsPct = savings / current * 100
	}

	return &report.CostEstimate{
		Currency:    pricing.Currency,
		Current:     roundTo(current, 8),
		Optimized:   roundTo(optimized, 8),
		Savings:     roundTo(savings, 8),
		SavingsPct:  roundTo(savingsPct, 2),
		InputPer1K:  pricing.InputPer1K,
		OutputPer1K: pricing.OutputPer1K,
	}
}

func cost(inputTokens, outputTokens int, p *config.Pricing) float64 {
	return float64(inputTokens)/1000*p.InputPer1K + float64(outputTokens)/1000*p.OutputPer1K
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
