package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptlint/config"
	"github.com/randalmurphal/promptlint/report"
	"github.com/randalmurphal/promptlint/rules"
)

func TestCostEstimate_NilPricing(t *testing.T) {
	assert.Nil(t, costEstimate(nil, 1000, 300, nil))
}

func TestCostEstimate_Arithmetic(t *testing.T) {
	pricing := &config.Pricing{InputPer1K: 1.0, OutputPer1K: 2.0, Currency: "USD"}
	issues := []report.Issue{{
		Code:             rules.CodeMissingOutputFormat,
		Severity:         report.SeverityHigh,
		SavingsTokensEst: 30,
	}}

	ce := costEstimate(pricing, 1000, 300, issues)
	require.NotNil(t, ce)

	// current = 1000/1000*1.0 + 300/1000*2.0 = 1.6
	assert.Equal(t, 1.6, ce.Current)

	// optimized input 970, output 300*0.8=240 -> 0.97 + 0.48 = 1.45
	assert.Equal(t, 1.45, ce.Optimized)
	assert.Equal(t, 0.15, ce.Savings)
	assert.Equal(t, 9.38, ce.SavingsPct)

	assert.Equal(t, "USD", ce.Currency)
	assert.Equal(t, 1.0, ce.InputPer1K)
	assert.Equal(t, 2.0, ce.OutputPer1K)
}

func TestCostEstimate_NoIssuesNoReduction(t *testing.T) {
	pricing := &config.Pricing{InputPer1K: 1.0, OutputPer1K: 2.0, Currency: "USD"}

	ce := costEstimate(pricing, 1000, 300, nil)
	require.NotNil(t, ce)

	assert.Equal(t, 1.6, ce.Current)
	assert.Equal(t, 1.6, ce.Optimized)
	assert.Equal(t, 0.0, ce.Savings)
	assert.Equal(t, 0.0, ce.SavingsPct)
}

func TestCostEstimate_ZeroCurrentCost(t *testing.T) {
	pricing := &config.Pricing{Currency: "USD"}

	ce := costEstimate(pricing, 0, 0, nil)
	require.NotNil(t, ce)
	assert.Equal(t, 0.0, ce.SavingsPct, "no division by zero on free models")
}

func TestCostEstimate_SavingsNeverExceedInput(t *testing.T) {
	pricing := &config.Pricing{InputPer1K: 1.0, OutputPer1K: 2.0, Currency: "USD"}
	issues := []report.Issue{{
		Code:             rules.CodeNoOutputLimit,
		SavingsTokensEst: 10_000,
	}}

	// Savings larger than the input clamp optimized input at zero.
	ce := costEstimate(pricing, 100, 0, issues)
	require.NotNil(t, ce)
	assert.Equal(t, 0.0, ce.Optimized)
}

func TestCostEstimate_NegativeSavingsIgnored(t *testing.T) {
	pricing := &config.Pricing{InputPer1K: 1.0, OutputPer1K: 1.0, Currency: "USD"}
	issues := []report.Issue{{
		Code:             "CUSTOM",
		SavingsTokensEst: -50,
	}}

	ce := costEstimate(pricing, 1000, 0, issues)
	require.NotNil(t, ce)
	assert.Equal(t, ce.Current, ce.Optimized, "negative savings estimates count as zero")
}

func TestAnalyze_CostEstimateFromConfig(t *testing.T) {
	cfg := config.New()
	cfg.Models["priced"] = config.ModelProfile{
		Name:                   "priced",
		DefaultMaxOutputTokens: 300,
		Tokenizer:              "approx",
		Pricing:                &config.Pricing{InputPer1K: 1.0, OutputPer1K: 2.0, Currency: "USD"},
	}

	a := New(cfg, nil, nil)

	rep, err := a.Analyze("Summarize this document.", Options{Model: "priced"})
	require.NoError(t, err)
	require.NotNil(t, rep.CostEstimate)
	assert.Equal(t, "USD", rep.CostEstimate.Currency)
	assert.Greater(t, rep.CostEstimate.Savings, 0.0)
}
