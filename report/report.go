package report

import (
	"encoding/json"
	"time"
)

// SchemaVersion identifies the report wire shape.
const SchemaVersion = "1.0"

// SDKVersion is the promptlint release that produced the report.
const SDKVersion = "0.1.0"

// Severity classifies how much an issue is likely to hurt the response.
type Severity string

// Severity levels, lowest to highest.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns the numeric rank of a severity: low=1, medium=2, high=3.
// Unknown severities rank 0 so they never trip a threshold.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

// Issue is a single problem detected by one rule invocation.
// Code is unique per rule and doubles as the deduplication key downstream.
type Issue struct {
	Code             string         `json:"code"`
	Severity         Severity       `json:"severity"`
	Message          string         `json:"message"`
	Fix              string         `json:"fix"`
	SavingsTokensEst int            `json:"savings_tokens_est"`
	Evidence         map[string]any `json:"evidence,omitempty"`
}

// Scores holds the per-dimension quality scores, each in [0,100].
// Overall is the rounded mean of the other four.
type Scores struct {
	Overall      int `json:"overall"`
	Clarity      int `json:"clarity"`
	Completeness int `json:"completeness"`
	Structure    int `json:"structure"`
	Efficiency   int `json:"efficiency"`
}

// TokenEstimates holds the token accounting for one analysis.
// All fields are non-negative.
type TokenEstimates struct {
	InputTokens          int `json:"input_tokens"`
	OutputTokensEst      int `json:"output_tokens_est"`
	WastedTokensEst      int `json:"wasted_tokens_est"`
	RedundantTokensEst   int `json:"redundant_tokens_est"`
	BoilerplateTokensEst int `json:"boilerplate_tokens_est"`
	OutputRiskTokensEst  int `json:"output_risk_tokens_est"`
}

// CostEstimate projects current vs. optimized spend for one call.
// Present only when the resolved model has a pricing profile.
// Monetary fields are rounded to 8 decimals, SavingsPct to 2.
type CostEstimate struct {
	Currency    string  `json:"currency"`
	Current     float64 `json:"current"`
	Optimized   float64 `json:"optimized"`
	Savings     float64 `json:"savings"`
	SavingsPct  float64 `json:"savings_pct"`
	InputPer1K  float64 `json:"input_per_1k"`
	OutputPer1K float64 `json:"output_per_1k"`
}

// Suggestions collects actionable advice derived from the issues.
type Suggestions struct {
	Missing         []string `json:"missing"`
	RewrittenPrompt string   `json:"rewritten_prompt,omitempty"`
	Notes           []string `json:"notes"`
}

// PromptReport is the aggregate result of one analysis call.
// It is built once, never mutated, and never persisted; the consumer
// owns serialization.
type PromptReport struct {
	SchemaVersion  string         `json:"schema_version"`
	SDKVersion     string         `json:"sdk_version"`
	Model          string         `json:"model"`
	CreatedAt      string         `json:"created_at"`
	Scores         Scores         `json:"scores"`
	TokenEstimates TokenEstimates `json:"token_estimates"`
	CostEstimate   *CostEstimate  `json:"cost_estimate,omitempty"`
	Issues         []Issue        `json:"issues"`
	Suggestions    Suggestions    `json:"suggestions"`
	Budgets        map[string]int `json:"budgets"`
	Flags          map[string]any `json:"flags"`
}

// New returns a report shell stamped with the current versions, the model
// name, and a fresh UTC creation time. The analyzer fills in the rest.
func New(model string) *PromptReport {
	return &PromptReport{
		SchemaVersion: SchemaVersion,
		SDKVersion:    SDKVersion,
		Model:         model,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON renders the report as indented JSON.
func (r *PromptReport) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
