package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/promptlint/config"
	"github.com/randalmurphal/promptlint/prompt"
	"github.com/randalmurphal/promptlint/report"
	"github.com/randalmurphal/promptlint/rules"
	"github.com/randalmurphal/promptlint/tokenizer"
)

func TestAnalyze_VaguePrompt(t *testing.T) {
	a := New(nil, nil, nil)

	rep, err := a.Analyze("Summarize this document.", Options{})
	require.NoError(t, err)

	// Both core rules fire, in registration order.
	require.Len(t, rep.Issues, 2)
	assert.Equal(t, rules.CodeMissingOutputFormat, rep.Issues[0].Code)
	assert.Equal(t, rules.CodeNoOutputLimit, rep.Issues[1].Code)

	assert.Equal(t, 70, rep.TokenEstimates.OutputRiskTokensEst)
	assert.Len(t, rep.Suggestions.Missing, 2)

	// 3 words -> 4 tokens + 4 framing overhead.
	assert.Equal(t, 8, rep.TokenEstimates.InputTokens)
	assert.Equal(t, 300, rep.TokenEstimates.OutputTokensEst)

	// Waste is capped at 60% of input.
	assert.Equal(t, 5, rep.TokenEstimates.WastedTokensEst)

	assert.Equal(t, 70, rep.Scores.Structure)
	assert.Equal(t, 80, rep.Scores.Completeness)
	assert.Nil(t, rep.CostEstimate, "no pricing configured")
}

func TestAnalyze_WellConstrainedPrompt(t *testing.T) {
	a := New(nil, nil, nil)

	rep, err := a.Analyze("Respond in JSON with max 100 words.", Options{})
	require.NoError(t, err)

	assert.Empty(t, rep.Issues)
	assert.Empty(t, rep.Suggestions.Missing)
	assert.Equal(t, 85, rep.Scores.Structure)
	assert.Equal(t, 100, rep.Scores.Completeness)
	assert.Equal(t, 0, rep.TokenEstimates.OutputRiskTokensEst)
}

func TestAnalyze_EmptyPrompt(t *testing.T) {
	a := New(nil, nil, nil)

	rep, err := a.Analyze("", Options{})
	require.NoError(t, err)

	// Empty content contributes nothing; only the per-message overhead remains.
	assert.Equal(t, 4, rep.TokenEstimates.InputTokens)

	// Empty text has none of the required keywords, so both rules fire.
	require.Len(t, rep.Issues, 2)
	assert.Contains(t, rep.Suggestions.RewrittenPrompt, "(No user prompt provided)")
}

func TestAnalyze_UnknownTokenizer(t *testing.T) {
	a := New(nil, nil, nil)

	rep, err := a.Analyze("anything", Options{Tokenizer: "never-registered"})
	require.Error(t, err)
	assert.ErrorIs(t, err, tokenizer.ErrUnknownTokenizer)
	assert.Nil(t, rep, "no partial report on failure")
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	a := New(nil, nil, nil)

	prompts := []string{
		"",
		"Summarize this document.",
		"Respond in JSON with max 100 words.",
		strings.Repeat("long prompt with many repeated words ", 200),
		`{"deeply": {"nested": ["json", "structures"]}}`,
	}

	for _, text := range prompts {
		rep, err := a.Analyze(text, Options{})
		require.NoError(t, err)

		for name, score := range map[string]int{
			"overall":      rep.Scores.Overall,
			"clarity":      rep.Scores.Clarity,
			"completeness": rep.Scores.Completeness,
			"structure":    rep.Scores.Structure,
			"efficiency":   rep.Scores.Efficiency,
		} {
			assert.GreaterOrEqual(t, score, 0, "%s for %q", name, text)
			assert.LessOrEqual(t, score, 100, "%s for %q", name, text)
		}
	}
}

func TestAnalyze_WasteBound(t *testing.T) {
	a := New(nil, nil, nil)

	prompts := []string{
		"",
		"one",
		"Summarize this document.",
		strings.Repeat("word ", 500),
	}

	for _, text := range prompts {
		rep, err := a.Analyze(text, Options{})
		require.NoError(t, err)

		wasted := rep.TokenEstimates.WastedTokensEst
		ceiling := roundi(float64(rep.TokenEstimates.InputTokens) * maxWasteRatio)
		assert.GreaterOrEqual(t, wasted, 0, "prompt %q", text)
		assert.LessOrEqual(t, wasted, ceiling, "prompt %q", text)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New(nil, nil, nil)

	first, err := a.Analyze("Summarize this document.", Options{})
	require.NoError(t, err)
	second, err := a.Analyze("Summarize this document.", Options{})
	require.NoError(t, err)

	// Byte-identical modulo the creation timestamp.
	second.CreatedAt = first.CreatedAt
	a1, err := first.JSON()
	require.NoError(t, err)
	a2, err := second.JSON()
	require.NoError(t, err)
	assert.Equal(t, string(a1), string(a2))
}

func TestAnalyze_ReportMetadata(t *testing.T) {
	a := New(nil, nil, nil)

	rep, err := a.Analyze("hello", Options{})
	require.NoError(t, err)

	assert.Equal(t, report.SchemaVersion, rep.SchemaVersion)
	assert.Equal(t, report.SDKVersion, rep.SDKVersion)
	assert.Equal(t, "default", rep.Model)
	assert.NotEmpty(t, rep.CreatedAt)
	assert.Equal(t, map[string]any{"mvp": true}, rep.Flags)
	assert.Equal(t, map[string]int{"max_input_tokens": config.DefaultMaxInputTokens}, rep.Budgets)
}

func TestAnalyzeMessages_ContextTokens(t *testing.T) {
	a := New(nil, nil, nil)

	messages := []prompt.Message{{Role: "user", Content: "hello world"}}
	chunks := []prompt.ContextChunk{{Text: "retrieved passage text"}}

	withContext, err := a.AnalyzeMessages(messages, chunks, Options{})
	require.NoError(t, err)
	withoutContext, err := a.AnalyzeMessages(messages, nil, Options{})
	require.NoError(t, err)

	assert.Greater(t, withContext.TokenEstimates.InputTokens, withoutContext.TokenEstimates.InputTokens)
}

func TestAnalyze_ExpectedOutputOverride(t *testing.T) {
	a := New(nil, nil, nil)

	rep, err := a.Analyze("hello", Options{ExpectedOutputTokens: 42})
	require.NoError(t, err)

	assert.Equal(t, 42, rep.TokenEstimates.OutputTokensEst)
	assert.Contains(t, rep.Suggestions.RewrittenPrompt, "~42 tokens")
}

func TestAnalyze_RewriteEmbedsUserText(t *testing.T) {
	a := New(nil, nil, nil)

	rep, err := a.Analyze("Summarize this document.", Options{})
	require.NoError(t, err)

	rewrite := rep.Suggestions.RewrittenPrompt
	assert.Contains(t, rewrite, "Task:\nSummarize this document.")
	assert.Contains(t, rewrite, "Constraints:")
	assert.Contains(t, rewrite, "Output format:")
}

// duplicateEmitter emits the same issue code twice to exercise checklist
// deduplication.
type duplicateEmitter struct{}

func (duplicateEmitter) Code() string { return rules.CodeMissingOutputFormat }

func (duplicateEmitter) Evaluate(prompt.NormalizedPrompt, rules.Context) []report.Issue {
	issue := report.Issue{
		Code:     rules.CodeMissingOutputFormat,
		Severity: report.SeverityHigh,
		Message:  "dup",
		Fix:      "dup",
	}
	return []report.Issue{issue, issue}
}

func TestAnalyze_MissingChecklistDeduplicated(t *testing.T) {
	a := New(nil, nil, []rules.Rule{duplicateEmitter{}})

	rep, err := a.Analyze("Summarize this document.", Options{})
	require.NoError(t, err)

	require.Len(t, rep.Issues, 2)
	assert.Len(t, rep.Suggestions.Missing, 1, "duplicate codes collapse to one checklist entry")
}
