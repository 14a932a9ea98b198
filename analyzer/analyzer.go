package analyzer

import (
	"math"

	"github.com/randalmurphal/promptlint/config"
	"github.com/randalmurphal/promptlint/prompt"
	"github.com/randalmurphal/promptlint/report"
	"github.com/randalmurphal/promptlint/rules"
	"github.com/randalmurphal/promptlint/tokenizer"
)

// Waste model constants: every prompt is assumed to carry ~20% slack,
// plus a fixed risk charge per missing output control, capped at 60% of
// the input.
const (
	baselineWasteRatio = 0.20
	maxWasteRatio      = 0.60
	missingFormatRisk  = 40
	missingLimitRisk   = 30
)

// missingByCode maps issue codes to the human-readable checklist entry
// they contribute to suggestions.missing.
var missingByCode = map[string]string{
	rules.CodeMissingOutputFormat: "Output format (e.g., JSON schema / bullets / table)",
	rules.CodeNoOutputLimit:       "Output length limit (max words/tokens/bullets)",
}

// Options are per-call overrides. Zero values mean "use the configured
// value"; see config.Overrides for the precedence rules.
type Options struct {
	Model                string
	Tokenizer            string
	ExpectedOutputTokens int
	MaxInputTokens       int
}

// Analyzer runs the rule-based analysis pipeline and assembles reports.
//
// An Analyzer is immutable after construction and safe for concurrent
// use: every call builds fresh intermediate values and shares only the
// read-only configuration, registry, and rule set.
type Analyzer struct {
	cfg        *config.Config
	tokenizers *tokenizer.Registry
	ruleset    []rules.Rule
}

// New creates an Analyzer. Nil arguments take the defaults: the built-in
// config, the default tokenizer registry, and the core rule set, so
// New(nil, nil, nil) is the zero-configuration analyzer.
func New(cfg *config.Config, reg *tokenizer.Registry, ruleset []rules.Rule) *Analyzer {
	if cfg == nil {
		cfg = config.New()
	}
	if reg == nil {
		reg = tokenizer.DefaultRegistry()
	}
	if ruleset == nil {
		ruleset = rules.Core()
	}
	return &Analyzer{cfg: cfg, tokenizers: reg, ruleset: ruleset}
}

// Analyze analyzes a plain-text prompt by wrapping it as a single
// user-role message and delegating to AnalyzeMessages.
func (a *Analyzer) Analyze(text string, opts Options) (*report.PromptReport, error) {
	messages := []prompt.Message{{Role: prompt.RoleUser, Content: text}}
	return a.AnalyzeMessages(messages, nil, opts)
}

// AnalyzeMessages runs the full pipeline over a message sequence plus
// optional retrieval-context chunks and returns the report.
//
// The only failure mode is an unregistered tokenizer name, surfaced as
// tokenizer.ErrUnknownTokenizer; everything past that point is total.
func (a *Analyzer) AnalyzeMessages(messages []prompt.Message, chunks []prompt.ContextChunk, opts Options) (*report.PromptReport, error) {
	resolved := a.cfg.Resolve(config.Overrides{
		Model:                opts.Model,
		Tokenizer:            opts.Tokenizer,
		ExpectedOutputTokens: opts.ExpectedOutputTokens,
		MaxInputTokens:       opts.MaxInputTokens,
	})

	tok, err := a.tokenizers.Get(resolved.Tokenizer)
	if err != nil {
		return nil, err
	}

	normalized := prompt.Normalize(messages, chunks)

	inputTokens := tok.CountMessages(normalized.Messages) + tok.CountText(normalized.ContextText)
	outputTokensEst := max(resolved.ExpectedOutputTokens, 0)

	ctx := rules.Context{
		Model:     resolved.Model,
		Tokenizer: resolved.Tokenizer,
		Budgets:   map[string]int{"max_input_tokens": resolved.MaxInputTokens},
	}
	issues := rules.Run(a.ruleset, normalized, ctx)
	if issues == nil {
		issues = []report.Issue{}
	}

	missing := missingChecklist(issues)

	outputRisk := 0
	if hasIssue(issues, rules.CodeMissingOutputFormat) {
		outputRisk += missingFormatRisk
	}
	if hasIssue(issues, rules.CodeNoOutputLimit) {
		outputRisk += missingLimitRisk
	}

	wasted := roundi(float64(inputTokens)*baselineWasteRatio) + outputRisk
	if ceiling := roundi(float64(inputTokens) * maxWasteRatio); wasted > ceiling {
		wasted = ceiling
	}
	wasted = max(wasted, 0)

	scores := deriveScores(inputTokens, wasted, len(missing) > 0, hasIssue(issues, rules.CodeMissingOutputFormat))

	rep := report.New(resolved.Model)
	rep.Scores = scores
	rep.TokenEstimates = report.TokenEstimates{
		InputTokens:         inputTokens,
		OutputTokensEst:     outputTokensEst,
		WastedTokensEst:     wasted,
		OutputRiskTokensEst: outputRisk,
	}
	rep.CostEstimate = costEstimate(a.cfg.Pricing(resolved.Model), inputTokens, outputTokensEst, issues)
	rep.Issues = issues
	rep.Suggestions = report.Suggestions{
		Missing:         missing,
		RewrittenPrompt: rewriteSuggestion(normalized, resolved.ExpectedOutputTokens),
		Notes:           []string{},
	}
	rep.Budgets = map[string]int{"max_input_tokens": resolved.MaxInputTokens}
	rep.Flags = map[string]any{"mvp": true}

	return rep, nil
}

// missingChecklist maps issues onto the deduplicated, order-preserving
// list of missing prompt elements.
func missingChecklist(issues []report.Issue) []string {
	missing := []string{}
	seen := make(map[string]bool)
	for _, issue := range issues {
		item, ok := missingByCode[issue.Code]
		if !ok || seen[item] {
			continue
		}
		seen[item] = true
		missing = append(missing, item)
	}
	return missing
}

func deriveScores(inputTokens, wasted int, anyMissing, missingFormat bool) report.Scores {
	efficiency := 100 - roundi(float64(wasted)/float64(max(inputTokens, 1))*120)
	efficiency = max(efficiency, 0)

	completeness := 100
	if anyMissing {
		completeness = 80
	}

	structure := 85
	if missingFormat {
		structure = 70
	}

	// Placeholder until a real clarity heuristic lands; see Flags["mvp"].
	clarity := 80

	overall := roundi(float64(clarity+completeness+structure+efficiency) / 4)

	return report.Scores{
		Overall:      overall,
		Clarity:      clarity,
		Completeness: completeness,
		Structure:    structure,
		Efficiency:   efficiency,
	}
}

func hasIssue(issues []report.Issue, code string) bool {
	for _, issue := range issues {
		if issue.Code == code {
			return true
		}
	}
	return false
}

func roundi(v float64) int {
	return int(math.Round(v))
}
