package tokenizer

import (
	"math"
	"regexp"
	"strings"

	"github.com/randalmurphal/promptlint/prompt"
)

// ApproxName is the registry name of the approximate tokenizer.
const ApproxName = "approx"

// TokensPerWord is the rough tokens-per-word ratio for English text.
const TokensPerWord = 1.3

// MessageOverhead is the fixed per-message token cost modeling role
// markers and separators.
const MessageOverhead = 4

// punctuation characters that tend to tokenize worse than plain words,
// e.g. in JSON-ish prompts. One extra token is charged per 40 of them.
const punctuation = `{}[]():,;"'`

var whitespaceRe = regexp.MustCompile(`\s+`)

// Approx is a provider-agnostic heuristic tokenizer: roughly 1.3 tokens
// per word plus a small penalty for punctuation-heavy text. It does not
// match any real subword tokenizer; its contracts are determinism and
// monotonicity, which is enough for relative scoring and budgeting.
type Approx struct{}

// NewApprox creates the approximate tokenizer.
func NewApprox() *Approx {
	return &Approx{}
}

// Name returns the registry name "approx".
func (a *Approx) Name() string { return ApproxName }

// CountText estimates tokens in text. Empty or whitespace-only text
// counts 0; anything else counts at least 1.
func (a *Approx) CountText(text string) int {
	cleaned := whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if cleaned == "" {
		return 0
	}

	words := strings.Split(cleaned, " ")
	est := int(math.Round(float64(len(words)) * TokensPerWord))

	punct := 0
	for _, ch := range cleaned {
		if strings.ContainsRune(punctuation, ch) {
			punct++
		}
	}
	est += punct / 40

	if est < 1 {
		est = 1
	}
	return est
}

// CountMessages sums CountText over all message contents plus
// MessageOverhead per message. An empty message list counts 0.
func (a *Approx) CountMessages(messages []prompt.Message) int {
	total := 0
	for _, m := range messages {
		total += a.CountText(m.Content) + MessageOverhead
	}
	return total
}
