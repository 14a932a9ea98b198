package tokenizer

import (
	"errors"

	"github.com/randalmurphal/promptlint/prompt"
)

// ErrUnknownTokenizer indicates the requested tokenizer is not registered.
// This is surfaced, never silently defaulted: counting tokens with the
// wrong tokenizer would corrupt every downstream cost figure.
var ErrUnknownTokenizer = errors.New("unknown tokenizer")

// Tokenizer estimates token counts for text and chat messages.
// Implementations must be deterministic and monotonic: adding words or
// punctuation never decreases an estimate.
type Tokenizer interface {
	// Name returns the registry name of the tokenizer.
	Name() string

	// CountText estimates the number of tokens in the given text.
	CountText(text string) int

	// CountMessages estimates the total tokens for a message sequence,
	// including any per-message framing overhead.
	CountMessages(messages []prompt.Message) int
}
