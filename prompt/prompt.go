// Package prompt normalizes heterogeneous chat-message input into the
// canonical views the rule engine and tokenizer operate on.
package prompt

import "strings"

// Default role assigned to messages that carry none.
const DefaultRole = "user"

// Well-known chat roles. Any string is accepted as a role; these are the
// ones the normalizer derives per-role text views for.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role/content pair in a chat-style prompt.
type Message struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// ContextChunk is an optional retrieval-context fragment attached to a
// prompt, e.g. a RAG passage.
type ContextChunk struct {
	Text string `json:"text" yaml:"text"`
}

// NormalizedPrompt is the canonical view of a message sequence plus
// optional context chunks. All text fields are trimmed; empty input
// yields empty strings. Values are built once and not mutated.
type NormalizedPrompt struct {
	Messages    []Message
	JoinedText  string
	UserText    string
	SystemText  string
	ContextText string
}

// Normalize canonicalizes messages and context chunks.
//
// Roles are trimmed and lower-cased, defaulting to "user" when empty.
// Content is trimmed. Message order is preserved. Context chunks with
// empty trimmed text are dropped; the rest are joined with a blank line.
// Normalize is pure and total: it never fails.
func Normalize(messages []Message, chunks []ContextChunk) NormalizedPrompt {
	msgs := make([]Message, 0, len(messages))
	for _, m := range messages {
		role := strings.ToLower(strings.TrimSpace(m.Role))
		if role == "" {
			role = DefaultRole
		}
		msgs = append(msgs, Message{
			Role:    role,
			Content: strings.TrimSpace(m.Content),
		})
	}

	var contexts []string
	for _, c := range chunks {
		if text := strings.TrimSpace(c.Text); text != "" {
			contexts = append(contexts, text)
		}
	}

	return NormalizedPrompt{
		Messages:    msgs,
		JoinedText:  joinByRole(msgs, ""),
		UserText:    joinByRole(msgs, RoleUser),
		SystemText:  joinByRole(msgs, RoleSystem),
		ContextText: strings.TrimSpace(strings.Join(contexts, "\n\n")),
	}
}

// joinByRole joins the content of messages matching role with newlines.
// An empty role matches every message.
func joinByRole(msgs []Message, role string) string {
	var parts []string
	for _, m := range msgs {
		if role == "" || m.Role == role {
			parts = append(parts, m.Content)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
