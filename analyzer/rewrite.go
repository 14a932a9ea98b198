package analyzer

import (
	"strings"
	"text/template"

	"github.com/randalmurphal/promptlint/prompt"
)

// rewriteTemplate is the fixed shape of the suggested rewrite: the
// user's task restated under explicit constraint and format sections.
var rewriteTemplate = template.Must(template.New("rewrite").Parse(strings.TrimSpace(`
Task:
{{.Task}}

Constraints:
- Keep the response within ~{{.ExpectedOutputTokens}} tokens (or less).
- Be concise and avoid repetition.
- If information is missing, ask up to 2 clarifying questions.

Output format:
- Use bullet points OR JSON (choose one and stick to it).
`)))

// rewriteSuggestion renders the rewrite template around the prompt's
// user text, falling back to the joined text and then to a placeholder
// sentence when the prompt is empty.
func rewriteSuggestion(normalized prompt.NormalizedPrompt, expectedOutputTokens int) string {
	task := normalized.UserText
	if task == "" {
		task = normalized.JoinedText
	}
	if task == "" {
		task = "(No user prompt provided)"
	}

	var b strings.Builder
	err := rewriteTemplate.Execute(&b, struct {
		Task                 string
		ExpectedOutputTokens int
	}{task, expectedOutputTokens})
	if err != nil {
		// The template is fixed and the data is two plain fields; an
		// execution failure here is a programming error.
		panic(err)
	}
	return b.String()
}
