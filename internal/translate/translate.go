// Package translate renders abstracts into a fixed translation prompt and
// sends it to a completion backend. Two backends are available: an
// OpenAI-compatible API and a local Ollama server.
package translate

import "fmt"

const promptTemplate = `Please translate the following English passage into %s.

%s`

// Prompt embeds passage verbatim into the translation instruction template.
func Prompt(language, passage string) string {
	return fmt.Sprintf(promptTemplate, language, passage)
}
