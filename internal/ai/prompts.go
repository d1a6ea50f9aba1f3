package ai

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/parity.md
var parityPromptRaw string

// ParityTemplate is the parsed prompt template for a parity question.
var ParityTemplate = template.Must(template.New("parity").Parse(parityPromptRaw))

// systemPrompt is sent as the system instruction to every provider.
const systemPrompt = "You are a careful arithmetic oracle. You answer parity questions with a single JSON object."
