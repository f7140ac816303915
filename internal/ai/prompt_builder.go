package ai

import "strings"

// Generation parameters shared by all providers. Low temperature keeps
// the structured replies consistent across attempts.
const (
	generationTemperature = 0.3
	generationMaxTokens   = 500

	maxInputRunes       = 1000
	maxTitleRunes       = 200
	maxDescriptionRunes = 1000
)

// buildUserPrompt wraps the sanitized user input into the instruction
// the model answers. Input length is validated at the API boundary, so
// the cut here only matters for direct callers.
func buildUserPrompt(userInput string) string {
	sanitized := strings.TrimSpace(userInput)
	if runes := []rune(sanitized); len(runes) > maxInputRunes {
		sanitized = string(runes[:maxInputRunes]) + "..."
	}
	return "Convert this to a todo: " + sanitized
}
