package ai

import (
	"regexp"
	"strings"
	"unicode"

	"todoapp/internal/model"
)

// fallbackStopwords is the filler vocabulary stripped when deriving a
// title without a provider. Only unambiguous filler words qualify.
var fallbackStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"to": {}, "for": {}, "of": {}, "on": {}, "at": {}, "in": {}, "by": {}, "with": {},
	"and": {}, "or": {}, "so": {},
	"i": {}, "me": {}, "my": {}, "we": {}, "us": {}, "our": {},
	"you": {}, "your": {}, "it": {}, "its": {},
	"this": {}, "that": {}, "these": {}, "those": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "am": {}, "be": {}, "been": {},
	"do": {}, "does": {}, "did": {}, "have": {}, "has": {}, "had": {},
	"will": {}, "would": {}, "can": {}, "could": {}, "should": {}, "must": {},
	"need": {}, "needs": {}, "want": {}, "wants": {},
	"remind": {}, "reminder": {}, "reminding": {},
	"please": {}, "just": {}, "really": {}, "some": {}, "about": {},
}

// temporalPattern recognizes the time phrases people attach to todos.
// Matched phrases move into the description instead of cluttering the
// title.
var temporalPattern = regexp.MustCompile(`(?i)\b(?:` +
	`(?:this|next|last|the) (?:morning|afternoon|evening|night|weekend|week|month|year|monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
	`|(?:on|by|before|after|until) (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday|tomorrow)` +
	`|at (?:noon|midnight|\d{1,2}(?::\d{2})? ?(?:am|pm)?)` +
	`|tomorrow|today|tonight` +
	`)\b`)

// fallbackGenerate derives a todo from the input alone, with no provider
// involved. Whitespace is collapsed, temporal phrases are pulled into the
// description and filler words are dropped from what remains. It reports
// false only when the input carries no usable words at all.
func fallbackGenerate(userInput string) (generated, bool) {
	normalized := strings.Join(strings.Fields(userInput), " ")
	if normalized == "" {
		return generated{}, false
	}

	temporal := temporalPattern.FindAllString(normalized, -1)
	remainder := temporalPattern.ReplaceAllString(normalized, " ")

	var kept []string
	for _, word := range strings.Fields(remainder) {
		key := strings.ToLower(strings.Trim(word, ".,!?;:"))
		if _, skip := fallbackStopwords[key]; skip || key == "" {
			continue
		}
		kept = append(kept, word)
	}

	title := strings.Join(kept, " ")
	if title == "" {
		if len(temporal) == 0 {
			// Nothing but filler. This is the one case the adapter
			// reports as a failure.
			return generated{}, false
		}
		title = normalized
	}
	if runes := []rune(title); len(runes) > maxTitleRunes {
		title = string(runes[:maxTitleRunes])
	}

	return generated{
		Title:       capitalize(title),
		Description: capitalize(strings.Join(temporal, " ")),
		Priority:    model.PriorityLow,
	}, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
