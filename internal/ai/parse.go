package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"todoapp/internal/model"
)

var (
	jsonBlockPattern  = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	jsonObjectPattern = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
)

// generated is the structured todo a provider reply parses into.
type generated struct {
	Title       string
	Description string
	Priority    model.Priority
}

// extractJSON pulls the JSON object out of a model reply. Models wrap the
// object in markdown fences or pad it with prose more often than not.
func extractJSON(reply string) (string, error) {
	if m := jsonBlockPattern.FindStringSubmatch(reply); len(m) > 1 {
		return m[1], nil
	}
	if m := jsonObjectPattern.FindString(reply); m != "" {
		return m, nil
	}
	return "", errors.New("no JSON object in reply")
}

// parseReply extracts and validates the generated todo from a raw model
// reply. A missing or empty title fails the attempt; overlong fields are
// cut to their limits and an out-of-range priority falls back to low.
func parseReply(reply string) (generated, error) {
	raw, err := extractJSON(reply)
	if err != nil {
		return generated{}, err
	}

	var payload struct {
		Title       string      `json:"title"`
		Description string      `json:"description"`
		Priority    interface{} `json:"priority"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return generated{}, fmt.Errorf("decode reply JSON: %w", err)
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return generated{}, errors.New("reply has no title")
	}
	if runes := []rune(title); len(runes) > maxTitleRunes {
		title = string(runes[:maxTitleRunes])
	}

	description := strings.TrimSpace(payload.Description)
	if runes := []rune(description); len(runes) > maxDescriptionRunes {
		description = string(runes[:maxDescriptionRunes])
	}

	return generated{
		Title:       title,
		Description: description,
		Priority:    coercePriority(payload.Priority),
	}, nil
}

// coercePriority accepts the number the prompt asks for and quietly maps
// anything else to low rather than failing the whole attempt.
func coercePriority(v interface{}) model.Priority {
	f, ok := v.(float64)
	if !ok {
		return model.PriorityLow
	}
	p := model.Priority(int(f))
	if float64(int(f)) != f || !p.Valid() {
		return model.PriorityLow
	}
	return p
}
