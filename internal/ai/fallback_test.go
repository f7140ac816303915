package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"todoapp/internal/model"
)

func TestFallbackGenerate(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		wantOK          bool
		wantTitle       string
		wantDescription string
	}{
		{
			name:            "strips filler and surfaces temporal phrase",
			input:           "buy groceries for the weekend",
			wantOK:          true,
			wantTitle:       "Buy groceries",
			wantDescription: "The weekend",
		},
		{
			name:            "collapses whitespace",
			input:           "  buy   groceries\tfor the   weekend ",
			wantOK:          true,
			wantTitle:       "Buy groceries",
			wantDescription: "The weekend",
		},
		{
			name:            "joins multiple temporal phrases in order",
			input:           "remind me to submit taxes next Monday at noon",
			wantOK:          true,
			wantTitle:       "Submit taxes",
			wantDescription: "Next Monday at noon",
		},
		{
			name:            "drops reminder filler",
			input:           "remind me to call mom this weekend",
			wantOK:          true,
			wantTitle:       "Call mom",
			wantDescription: "This weekend",
		},
		{
			name:            "simple verb phrase",
			input:           "finish report tomorrow",
			wantOK:          true,
			wantTitle:       "Finish report",
			wantDescription: "Tomorrow",
		},
		{
			name:            "temporal-only input keeps whole input as title",
			input:           "next monday",
			wantOK:          true,
			wantTitle:       "Next monday",
			wantDescription: "Next monday",
		},
		{
			name:            "no temporal phrase leaves description empty",
			input:           "water the plants",
			wantOK:          true,
			wantTitle:       "Water plants",
			wantDescription: "",
		},
		{
			name:   "stopwords only",
			input:  "the a an",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			input:  "   \t  ",
			wantOK: false,
		},
		{
			name:   "empty",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, ok := fallbackGenerate(tt.input)

			// Assert
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantDescription, got.Description)
			assert.Equal(t, model.PriorityLow, got.Priority)
		})
	}
}

func TestFallbackGenerate_TruncatesLongTitles(t *testing.T) {
	// Arrange
	input := strings.Repeat("errands ", 60)

	// Act
	got, ok := fallbackGenerate(input)

	// Assert
	assert.True(t, ok)
	assert.LessOrEqual(t, len([]rune(got.Title)), maxTitleRunes)
	assert.True(t, strings.HasPrefix(got.Title, "Errands"))
}
