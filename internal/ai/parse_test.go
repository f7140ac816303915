package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"todoapp/internal/model"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    generated
		wantErr bool
	}{
		{
			name:  "bare JSON object",
			reply: `{"title": "Buy milk", "description": "2% from the corner store", "priority": 1}`,
			want: generated{
				Title:       "Buy milk",
				Description: "2% from the corner store",
				Priority:    model.PriorityMedium,
			},
		},
		{
			name:  "json fenced block",
			reply: "```json\n{\"title\": \"Buy milk\", \"priority\": 2}\n```",
			want:  generated{Title: "Buy milk", Priority: model.PriorityHigh},
		},
		{
			name:  "plain fenced block",
			reply: "```\n{\"title\": \"Buy milk\"}\n```",
			want:  generated{Title: "Buy milk", Priority: model.PriorityLow},
		},
		{
			name:  "object surrounded by prose",
			reply: `Sure! Here is your todo: {"title": "Walk the dog"} hope that helps`,
			want:  generated{Title: "Walk the dog", Priority: model.PriorityLow},
		},
		{
			name:  "missing priority defaults to low",
			reply: `{"title": "Stretch"}`,
			want:  generated{Title: "Stretch", Priority: model.PriorityLow},
		},
		{
			name:  "out of range priority defaults to low",
			reply: `{"title": "Stretch", "priority": 7}`,
			want:  generated{Title: "Stretch", Priority: model.PriorityLow},
		},
		{
			name:  "string priority defaults to low",
			reply: `{"title": "Stretch", "priority": "high"}`,
			want:  generated{Title: "Stretch", Priority: model.PriorityLow},
		},
		{
			name:  "title whitespace is trimmed",
			reply: `{"title": "  Buy milk  "}`,
			want:  generated{Title: "Buy milk", Priority: model.PriorityLow},
		},
		{
			name:    "missing title",
			reply:   `{"description": "no title here"}`,
			wantErr: true,
		},
		{
			name:    "blank title",
			reply:   `{"title": "   "}`,
			wantErr: true,
		},
		{
			name:    "no JSON at all",
			reply:   "I cannot help with that request.",
			wantErr: true,
		},
		{
			name:    "broken JSON inside fences",
			reply:   "```json\n{\"title\": \"Buy milk\",}\n```",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got, err := parseReply(tt.reply)

			// Assert
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReply_CutsOverlongFields(t *testing.T) {
	// Arrange
	longTitle := strings.Repeat("t", maxTitleRunes+50)
	longDescription := strings.Repeat("d", maxDescriptionRunes+50)
	reply := `{"title": "` + longTitle + `", "description": "` + longDescription + `"}`

	// Act
	got, err := parseReply(reply)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, []rune(got.Title), maxTitleRunes)
	assert.Len(t, []rune(got.Description), maxDescriptionRunes)
}
