package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightQualityScore(t *testing.T) {
	tests := []struct {
		name    string
		insight Insight
		want    float64
	}{
		{
			name: "thin insight with mid confidence",
			insight: Insight{
				Confidence:        0.5,
				SourceQuestionIDs: []string{"q1"},
				KeyThemes:         []string{"leadership"},
			},
			want: 0.20,
		},
		{
			name: "broad evidence base",
			insight: Insight{
				Confidence:        0.8,
				SourceQuestionIDs: []string{"q1", "q2", "q3", "q4", "q5"},
				KeyThemes:         []string{"a", "b", "c", "d", "e"},
				ActionSuggestion:  "pitch for the platform role",
			},
			want: 0.4*0.8 + 0.2 + 0.1 + 0.1 + 0.1 + 0.1,
		},
		{
			name: "user validation and high rating",
			insight: Insight{
				Confidence:        0.5,
				SourceQuestionIDs: []string{"q1"},
				KeyThemes:         []string{"analysis"},
				IsValidated:       true,
				UserRating:        5,
			},
			want: 0.2 + 0.2 + 0.1,
		},
		{
			name: "rating below four adds nothing",
			insight: Insight{
				Confidence:        0.5,
				SourceQuestionIDs: []string{"q1"},
				KeyThemes:         []string{"analysis"},
				UserRating:        3,
			},
			want: 0.20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.insight.QualityScore(), 1e-9)
		})
	}
}

func TestInsightIsHighQuality(t *testing.T) {
	thin := Insight{
		Confidence:        0.5,
		SourceQuestionIDs: []string{"q1"},
		KeyThemes:         []string{"leadership"},
	}
	assert.False(t, thin.IsHighQuality(), "0.20 is well under the 0.7 bar")

	strong := Insight{
		Confidence:        0.9,
		SourceQuestionIDs: []string{"q1", "q2", "q3"},
		KeyThemes:         []string{"a", "b", "c"},
		ActionSuggestion:  "do the thing",
		IsValidated:       true,
	}
	assert.True(t, strong.IsHighQuality())
}

func TestInsightValidate(t *testing.T) {
	valid := Insight{
		SessionID:         "s1",
		Domain:            DomainTechnical,
		Type:              InsightStrength,
		Title:             "Systems thinking",
		Confidence:        0.7,
		SourceQuestionIDs: []string{"q1"},
		KeyThemes:         []string{"problem_solving"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(i *Insight)
	}{
		{"no sources", func(i *Insight) { i.SourceQuestionIDs = nil }},
		{"no themes", func(i *Insight) { i.KeyThemes = nil }},
		{"unknown type", func(i *Insight) { i.Type = "hunch" }},
		{"confidence above one", func(i *Insight) { i.Confidence = 1.2 }},
		{"confidence negative", func(i *Insight) { i.Confidence = -0.1 }},
		{"missing title", func(i *Insight) { i.Title = "" }},
		{"rating out of range", func(i *Insight) { i.UserRating = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := valid
			tt.mutate(&i)
			err := i.Validate()
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}
