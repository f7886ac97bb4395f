package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("reflection ", n))
}

func TestResponseQualityScore(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		want     float64
	}{
		{
			name:     "empty text scores zero",
			response: Response{},
			want:     0.0,
		},
		{
			name:     "short text below substantive floor",
			response: Response{Text: "yes I think so"},
			want:     0.0,
		},
		{
			name:     "substantive completed response with 60 words",
			response: Response{Text: words(60), IsReflectionComplete: true},
			want:     0.7,
		},
		{
			name:     "long confident completed response saturates",
			response: Response{Text: words(120), ConfidenceLevel: 5, IsReflectionComplete: true},
			want:     1.0,
		},
		{
			name:     "substantive only",
			response: Response{Text: words(10)},
			want:     0.3,
		},
		{
			name:     "mid confidence adds proportionally",
			response: Response{Text: words(10), ConfidenceLevel: 3},
			want:     0.3 + 3.0/5.0*0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.response.QualityScore(), 1e-9)
		})
	}
}

func TestResponseQualityScoreMonotonicInConfidence(t *testing.T) {
	prev := -1.0
	for conf := 1; conf <= 5; conf++ {
		r := Response{Text: words(30), ConfidenceLevel: conf}
		score := r.QualityScore()
		assert.Greater(t, score, prev, "confidence %d should score above confidence %d", conf, conf-1)
		prev = score
	}
}

func TestResponseValidate(t *testing.T) {
	valid := Response{
		SessionID:  "s1",
		QuestionID: "q1",
		Domain:     DomainTechnical,
		Text:       "I enjoy building systems.",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *Response)
		field  string
	}{
		{"missing session", func(r *Response) { r.SessionID = "" }, "sessionId"},
		{"missing question", func(r *Response) { r.QuestionID = "" }, "questionId"},
		{"unknown domain", func(r *Response) { r.Domain = "astrology" }, "domain"},
		{"empty text", func(r *Response) { r.Text = "" }, "text"},
		{"confidence too high", func(r *Response) { r.ConfidenceLevel = 6 }, "confidenceLevel"},
		{"confidence negative", func(r *Response) { r.ConfidenceLevel = -1 }, "confidenceLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestResponseValidateNeverClamps(t *testing.T) {
	r := Response{
		SessionID:       "s1",
		QuestionID:      "q1",
		Domain:          DomainCreative,
		Text:            "text",
		ConfidenceLevel: 9,
	}
	require.Error(t, r.Validate())
	assert.Equal(t, 9, r.ConfidenceLevel, "validation must reject, not mutate")
}

func TestResponseExportRoundTrip(t *testing.T) {
	r := Response{
		ID:                   "r1",
		SessionID:            "s1",
		QuestionID:           "q1",
		Domain:               DomainAnalytical,
		Text:                 words(55),
		ConfidenceLevel:      4,
		IsReflectionComplete: true,
		AnsweredAt:           time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(r.Export())
	require.NoError(t, err)

	var decoded ResponseExport
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, r, decoded.Response, "raw fields survive the analysis block")
	assert.Equal(t, 55, decoded.Analysis.WordCount)
	assert.True(t, decoded.Analysis.IsSubstantive)
	assert.InDelta(t, r.QualityScore(), decoded.Analysis.QualityScore, 1e-9)
}
