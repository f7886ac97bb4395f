package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredibilityWeightFloor(t *testing.T) {
	a := AdvisorResponse{}
	assert.InDelta(t, 0.5, a.CredibilityWeight(), 1e-9,
		"an advisor with nothing going for them still keeps the 0.5 base")
}

func TestCredibilityWeight(t *testing.T) {
	tests := []struct {
		name     string
		response AdvisorResponse
		want     float64
	}{
		{
			name: "short observation, uncertain",
			response: AdvisorResponse{
				ObservationPeriod: ObservedUnderOneMonth,
				ConfidenceContext: ContextUncertain,
			},
			want: 0.6,
		},
		{
			name: "long observation with one example",
			response: AdvisorResponse{
				ObservationPeriod: ObservedOneToThreeYears,
				ConfidenceContext: ContextNeutral,
				SpecificExamples:  []string{"led the migration"},
			},
			want: 0.5 + 0.4 + 0.1 + 0.1,
		},
		{
			name: "everything maxed clamps to 1",
			response: AdvisorResponse{
				Text:              words(30),
				ConfidenceLevel:   5,
				ObservationPeriod: ObservedOverThreeYears,
				ConfidenceContext: ContextVeryConfident,
				SpecificExamples:  []string{"a", "b", "c"},
			},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.response.CredibilityWeight(), 1e-9)
		})
	}
}

func TestCredibilityWeightMonotonicInObservation(t *testing.T) {
	periods := []ObservationPeriod{
		ObservedUnderOneMonth,
		ObservedOneToSixMonths,
		ObservedSixMonthsToYear,
		ObservedOneToThreeYears,
		ObservedOverThreeYears,
	}
	prev := -1.0
	for _, p := range periods {
		a := AdvisorResponse{ObservationPeriod: p}
		w := a.CredibilityWeight()
		assert.Greater(t, w, prev, "longer observation must not lower credibility")
		prev = w
	}
}

func TestAdvisorQualityScoreUsesCredibility(t *testing.T) {
	base := AdvisorResponse{
		Text:              words(60),
		ObservationPeriod: ObservedUnderOneMonth,
		ConfidenceContext: ContextUncertain,
	}
	veteran := base
	veteran.ObservationPeriod = ObservedOverThreeYears
	veteran.ConfidenceContext = ContextVeryConfident

	assert.Greater(t, veteran.QualityScore(), base.QualityScore(),
		"same text, higher credibility, higher quality")
}

func TestAdvisorResponseValidate(t *testing.T) {
	valid := AdvisorResponse{
		InvitationID:      "i1",
		SessionID:         "s1",
		QuestionID:        "q1",
		Domain:            DomainLeadership,
		Text:              "She ran the team well.",
		ObservationPeriod: ObservedOneToSixMonths,
		ConfidenceContext: ContextConfident,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(a *AdvisorResponse)
	}{
		{"missing invitation", func(a *AdvisorResponse) { a.InvitationID = "" }},
		{"unknown observation period", func(a *AdvisorResponse) { a.ObservationPeriod = "forever" }},
		{"unknown confidence context", func(a *AdvisorResponse) { a.ConfidenceContext = "sure" }},
		{"out of range confidence", func(a *AdvisorResponse) { a.ConfidenceLevel = 7 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			err := a.Validate()
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestAdvisorExportCarriesCredibility(t *testing.T) {
	a := AdvisorResponse{
		InvitationID:      "i1",
		SessionID:         "s1",
		QuestionID:        "q1",
		Domain:            DomainSocial,
		Text:              words(40),
		ObservationPeriod: ObservedSixMonthsToYear,
		ConfidenceContext: ContextNeutral,
		SpecificExamples:  []string{"mentored two interns"},
	}

	export := a.Export()
	assert.InDelta(t, a.CredibilityWeight(), export.Analysis.CredibilityWeight, 1e-9)
	assert.InDelta(t, a.QualityScore(), export.Analysis.QualityScore, 1e-9)
	assert.Equal(t, a, export.AdvisorResponse)
}
