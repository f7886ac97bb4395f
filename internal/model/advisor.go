package model

import "time"

// ObservationPeriod is how long an advisor has observed the subject.
type ObservationPeriod string

const (
	ObservedUnderOneMonth   ObservationPeriod = "under_one_month"
	ObservedOneToSixMonths  ObservationPeriod = "one_to_six_months"
	ObservedSixMonthsToYear ObservationPeriod = "six_months_to_year"
	ObservedOneToThreeYears ObservationPeriod = "one_to_three_years"
	ObservedOverThreeYears  ObservationPeriod = "over_three_years"
)

// observationWeights maps observation tiers to their credibility contribution.
// Longer observation windows count for more, up to 0.5 for multi-year history.
var observationWeights = map[ObservationPeriod]float64{
	ObservedUnderOneMonth:   0.1,
	ObservedOneToSixMonths:  0.2,
	ObservedSixMonthsToYear: 0.3,
	ObservedOneToThreeYears: 0.4,
	ObservedOverThreeYears:  0.5,
}

// ConfidenceContext is the advisor's self-reported certainty about their
// assessment.
type ConfidenceContext string

const (
	ContextUncertain         ConfidenceContext = "uncertain"
	ContextSomewhatUncertain ConfidenceContext = "somewhat_uncertain"
	ContextNeutral           ConfidenceContext = "neutral"
	ContextConfident         ConfidenceContext = "confident"
	ContextVeryConfident     ConfidenceContext = "very_confident"
)

var confidenceContextWeights = map[ConfidenceContext]float64{
	ContextUncertain:         0.0,
	ContextSomewhatUncertain: 0.05,
	ContextNeutral:           0.1,
	ContextConfident:         0.15,
	ContextVeryConfident:     0.2,
}

// AdvisorResponse is an external advisor's answer to one question about the
// subject. Immutable after submission.
type AdvisorResponse struct {
	ID                string            `json:"id" bson:"_id,omitempty"`
	InvitationID      string            `json:"invitationId" bson:"invitationId"`
	SessionID         string            `json:"sessionId" bson:"sessionId"`
	QuestionID        string            `json:"questionId" bson:"questionId"`
	Domain            CareerDomain      `json:"domain" bson:"domain"`
	Text              string            `json:"text" bson:"text"`
	ConfidenceLevel   int               `json:"confidenceLevel,omitempty" bson:"confidenceLevel,omitempty"` // 1-5, 0 means not given
	ObservationPeriod ObservationPeriod `json:"observationPeriod" bson:"observationPeriod"`
	ConfidenceContext ConfidenceContext `json:"confidenceContext" bson:"confidenceContext"`
	SpecificExamples  []string          `json:"specificExamples,omitempty" bson:"specificExamples,omitempty"`
	AdditionalContext string            `json:"additionalContext,omitempty" bson:"additionalContext,omitempty"`
	SubmittedAt       time.Time         `json:"submittedAt" bson:"submittedAt"`
}

// WordCount returns the number of whitespace-separated words in the text.
func (a *AdvisorResponse) WordCount() int {
	return wordCount(a.Text)
}

// IsSubstantive reports whether the answer carries enough text to score.
func (a *AdvisorResponse) IsSubstantive() bool {
	return substantive(a.Text)
}

// CredibilityWeight is a heuristic 0.5-1.0 multiplier reflecting how much the
// advisor's observation history and confidence should count toward this
// response's weight in synthesis. The 0.5 base keeps every advisor voice in
// the mix; corroboration raises it.
func (a *AdvisorResponse) CredibilityWeight() float64 {
	weight := 0.5
	weight += observationWeights[a.ObservationPeriod]
	if a.ConfidenceLevel > 0 {
		weight += float64(a.ConfidenceLevel) / 5.0 * 0.3
	}
	weight += confidenceContextWeights[a.ConfidenceContext]
	if len(a.SpecificExamples) > 0 {
		weight += 0.1
	}
	if len(a.SpecificExamples) > 2 {
		weight += 0.1
	}
	if a.IsSubstantive() {
		weight += 0.1
	}
	return clamp01(weight)
}

// QualityScore is the advisor variant of the response quality heuristic.
// Credibility feeds in at 30% so a long-standing, confident advisor outranks
// an anonymous drive-by of the same length.
func (a *AdvisorResponse) QualityScore() float64 {
	score := 0.0
	if a.IsSubstantive() {
		score += 0.3
	}
	words := a.WordCount()
	if words > 50 {
		score += 0.2
	}
	if words > 100 {
		score += 0.1
	}
	score += a.CredibilityWeight() * 0.3
	if len(a.SpecificExamples) > 0 {
		score += 0.2
	}
	if a.AdditionalContext != "" {
		score += 0.1
	}
	return clamp01(score)
}

// Validate checks required fields and rating ranges before persistence.
func (a *AdvisorResponse) Validate() error {
	if a.InvitationID == "" {
		return validationErr("invitationId", "is required")
	}
	if a.SessionID == "" {
		return validationErr("sessionId", "is required")
	}
	if a.QuestionID == "" {
		return validationErr("questionId", "is required")
	}
	if !a.Domain.IsValid() {
		return validationErr("domain", "unknown career domain %q", a.Domain)
	}
	if a.Text == "" {
		return validationErr("text", "is required")
	}
	if _, ok := observationWeights[a.ObservationPeriod]; !ok {
		return validationErr("observationPeriod", "unknown observation period %q", a.ObservationPeriod)
	}
	if _, ok := confidenceContextWeights[a.ConfidenceContext]; !ok {
		return validationErr("confidenceContext", "unknown confidence context %q", a.ConfidenceContext)
	}
	return checkOptionalRating("confidenceLevel", a.ConfidenceLevel)
}

// AdvisorResponseAnalysis is the derived scoring block in the JSON export.
type AdvisorResponseAnalysis struct {
	WordCount         int     `json:"wordCount"`
	IsSubstantive     bool    `json:"isSubstantive"`
	CredibilityWeight float64 `json:"credibilityWeight"`
	QualityScore      float64 `json:"qualityScore"`
}

// AdvisorResponseExport is the JSON projection: raw fields plus analysis.
type AdvisorResponseExport struct {
	AdvisorResponse
	Analysis AdvisorResponseAnalysis `json:"analysis"`
}

// Export returns the deterministic JSON projection.
func (a *AdvisorResponse) Export() AdvisorResponseExport {
	return AdvisorResponseExport{
		AdvisorResponse: *a,
		Analysis: AdvisorResponseAnalysis{
			WordCount:         a.WordCount(),
			IsSubstantive:     a.IsSubstantive(),
			CredibilityWeight: a.CredibilityWeight(),
			QualityScore:      a.QualityScore(),
		},
	}
}
