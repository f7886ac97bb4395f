package model

// The structured shapes the generation collaborator returns. The scoring
// core treats these as raw input: every record still passes Validate before
// anything downstream reads it.

// GeneratedInsight is one AI-produced insight candidate.
type GeneratedInsight struct {
	Domain            CareerDomain `json:"domain"`
	Type              InsightType  `json:"type"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Confidence        float64      `json:"confidence"` // 0-1
	SourceQuestionIDs []string     `json:"sourceQuestionIds"`
	KeyThemes         []string     `json:"keyThemes"`
	ActionSuggestion  string       `json:"actionSuggestion,omitempty"`
}

// InsightGeneration is the AI response envelope for insight generation.
type InsightGeneration struct {
	Insights []GeneratedInsight `json:"insights"`
}

// SynthesisGeneration is the AI response for a synthesis pass: the bucket
// classification plus the session-level alignment assessment.
type SynthesisGeneration struct {
	AlignmentAreas           []SynthesisInsight  `json:"alignmentAreas"`
	HiddenStrengths          []SynthesisInsight  `json:"hiddenStrengths"`
	OverestimatedAreas       []SynthesisInsight  `json:"overestimatedAreas"`
	DevelopmentOpportunities []SynthesisInsight  `json:"developmentOpportunities"`
	RepositioningPotential   []SynthesisInsight  `json:"repositioningPotential"`
	AlignmentScore           float64             `json:"alignmentScore"` // 0-1
	ConfidenceLevel          SynthesisConfidence `json:"confidenceLevel"`
	ExecutiveSummary         string              `json:"executiveSummary,omitempty"`
	Recommendations          []string            `json:"recommendations,omitempty"`
}

// FiveInsightsGeneration is the AI response for a five-insights pass.
type FiveInsightsGeneration struct {
	EnergizingStrengths   []EnergizingStrength   `json:"energizingStrengths"`
	HiddenStrengths       []HiddenStrength       `json:"hiddenStrengths"`
	OverusedTalents       []OverusedTalent       `json:"overusedTalents"`
	AspirationalStrengths []AspirationalStrength `json:"aspirationalStrengths"`
	MisalignedEnergies    []MisalignedEnergy     `json:"misalignedEnergies"`
	BalanceScore          float64                `json:"balanceScore"` // 0-1
	Recommendations       []string               `json:"recommendations,omitempty"`
}
