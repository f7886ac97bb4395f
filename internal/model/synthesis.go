package model

import (
	"sort"
	"time"
)

// SynthesisCategory is the bucket a synthesis insight falls into when
// self- and advisor perspectives are compared.
type SynthesisCategory string

const (
	SynthesisAlignment     SynthesisCategory = "alignment"
	SynthesisHidden        SynthesisCategory = "hidden_strength"
	SynthesisOverestimated SynthesisCategory = "overestimated"
	SynthesisDevelopment   SynthesisCategory = "development"
	SynthesisRepositioning SynthesisCategory = "repositioning"
)

// SynthesisConfidence is the overall confidence level of a synthesis pass.
type SynthesisConfidence string

const (
	SynthesisConfidenceHigh   SynthesisConfidence = "high"
	SynthesisConfidenceMedium SynthesisConfidence = "medium"
	SynthesisConfidenceLow    SynthesisConfidence = "low"
)

var synthesisConfidenceBonus = map[SynthesisConfidence]float64{
	SynthesisConfidenceHigh:   0.3,
	SynthesisConfidenceMedium: 0.2,
	SynthesisConfidenceLow:    0.1,
}

// SynthesisInsight is one already-bucketed finding produced by the
// generation step. The engine aggregates and scores these; it does not
// decide the bucket itself.
type SynthesisInsight struct {
	ID                  string            `json:"id" bson:"_id,omitempty"`
	Title               string            `json:"title" bson:"title"`
	Description         string            `json:"description" bson:"description"`
	Category            SynthesisCategory `json:"category" bson:"category"`
	SupportingEvidence  []string          `json:"supportingEvidence,omitempty" bson:"supportingEvidence,omitempty"`
	StrategicImportance int               `json:"strategicImportance" bson:"strategicImportance"` // 1-5
	ActionableAdvice    string            `json:"actionableAdvice,omitempty" bson:"actionableAdvice,omitempty"`
	KeyThemes           []string          `json:"keyThemes,omitempty" bson:"keyThemes,omitempty"`
	Confidence          float64           `json:"confidence" bson:"confidence"` // 0-1
}

// IsHighPriority reports high strategic importance backed by high confidence.
func (s *SynthesisInsight) IsHighPriority() bool {
	return s.StrategicImportance >= 4 && s.Confidence >= 0.7
}

// Validate rejects out-of-range values rather than clamping them, since
// importance and confidence drive downstream prioritization.
func (s *SynthesisInsight) Validate() error {
	if s.Title == "" {
		return validationErr("title", "is required")
	}
	if err := checkRating("strategicImportance", s.StrategicImportance); err != nil {
		return err
	}
	return checkConfidence("confidence", s.Confidence)
}

// CareerSynthesis is the self-vs-advisor comparison for a session.
// Immutable once generated.
type CareerSynthesis struct {
	ID                       string              `json:"id" bson:"_id,omitempty"`
	SessionID                string              `json:"sessionId" bson:"sessionId"`
	SelfResponseIDs          []string            `json:"selfResponseIds" bson:"selfResponseIds"`
	AdvisorResponseIDs       []string            `json:"advisorResponseIds" bson:"advisorResponseIds"`
	AlignmentAreas           []SynthesisInsight  `json:"alignmentAreas" bson:"alignmentAreas"`
	HiddenStrengths          []SynthesisInsight  `json:"hiddenStrengths" bson:"hiddenStrengths"`
	OverestimatedAreas       []SynthesisInsight  `json:"overestimatedAreas" bson:"overestimatedAreas"`
	DevelopmentOpportunities []SynthesisInsight  `json:"developmentOpportunities" bson:"developmentOpportunities"`
	RepositioningPotential   []SynthesisInsight  `json:"repositioningPotential" bson:"repositioningPotential"`
	AlignmentScore           float64             `json:"alignmentScore" bson:"alignmentScore"` // 0-1
	ConfidenceLevel          SynthesisConfidence `json:"confidenceLevel" bson:"confidenceLevel"`
	ExecutiveSummary         string              `json:"executiveSummary,omitempty" bson:"executiveSummary,omitempty"`
	Recommendations          []string            `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	GeneratedAt              time.Time           `json:"generatedAt" bson:"generatedAt"`
}

// buckets returns the five insight lists in canonical order.
func (c *CareerSynthesis) buckets() [][]SynthesisInsight {
	return [][]SynthesisInsight{
		c.AlignmentAreas,
		c.HiddenStrengths,
		c.OverestimatedAreas,
		c.DevelopmentOpportunities,
		c.RepositioningPotential,
	}
}

// TotalInsights is the sum of all five bucket lengths.
func (c *CareerSynthesis) TotalInsights() int {
	total := 0
	for _, b := range c.buckets() {
		total += len(b)
	}
	return total
}

// HighImpactInsights returns every insight with strategic importance of 4 or
// more, across all buckets, sorted by importance descending. The sort is
// stable so bucket order breaks ties.
func (c *CareerSynthesis) HighImpactInsights() []SynthesisInsight {
	var high []SynthesisInsight
	for _, b := range c.buckets() {
		for _, in := range b {
			if in.StrategicImportance >= 4 {
				high = append(high, in)
			}
		}
	}
	sort.SliceStable(high, func(i, j int) bool {
		return high[i].StrategicImportance > high[j].StrategicImportance
	})
	return high
}

// ActionableInsights returns insights from the hidden, development and
// repositioning buckets that carry concrete advice.
func (c *CareerSynthesis) ActionableInsights() []SynthesisInsight {
	var actionable []SynthesisInsight
	for _, b := range [][]SynthesisInsight{c.HiddenStrengths, c.DevelopmentOpportunities, c.RepositioningPotential} {
		for _, in := range b {
			if in.ActionableAdvice != "" {
				actionable = append(actionable, in)
			}
		}
	}
	return actionable
}

// SynthesisQuality is a 0-1 heuristic for how complete and trustworthy the
// synthesis pass is: insight volume (capped at 0.3), alignment, overall
// confidence, a written summary and a recommendation list all contribute.
func (c *CareerSynthesis) SynthesisQuality() float64 {
	score := float64(c.TotalInsights()) / 20.0
	if score > 0.3 {
		score = 0.3
	}
	score += c.AlignmentScore * 0.2
	score += synthesisConfidenceBonus[c.ConfidenceLevel]
	if len(c.ExecutiveSummary) > 100 {
		score += 0.1
	}
	recBonus := float64(len(c.Recommendations)) / 10.0
	if recBonus > 0.1 {
		recBonus = 0.1
	}
	score += recBonus
	return clamp01(score)
}

// Validate checks the synthesis and every bucketed insight. A single
// out-of-range insight fails the whole record.
func (c *CareerSynthesis) Validate() error {
	if c.SessionID == "" {
		return validationErr("sessionId", "is required")
	}
	if err := checkConfidence("alignmentScore", c.AlignmentScore); err != nil {
		return err
	}
	if _, ok := synthesisConfidenceBonus[c.ConfidenceLevel]; !ok {
		return validationErr("confidenceLevel", "unknown confidence level %q", c.ConfidenceLevel)
	}
	for _, b := range c.buckets() {
		for i := range b {
			if err := b[i].Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// SynthesisAnalysis is the derived block in the JSON export.
type SynthesisAnalysis struct {
	TotalInsights      int                `json:"totalInsights"`
	HighImpactInsights []SynthesisInsight `json:"highImpactInsights"`
	ActionableInsights []SynthesisInsight `json:"actionableInsights"`
	SynthesisQuality   float64            `json:"synthesisQuality"`
}

// SynthesisExport is the JSON projection: raw fields plus analysis.
type SynthesisExport struct {
	CareerSynthesis
	Analysis SynthesisAnalysis `json:"analysis"`
}

// Export returns the deterministic JSON projection.
func (c *CareerSynthesis) Export() SynthesisExport {
	return SynthesisExport{
		CareerSynthesis: *c,
		Analysis: SynthesisAnalysis{
			TotalInsights:      c.TotalInsights(),
			HighImpactInsights: c.HighImpactInsights(),
			ActionableInsights: c.ActionableInsights(),
			SynthesisQuality:   c.SynthesisQuality(),
		},
	}
}
