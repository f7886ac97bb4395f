package model

import "time"

// InsightType classifies what kind of finding an insight represents.
type InsightType string

const (
	InsightPattern       InsightType = "pattern"
	InsightStrength      InsightType = "strength"
	InsightValue         InsightType = "value"
	InsightInterest      InsightType = "interest"
	InsightDevelopment   InsightType = "development"
	InsightCompatibility InsightType = "compatibility"
	InsightBarrier       InsightType = "barrier"
	InsightNextStep      InsightType = "nextStep"
)

var insightTypes = map[InsightType]bool{
	InsightPattern:       true,
	InsightStrength:      true,
	InsightValue:         true,
	InsightInterest:      true,
	InsightDevelopment:   true,
	InsightCompatibility: true,
	InsightBarrier:       true,
	InsightNextStep:      true,
}

// Insight is a derived finding from one or more responses. Created by the
// generation step; the user may validate or rate it afterwards, nothing else
// mutates it.
type Insight struct {
	ID                string       `json:"id" bson:"_id,omitempty"`
	SessionID         string       `json:"sessionId" bson:"sessionId"`
	Domain            CareerDomain `json:"domain" bson:"domain"`
	Type              InsightType  `json:"type" bson:"type"`
	Title             string       `json:"title" bson:"title"`
	Description       string       `json:"description" bson:"description"`
	Confidence        float64      `json:"confidence" bson:"confidence"` // 0-1
	SourceQuestionIDs []string     `json:"sourceQuestionIds" bson:"sourceQuestionIds"`
	KeyThemes         []string     `json:"keyThemes" bson:"keyThemes"`
	ActionSuggestion  string       `json:"actionSuggestion,omitempty" bson:"actionSuggestion,omitempty"`
	UserRating        int          `json:"userRating,omitempty" bson:"userRating,omitempty"` // 1-5, 0 means unrated
	IsValidated       bool         `json:"isValidated" bson:"isValidated"`
	CreatedAt         time.Time    `json:"createdAt" bson:"createdAt"`
}

// QualityScore weighs the insight's confidence against the breadth of its
// evidence, its actionability and whether the user has confirmed it.
func (i *Insight) QualityScore() float64 {
	score := 0.4 * i.Confidence
	if len(i.SourceQuestionIDs) > 2 {
		score += 0.2
	}
	if len(i.SourceQuestionIDs) > 4 {
		score += 0.1
	}
	if len(i.KeyThemes) > 2 {
		score += 0.1
	}
	if len(i.KeyThemes) > 4 {
		score += 0.1
	}
	if i.ActionSuggestion != "" {
		score += 0.1
	}
	if i.IsValidated {
		score += 0.2
	}
	if i.UserRating >= 4 {
		score += 0.1
	}
	return clamp01(score)
}

// IsHighQuality reports whether the insight clears the 0.7 quality bar.
func (i *Insight) IsHighQuality() bool {
	return i.QualityScore() >= 0.7
}

// Validate checks required fields and ranges. An insight with zero
// evidentiary sources is invalid.
func (i *Insight) Validate() error {
	if i.SessionID == "" {
		return validationErr("sessionId", "is required")
	}
	if !i.Domain.IsValid() {
		return validationErr("domain", "unknown career domain %q", i.Domain)
	}
	if !insightTypes[i.Type] {
		return validationErr("type", "unknown insight type %q", i.Type)
	}
	if i.Title == "" {
		return validationErr("title", "is required")
	}
	if err := checkConfidence("confidence", i.Confidence); err != nil {
		return err
	}
	if len(i.SourceQuestionIDs) == 0 {
		return validationErr("sourceQuestionIds", "at least one source question is required")
	}
	if len(i.KeyThemes) == 0 {
		return validationErr("keyThemes", "at least one theme is required")
	}
	return checkOptionalRating("userRating", i.UserRating)
}

// InsightAnalysis is the derived scoring block in the JSON export.
type InsightAnalysis struct {
	QualityScore  float64 `json:"qualityScore"`
	IsHighQuality bool    `json:"isHighQuality"`
	SourceCount   int     `json:"sourceCount"`
	ThemeCount    int     `json:"themeCount"`
}

// InsightExport is the JSON projection: raw fields plus analysis.
type InsightExport struct {
	Insight
	Analysis InsightAnalysis `json:"analysis"`
}

// Export returns the deterministic JSON projection.
func (i *Insight) Export() InsightExport {
	return InsightExport{
		Insight: *i,
		Analysis: InsightAnalysis{
			QualityScore:  i.QualityScore(),
			IsHighQuality: i.IsHighQuality(),
			SourceCount:   len(i.SourceQuestionIDs),
			ThemeCount:    len(i.KeyThemes),
		},
	}
}
