package model

import "time"

// Response is a self-answer to one reflection question. Immutable after
// submission; referenced by id from insights and syntheses.
type Response struct {
	ID                   string       `json:"id" bson:"_id,omitempty"`
	SessionID            string       `json:"sessionId" bson:"sessionId"`
	QuestionID           string       `json:"questionId" bson:"questionId"`
	Domain               CareerDomain `json:"domain" bson:"domain"`
	Text                 string       `json:"text" bson:"text"`
	ConfidenceLevel      int          `json:"confidenceLevel,omitempty" bson:"confidenceLevel,omitempty"` // 1-5, 0 means not given
	IsReflectionComplete bool         `json:"isReflectionComplete" bson:"isReflectionComplete"`
	AnsweredAt           time.Time    `json:"answeredAt" bson:"answeredAt"`
}

// WordCount returns the number of whitespace-separated words in the text.
func (r *Response) WordCount() int {
	return wordCount(r.Text)
}

// IsSubstantive reports whether the response carries enough text to score:
// more than 20 characters trimmed and more than 5 words.
func (r *Response) IsSubstantive() bool {
	return substantive(r.Text)
}

// QualityScore is a heuristic 0-1 proxy for how much signal the response
// carries. More detail, more confidence and a completed reflection all push
// the score up; it is used to rank and filter responses for synthesis, not
// as ground truth.
func (r *Response) QualityScore() float64 {
	score := 0.0
	if r.IsSubstantive() {
		score += 0.3
	}
	words := r.WordCount()
	if words > 50 {
		score += 0.2
	}
	if words > 100 {
		score += 0.1
	}
	if r.ConfidenceLevel > 0 {
		score += float64(r.ConfidenceLevel) / 5.0 * 0.2
	}
	if r.IsReflectionComplete {
		score += 0.2
	}
	return clamp01(score)
}

// Validate checks required fields and rating ranges before persistence.
func (r *Response) Validate() error {
	if r.SessionID == "" {
		return validationErr("sessionId", "is required")
	}
	if r.QuestionID == "" {
		return validationErr("questionId", "is required")
	}
	if !r.Domain.IsValid() {
		return validationErr("domain", "unknown career domain %q", r.Domain)
	}
	if r.Text == "" {
		return validationErr("text", "is required")
	}
	return checkOptionalRating("confidenceLevel", r.ConfidenceLevel)
}

// ResponseAnalysis is the derived scoring block included in the JSON export.
type ResponseAnalysis struct {
	WordCount     int     `json:"wordCount"`
	IsSubstantive bool    `json:"isSubstantive"`
	QualityScore  float64 `json:"qualityScore"`
}

// ResponseExport is the JSON projection: raw fields plus the analysis block.
type ResponseExport struct {
	Response
	Analysis ResponseAnalysis `json:"analysis"`
}

// Export returns the deterministic JSON projection consumed by report
// rendering. Re-parsing the raw fields reproduces the original record.
func (r *Response) Export() ResponseExport {
	return ResponseExport{
		Response: *r,
		Analysis: ResponseAnalysis{
			WordCount:     r.WordCount(),
			IsSubstantive: r.IsSubstantive(),
			QualityScore:  r.QualityScore(),
		},
	}
}
