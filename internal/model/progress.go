package model

import "time"

// ExplorationPhase labels where a session sits in the reflection journey.
// The product flow moves forward only, but the phase is an externally-set
// label; no computed invariant depends on it.
type ExplorationPhase string

const (
	PhaseSetup          ExplorationPhase = "setup"
	PhaseExploration    ExplorationPhase = "exploration"
	PhaseDeepening      ExplorationPhase = "deepening"
	PhaseSynthesis      ExplorationPhase = "synthesis"
	PhasePlanning       ExplorationPhase = "planning"
	PhaseImplementation ExplorationPhase = "implementation"
	PhaseReview         ExplorationPhase = "review"
)

// QualityTier is the coarse quality band of a session's responses.
type QualityTier string

const (
	TierPoor      QualityTier = "poor"
	TierFair      QualityTier = "fair"
	TierGood      QualityTier = "good"
	TierExcellent QualityTier = "excellent"
)

var qualityTierBonus = map[QualityTier]float64{
	TierPoor:      0.05,
	TierFair:      0.15,
	TierGood:      0.25,
	TierExcellent: 0.3,
}

// targetMinutesPerQuestion is the depth target; sessions averaging within
// +/-50% of it earn the full depth bonus.
const targetMinutesPerQuestion = 15.0

// Milestone marks a named point reached during the session.
type Milestone struct {
	Name      string    `json:"name" bson:"name"`
	ReachedAt time.Time `json:"reachedAt" bson:"reachedAt"`
}

// CareerProgress tracks completion and engagement for one session. Unlike
// the other entities it is updated incrementally as responses and insights
// arrive.
type CareerProgress struct {
	SessionID          string                   `json:"sessionId" bson:"sessionId"`
	Phase              ExplorationPhase         `json:"phase" bson:"phase"`
	DomainCompletion   map[CareerDomain]float64 `json:"domainCompletion" bson:"domainCompletion"` // 0-1 per domain
	Milestones         []Milestone              `json:"milestones,omitempty" bson:"milestones,omitempty"`
	ResponseCount      int                      `json:"responseCount" bson:"responseCount"`
	InsightCount       int                      `json:"insightCount" bson:"insightCount"`
	TotalTimeSpentMin  float64                  `json:"totalTimeSpentMin" bson:"totalTimeSpentMin"`
	AvgResponseQuality float64                  `json:"avgResponseQuality" bson:"avgResponseQuality"` // rolling 0-1
	QualityTier        QualityTier              `json:"qualityTier" bson:"qualityTier"`
	UpdateCount        int                      `json:"updateCount" bson:"updateCount"`
	StartedAt          time.Time                `json:"startedAt" bson:"startedAt"`
	UpdatedAt          time.Time                `json:"updatedAt" bson:"updatedAt"`
}

// CompletedDomains returns the domains whose completion has reached 1.0.
func (p *CareerProgress) CompletedDomains() []CareerDomain {
	var done []CareerDomain
	for _, d := range AllDomains {
		if p.DomainCompletion[d] >= 1.0 {
			done = append(done, d)
		}
	}
	return done
}

// CompletionPercentage is the share of domains fully completed.
func (p *CareerProgress) CompletionPercentage() float64 {
	return float64(len(p.CompletedDomains())) / float64(len(AllDomains))
}

// AvgTimePerQuestion returns minutes per answered question, or 0 when no
// responses exist yet. Empty inputs yield a neutral value instead of an
// error; this is an advisory metric.
func (p *CareerProgress) AvgTimePerQuestion() float64 {
	if p.ResponseCount == 0 {
		return 0
	}
	return p.TotalTimeSpentMin / float64(p.ResponseCount)
}

// UpdatesPerDay is the update cadence since the session started.
func (p *CareerProgress) UpdatesPerDay() float64 {
	days := p.UpdatedAt.Sub(p.StartedAt).Hours() / 24
	if days < 1 {
		days = 1
	}
	return float64(p.UpdateCount) / days
}

// EngagementScore blends completion, response quality, cadence and depth
// into a 0-1 nudge metric. More completion, higher quality and a steadier
// cadence always raise it.
func (p *CareerProgress) EngagementScore() float64 {
	score := 0.3 * p.CompletionPercentage()
	score += qualityTierBonus[p.QualityTier]

	// Weekly update volume, 2% per update, saturating at 0.2.
	consistency := p.UpdatesPerDay() * 7 * 0.02
	if consistency > 0.2 {
		consistency = 0.2
	}
	score += consistency

	avg := p.AvgTimePerQuestion()
	if avg >= targetMinutesPerQuestion*0.5 && avg <= targetMinutesPerQuestion*1.5 {
		score += 0.2
	} else {
		score += 0.1
	}
	return clamp01(score)
}

// ProgressAnalysis is the derived block in the JSON export.
type ProgressAnalysis struct {
	CompletedDomains     []CareerDomain `json:"completedDomains"`
	CompletionPercentage float64        `json:"completionPercentage"`
	AvgTimePerQuestion   float64        `json:"avgTimePerQuestion"`
	UpdatesPerDay        float64        `json:"updatesPerDay"`
	EngagementScore      float64        `json:"engagementScore"`
}

// ProgressExport is the JSON projection: raw fields plus analysis.
type ProgressExport struct {
	CareerProgress
	Analysis ProgressAnalysis `json:"analysis"`
}

// Export returns the deterministic JSON projection.
func (p *CareerProgress) Export() ProgressExport {
	return ProgressExport{
		CareerProgress: *p,
		Analysis: ProgressAnalysis{
			CompletedDomains:     p.CompletedDomains(),
			CompletionPercentage: p.CompletionPercentage(),
			AvgTimePerQuestion:   p.AvgTimePerQuestion(),
			UpdatesPerDay:        p.UpdatesPerDay(),
			EngagementScore:      p.EngagementScore(),
		},
	}
}
