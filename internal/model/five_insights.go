package model

import "time"

// FiveInsightsCategory names one of the five strategic strength categories.
type FiveInsightsCategory string

const (
	CategoryEnergizing   FiveInsightsCategory = "energizing"
	CategoryHidden       FiveInsightsCategory = "hidden"
	CategoryOverused     FiveInsightsCategory = "overused"
	CategoryAspirational FiveInsightsCategory = "aspirational"
	CategoryMisaligned   FiveInsightsCategory = "misaligned"
)

// fiveCategories is the canonical ordering used for tie-breaking and for
// assembling priority actions.
var fiveCategories = []FiveInsightsCategory{
	CategoryEnergizing,
	CategoryHidden,
	CategoryOverused,
	CategoryAspirational,
	CategoryMisaligned,
}

// EnergizingStrength is something the subject is good at, enjoys and gets
// recognized for. All sub-ratings are 1-5.
type EnergizingStrength struct {
	Title            string       `json:"title" bson:"title"`
	Domain           CareerDomain `json:"domain" bson:"domain"`
	SkillLevel       int          `json:"skillLevel" bson:"skillLevel"`
	EnergyLevel      int          `json:"energyLevel" bson:"energyLevel"`
	RecognitionLevel int          `json:"recognitionLevel" bson:"recognitionLevel"`
	Leverageability  int          `json:"leverageability" bson:"leverageability"`
	ActionableAdvice string       `json:"actionableAdvice,omitempty" bson:"actionableAdvice,omitempty"`
}

// IsSignatureStrength reports whether skill, energy and recognition are all
// at 4 or above.
func (s *EnergizingStrength) IsSignatureStrength() bool {
	return s.SkillLevel >= 4 && s.EnergyLevel >= 4 && s.RecognitionLevel >= 4
}

func (s *EnergizingStrength) validate() error {
	if err := checkRating("skillLevel", s.SkillLevel); err != nil {
		return err
	}
	if err := checkRating("energyLevel", s.EnergyLevel); err != nil {
		return err
	}
	if err := checkRating("recognitionLevel", s.RecognitionLevel); err != nil {
		return err
	}
	return checkRating("leverageability", s.Leverageability)
}

// HiddenStrength is a competence others have not noticed yet.
type HiddenStrength struct {
	Title               string       `json:"title" bson:"title"`
	Domain              CareerDomain `json:"domain" bson:"domain"`
	CompetenceLevel     int          `json:"competenceLevel" bson:"competenceLevel"`
	RecognitionLevel    int          `json:"recognitionLevel" bson:"recognitionLevel"`
	PotentialImpact     int          `json:"potentialImpact" bson:"potentialImpact"`
	DevelopmentStrategy string       `json:"developmentStrategy,omitempty" bson:"developmentStrategy,omitempty"`
}

// IsHighPriority reports whether the competence-recognition gap is wide
// enough (>= 2) on a real competence (>= 4) with high potential impact.
func (s *HiddenStrength) IsHighPriority() bool {
	return s.CompetenceLevel >= 4 &&
		s.CompetenceLevel-s.RecognitionLevel >= 2 &&
		s.PotentialImpact >= 4
}

func (s *HiddenStrength) validate() error {
	if err := checkRating("competenceLevel", s.CompetenceLevel); err != nil {
		return err
	}
	if err := checkRating("recognitionLevel", s.RecognitionLevel); err != nil {
		return err
	}
	return checkRating("potentialImpact", s.PotentialImpact)
}

// OverusedTalent is a strength leaned on so heavily it risks burnout.
type OverusedTalent struct {
	Title               string       `json:"title" bson:"title"`
	Domain              CareerDomain `json:"domain" bson:"domain"`
	BurnoutRisk         int          `json:"burnoutRisk" bson:"burnoutRisk"`
	UsageFrequency      int          `json:"usageFrequency" bson:"usageFrequency"`
	RebalancingStrategy string       `json:"rebalancingStrategy,omitempty" bson:"rebalancingStrategy,omitempty"`
}

// RequiresImmediateAttention reports high burnout risk on a heavily used
// talent.
func (t *OverusedTalent) RequiresImmediateAttention() bool {
	return t.BurnoutRisk >= 4 && t.UsageFrequency >= 4
}

func (t *OverusedTalent) validate() error {
	if err := checkRating("burnoutRisk", t.BurnoutRisk); err != nil {
		return err
	}
	return checkRating("usageFrequency", t.UsageFrequency)
}

// AspirationalStrength is a capability the subject wants to grow into.
type AspirationalStrength struct {
	Title                string       `json:"title" bson:"title"`
	Domain               CareerDomain `json:"domain" bson:"domain"`
	InterestLevel        int          `json:"interestLevel" bson:"interestLevel"`
	DevelopmentPotential int          `json:"developmentPotential" bson:"developmentPotential"`
	DevelopmentPlan      string       `json:"developmentPlan,omitempty" bson:"developmentPlan,omitempty"`
}

// IsWorthInvesting reports strong interest (>= 4) with at least moderate
// development potential (>= 3).
func (s *AspirationalStrength) IsWorthInvesting() bool {
	return s.InterestLevel >= 4 && s.DevelopmentPotential >= 3
}

func (s *AspirationalStrength) validate() error {
	if err := checkRating("interestLevel", s.InterestLevel); err != nil {
		return err
	}
	return checkRating("developmentPotential", s.DevelopmentPotential)
}

// MisalignedEnergy is an activity that drains the subject despite frequent
// demand for it.
type MisalignedEnergy struct {
	Title              string       `json:"title" bson:"title"`
	Domain             CareerDomain `json:"domain" bson:"domain"`
	EnergyDrainLevel   int          `json:"energyDrainLevel" bson:"energyDrainLevel"`
	Frequency          int          `json:"frequency" bson:"frequency"`
	MitigationStrategy string       `json:"mitigationStrategy,omitempty" bson:"mitigationStrategy,omitempty"`
}

// RequiresUrgentAttention reports a heavy drain hit frequently.
func (m *MisalignedEnergy) RequiresUrgentAttention() bool {
	return m.EnergyDrainLevel >= 4 && m.Frequency >= 4
}

func (m *MisalignedEnergy) validate() error {
	if err := checkRating("energyDrainLevel", m.EnergyDrainLevel); err != nil {
		return err
	}
	return checkRating("frequency", m.Frequency)
}

// FiveInsightsModel is the five-category strengths profile for a session.
// Generated once per synthesis pass; regeneration replaces the prior
// instance.
type FiveInsightsModel struct {
	ID                    string                 `json:"id" bson:"_id,omitempty"`
	SessionID             string                 `json:"sessionId" bson:"sessionId"`
	EnergizingStrengths   []EnergizingStrength   `json:"energizingStrengths" bson:"energizingStrengths"`
	HiddenStrengths       []HiddenStrength       `json:"hiddenStrengths" bson:"hiddenStrengths"`
	OverusedTalents       []OverusedTalent       `json:"overusedTalents" bson:"overusedTalents"`
	AspirationalStrengths []AspirationalStrength `json:"aspirationalStrengths" bson:"aspirationalStrengths"`
	MisalignedEnergies    []MisalignedEnergy     `json:"misalignedEnergies" bson:"misalignedEnergies"`
	BalanceScore          float64                `json:"balanceScore" bson:"balanceScore"` // 0-1, supplied per session
	Recommendations       []string               `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
	GeneratedAt           time.Time              `json:"generatedAt" bson:"generatedAt"`
}

// maxPriorityActions caps the combined priority action list.
const maxPriorityActions = 8

// CategoryCounts returns the item count per category in canonical order.
func (f *FiveInsightsModel) CategoryCounts() map[FiveInsightsCategory]int {
	return map[FiveInsightsCategory]int{
		CategoryEnergizing:   len(f.EnergizingStrengths),
		CategoryHidden:       len(f.HiddenStrengths),
		CategoryOverused:     len(f.OverusedTalents),
		CategoryAspirational: len(f.AspirationalStrengths),
		CategoryMisaligned:   len(f.MisalignedEnergies),
	}
}

// DominantCategory is the category with the most items; the first category
// in canonical order wins ties.
func (f *FiveInsightsModel) DominantCategory() FiveInsightsCategory {
	counts := f.CategoryCounts()
	dominant := fiveCategories[0]
	for _, cat := range fiveCategories[1:] {
		if counts[cat] > counts[dominant] {
			dominant = cat
		}
	}
	return dominant
}

// IsWellBalanced requires the category counts to be within 2 of each other
// and the session balance score to reach 0.6. A low balance score always
// fails, regardless of the count distribution.
func (f *FiveInsightsModel) IsWellBalanced() bool {
	if f.BalanceScore < 0.6 {
		return false
	}
	counts := f.CategoryCounts()
	min, max := counts[fiveCategories[0]], counts[fiveCategories[0]]
	for _, cat := range fiveCategories[1:] {
		if counts[cat] < min {
			min = counts[cat]
		}
		if counts[cat] > max {
			max = counts[cat]
		}
	}
	return max-min <= 2
}

// PriorityActions assembles the next-step list across categories: up to two
// leverage moves, two development moves, one rebalance, two build moves and
// one mitigation, in that order, capped at eight total.
func (f *FiveInsightsModel) PriorityActions() []string {
	actions := make([]string, 0, maxPriorityActions)

	taken := 0
	for _, s := range f.EnergizingStrengths {
		if taken >= 2 {
			break
		}
		if s.Leverageability >= 4 && s.ActionableAdvice != "" {
			actions = append(actions, "Leverage: "+s.ActionableAdvice)
			taken++
		}
	}

	taken = 0
	for _, s := range f.HiddenStrengths {
		if taken >= 2 {
			break
		}
		if s.PotentialImpact >= 4 && s.DevelopmentStrategy != "" {
			actions = append(actions, "Develop: "+s.DevelopmentStrategy)
			taken++
		}
	}

	taken = 0
	for _, t := range f.OverusedTalents {
		if taken >= 1 {
			break
		}
		if t.BurnoutRisk >= 4 && t.RebalancingStrategy != "" {
			actions = append(actions, "Rebalance: "+t.RebalancingStrategy)
			taken++
		}
	}

	taken = 0
	for _, s := range f.AspirationalStrengths {
		if taken >= 2 {
			break
		}
		if s.DevelopmentPotential >= 4 && s.DevelopmentPlan != "" {
			actions = append(actions, "Build: "+s.DevelopmentPlan)
			taken++
		}
	}

	taken = 0
	for _, m := range f.MisalignedEnergies {
		if taken >= 1 {
			break
		}
		if m.EnergyDrainLevel >= 4 && m.MitigationStrategy != "" {
			actions = append(actions, "Address: "+m.MitigationStrategy)
			taken++
		}
	}

	if len(actions) > maxPriorityActions {
		actions = actions[:maxPriorityActions]
	}
	return actions
}

// Validate rejects any out-of-range sub-rating or balance score. Ratings
// drive prioritization, so bad values are errors, never clamped.
func (f *FiveInsightsModel) Validate() error {
	if f.SessionID == "" {
		return validationErr("sessionId", "is required")
	}
	if err := checkConfidence("balanceScore", f.BalanceScore); err != nil {
		return err
	}
	for i := range f.EnergizingStrengths {
		if err := f.EnergizingStrengths[i].validate(); err != nil {
			return err
		}
	}
	for i := range f.HiddenStrengths {
		if err := f.HiddenStrengths[i].validate(); err != nil {
			return err
		}
	}
	for i := range f.OverusedTalents {
		if err := f.OverusedTalents[i].validate(); err != nil {
			return err
		}
	}
	for i := range f.AspirationalStrengths {
		if err := f.AspirationalStrengths[i].validate(); err != nil {
			return err
		}
	}
	for i := range f.MisalignedEnergies {
		if err := f.MisalignedEnergies[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// FiveInsightsAnalysis is the derived block in the JSON export.
type FiveInsightsAnalysis struct {
	CategoryCounts   map[FiveInsightsCategory]int `json:"categoryCounts"`
	DominantCategory FiveInsightsCategory         `json:"dominantCategory"`
	IsWellBalanced   bool                         `json:"isWellBalanced"`
	PriorityActions  []string                     `json:"priorityActions"`
}

// FiveInsightsExport is the JSON projection: raw fields plus analysis.
type FiveInsightsExport struct {
	FiveInsightsModel
	Analysis FiveInsightsAnalysis `json:"analysis"`
}

// Export returns the deterministic JSON projection.
func (f *FiveInsightsModel) Export() FiveInsightsExport {
	return FiveInsightsExport{
		FiveInsightsModel: *f,
		Analysis: FiveInsightsAnalysis{
			CategoryCounts:   f.CategoryCounts(),
			DominantCategory: f.DominantCategory(),
			IsWellBalanced:   f.IsWellBalanced(),
			PriorityActions:  f.PriorityActions(),
		},
	}
}
