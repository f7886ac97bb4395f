package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileWithCounts builds a valid profile with the given number of items per
// category, in canonical order.
func profileWithCounts(energizing, hidden, overused, aspirational, misaligned int, balance float64) FiveInsightsModel {
	f := FiveInsightsModel{SessionID: "s1", BalanceScore: balance}
	for i := 0; i < energizing; i++ {
		f.EnergizingStrengths = append(f.EnergizingStrengths, EnergizingStrength{
			Title: "e", SkillLevel: 3, EnergyLevel: 3, RecognitionLevel: 3, Leverageability: 3,
		})
	}
	for i := 0; i < hidden; i++ {
		f.HiddenStrengths = append(f.HiddenStrengths, HiddenStrength{
			Title: "h", CompetenceLevel: 3, RecognitionLevel: 3, PotentialImpact: 3,
		})
	}
	for i := 0; i < overused; i++ {
		f.OverusedTalents = append(f.OverusedTalents, OverusedTalent{
			Title: "o", BurnoutRisk: 3, UsageFrequency: 3,
		})
	}
	for i := 0; i < aspirational; i++ {
		f.AspirationalStrengths = append(f.AspirationalStrengths, AspirationalStrength{
			Title: "a", InterestLevel: 3, DevelopmentPotential: 3,
		})
	}
	for i := 0; i < misaligned; i++ {
		f.MisalignedEnergies = append(f.MisalignedEnergies, MisalignedEnergy{
			Title: "m", EnergyDrainLevel: 3, Frequency: 3,
		})
	}
	return f
}

func TestCategoryCounts(t *testing.T) {
	f := profileWithCounts(3, 3, 4, 2, 3, 0.65)
	counts := f.CategoryCounts()
	assert.Equal(t, map[FiveInsightsCategory]int{
		CategoryEnergizing:   3,
		CategoryHidden:       3,
		CategoryOverused:     4,
		CategoryAspirational: 2,
		CategoryMisaligned:   3,
	}, counts)
}

func TestIsWellBalanced(t *testing.T) {
	tests := []struct {
		name    string
		profile FiveInsightsModel
		want    bool
	}{
		{"spread of 2 with good balance", profileWithCounts(3, 3, 4, 2, 3, 0.65), true},
		{"low balance score fails regardless of counts", profileWithCounts(3, 3, 3, 3, 3, 0.59), false},
		{"count spread over 2 fails", profileWithCounts(5, 1, 3, 3, 3, 0.9), false},
		{"uniform counts and high balance", profileWithCounts(2, 2, 2, 2, 2, 0.8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.IsWellBalanced())
		})
	}
}

func TestDominantCategoryTiesGoToCanonicalOrder(t *testing.T) {
	f := profileWithCounts(3, 3, 3, 3, 3, 0.8)
	assert.Equal(t, CategoryEnergizing, f.DominantCategory())

	g := profileWithCounts(1, 2, 2, 1, 1, 0.8)
	assert.Equal(t, CategoryHidden, g.DominantCategory(), "first category in order wins the tie")
}

func TestPriorityActions(t *testing.T) {
	f := FiveInsightsModel{SessionID: "s1", BalanceScore: 0.7}
	for i := 0; i < 3; i++ {
		f.EnergizingStrengths = append(f.EnergizingStrengths, EnergizingStrength{
			Title: "e", SkillLevel: 5, EnergyLevel: 5, RecognitionLevel: 5,
			Leverageability: 5, ActionableAdvice: "take the lead",
		})
	}
	f.HiddenStrengths = []HiddenStrength{
		{Title: "h", CompetenceLevel: 5, RecognitionLevel: 2, PotentialImpact: 5, DevelopmentStrategy: "demo it"},
	}
	f.OverusedTalents = []OverusedTalent{
		{Title: "o", BurnoutRisk: 5, UsageFrequency: 5, RebalancingStrategy: "delegate"},
		{Title: "o2", BurnoutRisk: 5, UsageFrequency: 5, RebalancingStrategy: "say no"},
	}
	f.MisalignedEnergies = []MisalignedEnergy{
		{Title: "m", EnergyDrainLevel: 5, Frequency: 5, MitigationStrategy: "batch the admin work"},
	}

	actions := f.PriorityActions()
	require.Equal(t, []string{
		"Leverage: take the lead",
		"Leverage: take the lead",
		"Develop: demo it",
		"Rebalance: delegate",
		"Address: batch the admin work",
	}, actions)
}

func TestPriorityActionsSkipsItemsWithoutAdvice(t *testing.T) {
	f := FiveInsightsModel{
		SessionID:    "s1",
		BalanceScore: 0.7,
		EnergizingStrengths: []EnergizingStrength{
			{Title: "e", SkillLevel: 5, EnergyLevel: 5, RecognitionLevel: 5, Leverageability: 5},
		},
	}
	assert.Empty(t, f.PriorityActions(), "high leverage without advice yields no action")
}

func TestSignatureAndPriorityPredicates(t *testing.T) {
	sig := EnergizingStrength{SkillLevel: 4, EnergyLevel: 4, RecognitionLevel: 4, Leverageability: 1}
	assert.True(t, sig.IsSignatureStrength())

	notSig := sig
	notSig.EnergyLevel = 3
	assert.False(t, notSig.IsSignatureStrength())

	hidden := HiddenStrength{CompetenceLevel: 4, RecognitionLevel: 2, PotentialImpact: 4}
	assert.True(t, hidden.IsHighPriority())

	narrowGap := HiddenStrength{CompetenceLevel: 4, RecognitionLevel: 3, PotentialImpact: 5}
	assert.False(t, narrowGap.IsHighPriority(), "gap of 1 is not a hidden strength worth flagging")

	burnout := OverusedTalent{BurnoutRisk: 4, UsageFrequency: 4}
	assert.True(t, burnout.RequiresImmediateAttention())

	invest := AspirationalStrength{InterestLevel: 4, DevelopmentPotential: 3}
	assert.True(t, invest.IsWorthInvesting())

	drain := MisalignedEnergy{EnergyDrainLevel: 4, Frequency: 3}
	assert.False(t, drain.RequiresUrgentAttention())
}

func TestFiveInsightsValidate(t *testing.T) {
	f := profileWithCounts(1, 1, 1, 1, 1, 0.5)
	require.NoError(t, f.Validate())

	f.EnergizingStrengths[0].SkillLevel = 6
	err := f.Validate()
	require.Error(t, err)
	assert.True(t, IsValidation(err), "one bad sub-rating fails the whole profile")

	g := profileWithCounts(1, 0, 0, 0, 0, 1.3)
	assert.Error(t, g.Validate(), "balance score above 1 is rejected")
}

func TestFiveInsightsExportAnalysis(t *testing.T) {
	f := profileWithCounts(3, 3, 4, 2, 3, 0.65)
	export := f.Export()
	assert.Equal(t, CategoryOverused, export.Analysis.DominantCategory)
	assert.True(t, export.Analysis.IsWellBalanced)
	assert.Equal(t, 4, export.Analysis.CategoryCounts[CategoryOverused])
}
