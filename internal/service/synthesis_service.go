package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wigu/internal/cache"
	"wigu/internal/model"
	"wigu/internal/repository"
)

// SynthesisService builds the self-vs-advisor career synthesis and the
// five-insights strengths profile for a session.
type SynthesisService struct {
	synthesisRepo  repository.SynthesisRepo
	responseRepo   repository.ResponseRepo
	advisorRepo    repository.AdvisorResponseRepo
	insightRepo    repository.InsightRepo
	synthesisCache cache.SynthesisCache
	generation     *GenerationService
	broadcaster    Broadcaster
}

// NewSynthesisService creates a new synthesis service
func NewSynthesisService(
	synthesisRepo repository.SynthesisRepo,
	responseRepo repository.ResponseRepo,
	advisorRepo repository.AdvisorResponseRepo,
	insightRepo repository.InsightRepo,
	synthesisCache cache.SynthesisCache,
	generation *GenerationService,
	broadcaster Broadcaster,
) *SynthesisService {
	return &SynthesisService{
		synthesisRepo:  synthesisRepo,
		responseRepo:   responseRepo,
		advisorRepo:    advisorRepo,
		insightRepo:    insightRepo,
		synthesisCache: synthesisCache,
		generation:     generation,
		broadcaster:    broadcaster,
	}
}

// Generate gathers all self and advisor responses for the session, runs the
// synthesis comparison and persists the result. Each generated insight is
// validated before the synthesis is accepted.
func (s *SynthesisService) Generate(ctx context.Context, sessionID string) (model.SynthesisExport, error) {
	selfResponses, err := s.responseRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return model.SynthesisExport{}, err
	}
	if len(selfResponses) == 0 {
		return model.SynthesisExport{}, &model.ValidationError{Field: "sessionId", Message: "session has no self responses to synthesize"}
	}

	advisorResponses, err := s.advisorRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return model.SynthesisExport{}, err
	}

	generated, err := s.generation.GenerateSynthesis(ctx, selfResponses, advisorResponses)
	if err != nil {
		return model.SynthesisExport{}, fmt.Errorf("synthesis generation failed: %w", err)
	}

	synthesis := &model.CareerSynthesis{
		ID:                       uuid.New().String(),
		SessionID:                sessionID,
		SelfResponseIDs:          responseIDs(selfResponses),
		AdvisorResponseIDs:       advisorResponseIDs(advisorResponses),
		AlignmentAreas:           generated.AlignmentAreas,
		HiddenStrengths:          generated.HiddenStrengths,
		OverestimatedAreas:       generated.OverestimatedAreas,
		DevelopmentOpportunities: generated.DevelopmentOpportunities,
		RepositioningPotential:   generated.RepositioningPotential,
		AlignmentScore:           generated.AlignmentScore,
		ConfidenceLevel:          generated.ConfidenceLevel,
		ExecutiveSummary:         generated.ExecutiveSummary,
		Recommendations:          generated.Recommendations,
		GeneratedAt:              time.Now(),
	}
	if err := synthesis.Validate(); err != nil {
		return model.SynthesisExport{}, fmt.Errorf("generated synthesis is invalid: %w", err)
	}

	if err := s.synthesisRepo.SaveSynthesis(ctx, synthesis); err != nil {
		return model.SynthesisExport{}, fmt.Errorf("failed to save synthesis: %w", err)
	}
	_ = s.synthesisCache.SetLatest(ctx, synthesis)

	export := synthesis.Export()
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOwner(sessionID, "synthesis_ready", export)
	}
	return export, nil
}

// Get returns a specific synthesis run, scoped to the session it belongs to.
func (s *SynthesisService) Get(ctx context.Context, sessionID, synthesisID string) (model.SynthesisExport, error) {
	synthesis, err := s.synthesisRepo.GetSynthesisByID(ctx, synthesisID)
	if err != nil {
		return model.SynthesisExport{}, err
	}
	if synthesis.SessionID != sessionID {
		return model.SynthesisExport{}, &model.NotFoundError{Entity: "synthesis", ID: synthesisID}
	}
	return synthesis.Export(), nil
}

// Latest returns the most recent synthesis for a session, served from the
// cache snapshot when one is present.
func (s *SynthesisService) Latest(ctx context.Context, sessionID string) (model.SynthesisExport, error) {
	if cached, err := s.synthesisCache.GetLatest(ctx, sessionID); err == nil && cached != nil {
		return cached.Export(), nil
	}

	synthesis, err := s.synthesisRepo.GetLatestSynthesis(ctx, sessionID)
	if err != nil {
		return model.SynthesisExport{}, err
	}
	_ = s.synthesisCache.SetLatest(ctx, synthesis)
	return synthesis.Export(), nil
}

// GenerateFiveInsights distills the session's insights and advisor input
// into the five-category strengths profile, replacing any earlier profile.
func (s *SynthesisService) GenerateFiveInsights(ctx context.Context, sessionID string) (model.FiveInsightsExport, error) {
	insights, err := s.insightRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return model.FiveInsightsExport{}, err
	}
	if len(insights) == 0 {
		return model.FiveInsightsExport{}, &model.ValidationError{Field: "sessionId", Message: "session has no insights to distill"}
	}

	advisorResponses, err := s.advisorRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return model.FiveInsightsExport{}, err
	}

	generated, err := s.generation.GenerateFiveInsights(ctx, insights, advisorResponses)
	if err != nil {
		return model.FiveInsightsExport{}, fmt.Errorf("five insights generation failed: %w", err)
	}

	profile := &model.FiveInsightsModel{
		ID:                    uuid.New().String(),
		SessionID:             sessionID,
		EnergizingStrengths:   generated.EnergizingStrengths,
		HiddenStrengths:       generated.HiddenStrengths,
		OverusedTalents:       generated.OverusedTalents,
		AspirationalStrengths: generated.AspirationalStrengths,
		MisalignedEnergies:    generated.MisalignedEnergies,
		BalanceScore:          generated.BalanceScore,
		Recommendations:       generated.Recommendations,
		GeneratedAt:           time.Now(),
	}
	if err := profile.Validate(); err != nil {
		return model.FiveInsightsExport{}, fmt.Errorf("generated profile is invalid: %w", err)
	}

	if err := s.synthesisRepo.ReplaceFiveInsights(ctx, profile); err != nil {
		return model.FiveInsightsExport{}, fmt.Errorf("failed to save five insights profile: %w", err)
	}

	export := profile.Export()
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOwner(sessionID, "five_insights_ready", export)
	}
	return export, nil
}

// FiveInsights returns the current five-insights profile for a session.
func (s *SynthesisService) FiveInsights(ctx context.Context, sessionID string) (model.FiveInsightsExport, error) {
	profile, err := s.synthesisRepo.GetFiveInsights(ctx, sessionID)
	if err != nil {
		return model.FiveInsightsExport{}, err
	}
	return profile.Export(), nil
}

func responseIDs(responses []*model.Response) []string {
	ids := make([]string, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ID)
	}
	return ids
}

func advisorResponseIDs(responses []*model.AdvisorResponse) []string {
	ids := make([]string, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ID)
	}
	return ids
}
