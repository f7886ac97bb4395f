package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wigu/internal/model"
	"wigu/internal/repository"
)

// InsightService generates career insights from self responses and tracks
// owner validation of them.
type InsightService struct {
	insightRepo  repository.InsightRepo
	responseRepo repository.ResponseRepo
	generation   *GenerationService
	progress     *ProgressService
	broadcaster  Broadcaster
}

// NewInsightService creates a new insight service
func NewInsightService(
	insightRepo repository.InsightRepo,
	responseRepo repository.ResponseRepo,
	generation *GenerationService,
	progress *ProgressService,
	broadcaster Broadcaster,
) *InsightService {
	return &InsightService{
		insightRepo:  insightRepo,
		responseRepo: responseRepo,
		generation:   generation,
		progress:     progress,
		broadcaster:  broadcaster,
	}
}

// Generate runs insight generation over every response in the session,
// validates each produced insight and persists the ones that pass. Invalid
// generations are skipped rather than failing the batch.
func (s *InsightService) Generate(ctx context.Context, sessionID string) ([]model.InsightExport, error) {
	responses, err := s.responseRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, &model.ValidationError{Field: "sessionId", Message: "session has no responses to analyze"}
	}

	generated, err := s.generation.GenerateInsights(ctx, responses)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	exports := make([]model.InsightExport, 0, len(generated.Insights))
	for _, g := range generated.Insights {
		insight := &model.Insight{
			ID:                uuid.New().String(),
			SessionID:         sessionID,
			Domain:            g.Domain,
			Type:              g.Type,
			Title:             g.Title,
			Description:       g.Description,
			Confidence:        g.Confidence,
			SourceQuestionIDs: g.SourceQuestionIDs,
			KeyThemes:         g.KeyThemes,
			ActionSuggestion:  g.ActionSuggestion,
			CreatedAt:         time.Now(),
		}
		if err := insight.Validate(); err != nil {
			continue
		}
		if err := s.insightRepo.Create(ctx, insight); err != nil {
			return nil, fmt.Errorf("failed to save insight: %w", err)
		}

		if _, err := s.progress.RecordInsight(ctx, sessionID); err == nil && s.broadcaster != nil {
			s.broadcaster.BroadcastToOwner(sessionID, "insight_created", insight.Export())
		}
		exports = append(exports, insight.Export())
	}
	return exports, nil
}

// List returns all insights for a session with quality analysis.
func (s *InsightService) List(ctx context.Context, sessionID string) ([]model.InsightExport, error) {
	insights, err := s.insightRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	exports := make([]model.InsightExport, 0, len(insights))
	for _, i := range insights {
		exports = append(exports, i.Export())
	}
	return exports, nil
}

// Validate marks an insight as confirmed by the owner.
func (s *InsightService) Validate(ctx context.Context, id string) (model.InsightExport, error) {
	insight, err := s.insightRepo.GetByID(ctx, id)
	if err != nil {
		return model.InsightExport{}, err
	}

	insight.IsValidated = true
	if err := s.insightRepo.Update(ctx, insight); err != nil {
		return model.InsightExport{}, fmt.Errorf("failed to update insight: %w", err)
	}
	return insight.Export(), nil
}

// Rate records the owner's 1-5 rating of an insight.
func (s *InsightService) Rate(ctx context.Context, id string, rating int) (model.InsightExport, error) {
	if rating < 1 || rating > 5 {
		return model.InsightExport{}, &model.ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}

	insight, err := s.insightRepo.GetByID(ctx, id)
	if err != nil {
		return model.InsightExport{}, err
	}

	insight.UserRating = rating
	if err := s.insightRepo.Update(ctx, insight); err != nil {
		return model.InsightExport{}, fmt.Errorf("failed to update insight: %w", err)
	}
	return insight.Export(), nil
}
