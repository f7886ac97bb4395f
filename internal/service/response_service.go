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

// SubmitResponseRequest carries one self answer from the owner.
type SubmitResponseRequest struct {
	QuestionID           string             `json:"questionId" validate:"required"`
	Domain               model.CareerDomain `json:"domain" validate:"required"`
	Text                 string             `json:"text" validate:"required"`
	ConfidenceLevel      int                `json:"confidenceLevel,omitempty"`
	IsReflectionComplete bool               `json:"isReflectionComplete"`
	TimeSpentMin         float64            `json:"timeSpentMin,omitempty"`
}

// ResponseService records self responses and keeps the theme counters and
// progress tracker in step with each submission.
type ResponseService struct {
	responseRepo repository.ResponseRepo
	themeCache   cache.ThemeCache
	themes       *ThemeExtractor
	progress     *ProgressService
	broadcaster  Broadcaster
}

// NewResponseService creates a new response service
func NewResponseService(
	responseRepo repository.ResponseRepo,
	themeCache cache.ThemeCache,
	themes *ThemeExtractor,
	progress *ProgressService,
	broadcaster Broadcaster,
) *ResponseService {
	return &ResponseService{
		responseRepo: responseRepo,
		themeCache:   themeCache,
		themes:       themes,
		progress:     progress,
		broadcaster:  broadcaster,
	}
}

// Submit validates and stores a self response, then updates the session's
// theme counts and progress. Theme and progress failures do not fail the
// submission; the response is already durable at that point.
func (s *ResponseService) Submit(ctx context.Context, sessionID string, req *SubmitResponseRequest) (model.ResponseExport, error) {
	response := &model.Response{
		ID:                   uuid.New().String(),
		SessionID:            sessionID,
		QuestionID:           req.QuestionID,
		Domain:               req.Domain,
		Text:                 req.Text,
		ConfidenceLevel:      req.ConfidenceLevel,
		IsReflectionComplete: req.IsReflectionComplete,
		AnsweredAt:           time.Now(),
	}
	if err := response.Validate(); err != nil {
		return model.ResponseExport{}, err
	}

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return model.ResponseExport{}, fmt.Errorf("failed to save response: %w", err)
	}

	if themes := s.themes.Extract(response.Text); len(themes) > 0 {
		_ = s.themeCache.IncrementThemes(ctx, sessionID, themes)
	}

	progress, err := s.progress.RecordResponse(ctx, sessionID, response, req.TimeSpentMin)
	if err == nil && s.broadcaster != nil {
		s.broadcaster.BroadcastToOwner(sessionID, "progress_update", progress.Export())
	}

	return response.Export(), nil
}

// Get returns one response with its analysis block.
func (s *ResponseService) Get(ctx context.Context, id string) (model.ResponseExport, error) {
	response, err := s.responseRepo.GetByID(ctx, id)
	if err != nil {
		return model.ResponseExport{}, err
	}
	return response.Export(), nil
}

// List returns all responses for a session with analysis blocks, optionally
// filtered to one career domain.
func (s *ResponseService) List(ctx context.Context, sessionID string, domain model.CareerDomain) ([]model.ResponseExport, error) {
	var responses []*model.Response
	var err error
	if domain != "" {
		if !domain.IsValid() {
			return nil, &model.ValidationError{Field: "domain", Message: fmt.Sprintf("unknown career domain %q", domain)}
		}
		responses, err = s.responseRepo.GetBySessionAndDomain(ctx, sessionID, domain)
	} else {
		responses, err = s.responseRepo.GetBySessionID(ctx, sessionID)
	}
	if err != nil {
		return nil, err
	}

	exports := make([]model.ResponseExport, 0, len(responses))
	for _, r := range responses {
		exports = append(exports, r.Export())
	}
	return exports, nil
}

// ThemeCounts returns the accumulated theme histogram for a session.
func (s *ResponseService) ThemeCounts(ctx context.Context, sessionID string) (map[string]int, error) {
	return s.themeCache.GetThemeCounts(ctx, sessionID)
}
