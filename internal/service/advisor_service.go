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

// SubmitAdvisorResponseRequest carries one advisor answer with the
// credibility metadata that weights it.
type SubmitAdvisorResponseRequest struct {
	QuestionID        string                  `json:"questionId" validate:"required"`
	Domain            model.CareerDomain      `json:"domain" validate:"required"`
	Text              string                  `json:"text" validate:"required"`
	ConfidenceLevel   int                     `json:"confidenceLevel,omitempty"`
	ObservationPeriod model.ObservationPeriod `json:"observationPeriod" validate:"required"`
	ConfidenceContext model.ConfidenceContext `json:"confidenceContext" validate:"required"`
	SpecificExamples  []string                `json:"specificExamples,omitempty"`
	AdditionalContext string                  `json:"additionalContext,omitempty"`
}

// AdvisorService manages advisor invitations and their weighted responses.
type AdvisorService struct {
	invitationRepo repository.InvitationRepo
	advisorRepo    repository.AdvisorResponseRepo
	themeCache     cache.ThemeCache
	themes         *ThemeExtractor
	auth           *AuthService
	broadcaster    Broadcaster
}

// NewAdvisorService creates a new advisor service
func NewAdvisorService(
	invitationRepo repository.InvitationRepo,
	advisorRepo repository.AdvisorResponseRepo,
	themeCache cache.ThemeCache,
	themes *ThemeExtractor,
	auth *AuthService,
	broadcaster Broadcaster,
) *AdvisorService {
	return &AdvisorService{
		invitationRepo: invitationRepo,
		advisorRepo:    advisorRepo,
		themeCache:     themeCache,
		themes:         themes,
		auth:           auth,
		broadcaster:    broadcaster,
	}
}

// Invite records an advisor invitation and mints the session-scoped token
// the advisor will authenticate with.
func (s *AdvisorService) Invite(ctx context.Context, sessionID string, req *model.InviteAdvisorRequest) (*model.InviteAdvisorResponse, error) {
	invitation := &model.AdvisorInvitation{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		AdvisorName:  req.AdvisorName,
		AdvisorEmail: req.AdvisorEmail,
		Relationship: req.Relationship,
		CreatedAt:    time.Now(),
	}
	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	token, err := s.auth.GenerateAdvisorToken(sessionID, invitation.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advisor token: %w", err)
	}

	return &model.InviteAdvisorResponse{
		InvitationID: invitation.ID,
		Token:        token,
	}, nil
}

// ListInvitations returns all invitations for a session.
func (s *AdvisorService) ListInvitations(ctx context.Context, sessionID string) ([]*model.AdvisorInvitation, error) {
	return s.invitationRepo.GetBySessionID(ctx, sessionID)
}

// Submit validates and stores an advisor response, marks the invitation as
// responded, and feeds the weighted themes into the session counters.
func (s *AdvisorService) Submit(ctx context.Context, sessionID, invitationID string, req *SubmitAdvisorResponseRequest) (model.AdvisorResponseExport, error) {
	if _, err := s.invitationRepo.GetByID(ctx, invitationID); err != nil {
		return model.AdvisorResponseExport{}, err
	}

	response := &model.AdvisorResponse{
		ID:                uuid.New().String(),
		InvitationID:      invitationID,
		SessionID:         sessionID,
		QuestionID:        req.QuestionID,
		Domain:            req.Domain,
		Text:              req.Text,
		ConfidenceLevel:   req.ConfidenceLevel,
		ObservationPeriod: req.ObservationPeriod,
		ConfidenceContext: req.ConfidenceContext,
		SpecificExamples:  req.SpecificExamples,
		AdditionalContext: req.AdditionalContext,
		SubmittedAt:       time.Now(),
	}
	if err := response.Validate(); err != nil {
		return model.AdvisorResponseExport{}, err
	}

	if err := s.advisorRepo.Create(ctx, response); err != nil {
		return model.AdvisorResponseExport{}, fmt.Errorf("failed to save advisor response: %w", err)
	}

	if err := s.invitationRepo.MarkResponded(ctx, invitationID); err != nil {
		return model.AdvisorResponseExport{}, fmt.Errorf("failed to mark invitation responded: %w", err)
	}

	if themes := s.themes.Extract(response.Text); len(themes) > 0 {
		_ = s.themeCache.IncrementThemes(ctx, sessionID, themes)
	}

	export := response.Export()
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOwner(sessionID, "advisor_response_received", export)
	}
	return export, nil
}

// GetResponse returns one advisor response with its analysis block.
func (s *AdvisorService) GetResponse(ctx context.Context, id string) (model.AdvisorResponseExport, error) {
	response, err := s.advisorRepo.GetByID(ctx, id)
	if err != nil {
		return model.AdvisorResponseExport{}, err
	}
	return response.Export(), nil
}

// ListOwnResponses returns the responses a single advisor has already
// submitted under their invitation.
func (s *AdvisorService) ListOwnResponses(ctx context.Context, invitationID string) ([]model.AdvisorResponseExport, error) {
	responses, err := s.advisorRepo.GetByInvitationID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	exports := make([]model.AdvisorResponseExport, 0, len(responses))
	for _, r := range responses {
		exports = append(exports, r.Export())
	}
	return exports, nil
}

// ListResponses returns all advisor responses for a session with their
// analysis blocks.
func (s *AdvisorService) ListResponses(ctx context.Context, sessionID string) ([]model.AdvisorResponseExport, error) {
	responses, err := s.advisorRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	exports := make([]model.AdvisorResponseExport, 0, len(responses))
	for _, r := range responses {
		exports = append(exports, r.Export())
	}
	return exports, nil
}
