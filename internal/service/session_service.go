package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wigu/internal/model"
	"wigu/internal/repository"
)

// ErrForbidden is returned when a caller touches a session they do not own.
var ErrForbidden = errors.New("session does not belong to caller")

// SessionService manages reflection session lifecycle.
type SessionService struct {
	sessionRepo repository.SessionRepo
	progress    *ProgressService
	broadcaster Broadcaster
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo repository.SessionRepo, progress *ProgressService, broadcaster Broadcaster) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		progress:    progress,
		broadcaster: broadcaster,
	}
}

// Create starts a new reflection session for the owner.
func (s *SessionService) Create(ctx context.Context, ownerID, title string) (*model.Session, error) {
	if title == "" {
		title = "Career Reflection"
	}

	session := &model.Session{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		Status:    model.SessionActive,
		StartedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Get returns a session after checking ownership.
func (s *SessionService) Get(ctx context.Context, ownerID, sessionID string) (*model.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return session, nil
}

// List returns all sessions owned by the caller.
func (s *SessionService) List(ctx context.Context, ownerID string) ([]*model.Session, error) {
	return s.sessionRepo.GetByOwnerID(ctx, ownerID)
}

// Complete marks a session finished and disconnects its live clients.
func (s *SessionService) Complete(ctx context.Context, ownerID, sessionID string) (*model.Session, error) {
	session, err := s.Get(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == model.SessionCompleted {
		return session, nil
	}

	now := time.Now()
	session.Status = model.SessionCompleted
	session.EndedAt = &now
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	// No more updates arrive after completion; drop the hot snapshot.
	if s.progress != nil {
		_ = s.progress.Invalidate(ctx, sessionID)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToOwner(sessionID, "session_completed", session)
		s.broadcaster.BroadcastToAdvisors(sessionID, "session_completed", session)
		s.broadcaster.DisconnectSession(sessionID)
	}
	return session, nil
}

// Archive hides a completed session from the active list.
func (s *SessionService) Archive(ctx context.Context, ownerID, sessionID string) (*model.Session, error) {
	session, err := s.Get(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	session.Status = model.SessionArchived
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to archive session: %w", err)
	}
	return session, nil
}
