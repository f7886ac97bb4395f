package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wigu/internal/model"
)

type fakeSessionRepo struct {
	sessions map[string]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *model.Session) error {
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, &model.NotFoundError{Entity: "session", ID: id}
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*model.Session, error) {
	var out []*model.Session
	for _, s := range r.sessions {
		if s.OwnerID == ownerID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *model.Session) error {
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func newTestSessionService() (*SessionService, *fakeSessionRepo, *recordingBroadcaster) {
	repo := newFakeSessionRepo()
	broadcaster := &recordingBroadcaster{}
	progress, _ := newTestProgressService()
	return NewSessionService(repo, progress, broadcaster), repo, broadcaster
}

func TestCreateSessionDefaultsTitle(t *testing.T) {
	svc, _, _ := newTestSessionService()
	ctx := context.Background()

	session, err := svc.Create(ctx, "owner1", "")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "Career Reflection", session.Title)
	assert.Equal(t, model.SessionActive, session.Status)
	assert.False(t, session.StartedAt.IsZero())
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc, _, _ := newTestSessionService()
	ctx := context.Background()

	session, err := svc.Create(ctx, "owner1", "My reflection")
	require.NoError(t, err)

	_, err = svc.Get(ctx, "someone-else", session.ID)
	require.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(ctx, "owner1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestCompleteBroadcastsAndDisconnects(t *testing.T) {
	svc, _, broadcaster := newTestSessionService()
	ctx := context.Background()

	session, err := svc.Create(ctx, "owner1", "")
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, "owner1", session.ID)
	require.NoError(t, err)

	assert.Equal(t, model.SessionCompleted, completed.Status)
	require.NotNil(t, completed.EndedAt)
	assert.Contains(t, broadcaster.ownerEvents, "session_completed")
	assert.Contains(t, broadcaster.advisorEvents, "session_completed")
	assert.Equal(t, []string{session.ID}, broadcaster.disconnected)
}

func TestCompleteIsIdempotent(t *testing.T) {
	svc, _, broadcaster := newTestSessionService()
	ctx := context.Background()

	session, err := svc.Create(ctx, "owner1", "")
	require.NoError(t, err)

	first, err := svc.Complete(ctx, "owner1", session.ID)
	require.NoError(t, err)
	second, err := svc.Complete(ctx, "owner1", session.ID)
	require.NoError(t, err)

	assert.Equal(t, first.EndedAt, second.EndedAt)
	assert.Len(t, broadcaster.disconnected, 1, "second complete is a no-op")
}

func TestArchiveSession(t *testing.T) {
	svc, repo, _ := newTestSessionService()
	ctx := context.Background()

	session, err := svc.Create(ctx, "owner1", "")
	require.NoError(t, err)

	archived, err := svc.Archive(ctx, "owner1", session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionArchived, archived.Status)
	assert.Equal(t, model.SessionArchived, repo.sessions[session.ID].Status)
}
