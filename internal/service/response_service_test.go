package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wigu/internal/model"
)

type fakeResponseRepo struct {
	responses []*model.Response
}

func (r *fakeResponseRepo) Create(ctx context.Context, response *model.Response) error {
	copied := *response
	r.responses = append(r.responses, &copied)
	return nil
}

func (r *fakeResponseRepo) GetByID(ctx context.Context, id string) (*model.Response, error) {
	for _, resp := range r.responses {
		if resp.ID == id {
			copied := *resp
			return &copied, nil
		}
	}
	return nil, &model.NotFoundError{Entity: "response", ID: id}
}

func (r *fakeResponseRepo) GetBySessionID(ctx context.Context, sessionID string) ([]*model.Response, error) {
	var out []*model.Response
	for _, resp := range r.responses {
		if resp.SessionID == sessionID {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (r *fakeResponseRepo) GetBySessionAndDomain(ctx context.Context, sessionID string, domain model.CareerDomain) ([]*model.Response, error) {
	var out []*model.Response
	for _, resp := range r.responses {
		if resp.SessionID == sessionID && resp.Domain == domain {
			out = append(out, resp)
		}
	}
	return out, nil
}

type fakeThemeCache struct {
	counts map[string]map[string]int
}

func newFakeThemeCache() *fakeThemeCache {
	return &fakeThemeCache{counts: make(map[string]map[string]int)}
}

func (c *fakeThemeCache) IncrementThemes(ctx context.Context, sessionID string, themes []string) error {
	if c.counts[sessionID] == nil {
		c.counts[sessionID] = make(map[string]int)
	}
	for _, t := range themes {
		c.counts[sessionID][t]++
	}
	return nil
}

func (c *fakeThemeCache) GetThemeCounts(ctx context.Context, sessionID string) (map[string]int, error) {
	return c.counts[sessionID], nil
}

type recordingBroadcaster struct {
	ownerEvents   []string
	advisorEvents []string
	disconnected  []string
}

func (b *recordingBroadcaster) BroadcastToOwner(sessionID, msgType string, payload interface{}) {
	b.ownerEvents = append(b.ownerEvents, msgType)
}

func (b *recordingBroadcaster) BroadcastToAdvisors(sessionID, msgType string, payload interface{}) {
	b.advisorEvents = append(b.advisorEvents, msgType)
}

func (b *recordingBroadcaster) DisconnectSession(sessionID string) {
	b.disconnected = append(b.disconnected, sessionID)
}

func newTestResponseService() (*ResponseService, *fakeResponseRepo, *fakeThemeCache, *recordingBroadcaster) {
	repo := &fakeResponseRepo{}
	themes := newFakeThemeCache()
	broadcaster := &recordingBroadcaster{}
	progress, _ := newTestProgressService()
	svc := NewResponseService(repo, themes, NewThemeExtractor(), progress, broadcaster)
	return svc, repo, themes, broadcaster
}

func TestSubmitStoresAndScores(t *testing.T) {
	svc, repo, themeCache, broadcaster := newTestResponseService()
	ctx := context.Background()

	export, err := svc.Submit(ctx, "s1", &SubmitResponseRequest{
		QuestionID:           "q1",
		Domain:               model.DomainTechnical,
		Text:                 "I love to debug complex systems and mentor teammates through hard problems.",
		ConfidenceLevel:      4,
		IsReflectionComplete: true,
		TimeSpentMin:         10,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, export.ID)
	assert.Equal(t, "s1", export.SessionID)
	assert.True(t, export.Analysis.IsSubstantive)
	assert.Greater(t, export.Analysis.QualityScore, 0.0)

	require.Len(t, repo.responses, 1)

	counts := themeCache.counts["s1"]
	assert.Greater(t, counts["problem_solving"], 0)
	assert.Greater(t, counts["mentoring"], 0)

	assert.Contains(t, broadcaster.ownerEvents, "progress_update")
}

func TestSubmitRejectsInvalidResponse(t *testing.T) {
	svc, repo, _, _ := newTestResponseService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, "s1", &SubmitResponseRequest{
		QuestionID:      "q1",
		Domain:          "astrology",
		Text:            "some text",
		ConfidenceLevel: 3,
	})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
	assert.Empty(t, repo.responses, "invalid responses are never persisted")
}

func TestSubmitRejectsOutOfRangeConfidence(t *testing.T) {
	svc, _, _, _ := newTestResponseService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, "s1", &SubmitResponseRequest{
		QuestionID:      "q1",
		Domain:          model.DomainSocial,
		Text:            "a perfectly fine answer about helping people at work",
		ConfidenceLevel: 6,
	})
	require.Error(t, err)
	assert.True(t, model.IsValidation(err), "out-of-range ratings are rejected, not clamped")
}

func TestListReturnsExports(t *testing.T) {
	svc, _, _, _ := newTestResponseService()
	ctx := context.Background()

	for _, q := range []string{"q1", "q2"} {
		_, err := svc.Submit(ctx, "s1", &SubmitResponseRequest{
			QuestionID: q,
			Domain:     model.DomainAnalytical,
			Text:       "I analyze the data behind every decision we make as a team.",
		})
		require.NoError(t, err)
	}

	exports, err := svc.List(ctx, "s1", "")
	require.NoError(t, err)
	require.Len(t, exports, 2)
	for _, e := range exports {
		assert.Equal(t, "s1", e.SessionID)
		assert.NotZero(t, e.Analysis.WordCount)
	}
}

func TestListFiltersByDomain(t *testing.T) {
	svc, _, _, _ := newTestResponseService()
	ctx := context.Background()

	submit := func(q string, domain model.CareerDomain) {
		_, err := svc.Submit(ctx, "s1", &SubmitResponseRequest{
			QuestionID: q,
			Domain:     domain,
			Text:       "I analyze the data behind every decision we make as a team.",
		})
		require.NoError(t, err)
	}
	submit("q1", model.DomainAnalytical)
	submit("q2", model.DomainCreative)

	exports, err := svc.List(ctx, "s1", model.DomainCreative)
	require.NoError(t, err)
	require.Len(t, exports, 1)
	assert.Equal(t, model.DomainCreative, exports[0].Domain)

	_, err = svc.List(ctx, "s1", "astrology")
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))
}
