package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wigu/internal/model"
)

// fakeProgressRepo is an in-memory ProgressRepo.
type fakeProgressRepo struct {
	records map[string]*model.CareerProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*model.CareerProgress)}
}

func (r *fakeProgressRepo) Get(ctx context.Context, sessionID string) (*model.CareerProgress, error) {
	p, ok := r.records[sessionID]
	if !ok {
		return nil, &model.NotFoundError{Entity: "progress", ID: sessionID}
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProgressRepo) Upsert(ctx context.Context, progress *model.CareerProgress) error {
	copied := *progress
	r.records[progress.SessionID] = &copied
	return nil
}

// fakeProgressCache is a no-op cache so tests always hit the repo.
type fakeProgressCache struct{}

func (fakeProgressCache) Get(ctx context.Context, sessionID string) (*model.CareerProgress, error) {
	return nil, nil
}
func (fakeProgressCache) Set(ctx context.Context, progress *model.CareerProgress) error {
	return nil
}

func (fakeProgressCache) Invalidate(ctx context.Context, sessionID string) error {
	return nil
}

func newTestProgressService() (*ProgressService, *fakeProgressRepo) {
	repo := newFakeProgressRepo()
	return NewProgressService(repo, fakeProgressCache{}), repo
}

func substantiveResponse(domain model.CareerDomain) *model.Response {
	return &model.Response{
		SessionID:            "s1",
		QuestionID:           "q1",
		Domain:               domain,
		Text:                 longText(60),
		ConfidenceLevel:      5,
		IsReflectionComplete: true,
	}
}

func TestRecordResponseInitializesProgress(t *testing.T) {
	svc, _ := newTestProgressService()
	ctx := context.Background()

	progress, err := svc.RecordResponse(ctx, "s1", substantiveResponse(model.DomainTechnical), 12)
	require.NoError(t, err)

	assert.Equal(t, 1, progress.ResponseCount)
	assert.Equal(t, 1, progress.UpdateCount)
	assert.InDelta(t, 12.0, progress.TotalTimeSpentMin, 1e-9)
	assert.InDelta(t, 0.2, progress.DomainCompletion[model.DomainTechnical], 1e-9)
	assert.Equal(t, model.PhaseSetup, progress.Phase)

	require.Len(t, progress.Milestones, 1)
	assert.Equal(t, "first_response", progress.Milestones[0].Name)
}

func TestRecordResponseDomainCompletionCapsAtOne(t *testing.T) {
	svc, _ := newTestProgressService()
	ctx := context.Background()

	var progress *model.CareerProgress
	var err error
	for i := 0; i < 7; i++ {
		progress, err = svc.RecordResponse(ctx, "s1", substantiveResponse(model.DomainCreative), 0)
		require.NoError(t, err)
	}

	assert.InDelta(t, 1.0, progress.DomainCompletion[model.DomainCreative], 1e-9)
	assert.Equal(t, 7, progress.ResponseCount)
	assert.Contains(t, milestoneNames(progress), "domain_complete:creative")
}

func TestRecordResponseQualityTierTracksAverage(t *testing.T) {
	svc, _ := newTestProgressService()
	ctx := context.Background()

	// First a strong answer: raw quality seeds the average.
	progress, err := svc.RecordResponse(ctx, "s1", substantiveResponse(model.DomainTechnical), 0)
	require.NoError(t, err)
	assert.Equal(t, model.TierExcellent, progress.QualityTier)
	first := progress.AvgResponseQuality

	// Then a throwaway answer: the moving average decays by 0.3 per update.
	weak := &model.Response{SessionID: "s1", QuestionID: "q2", Domain: model.DomainTechnical, Text: "ok"}
	progress, err = svc.RecordResponse(ctx, "s1", weak, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.7*first, progress.AvgResponseQuality, 1e-9)
	assert.Less(t, progress.AvgResponseQuality, first)
}

func TestRecordResponseMilestonesNotDuplicated(t *testing.T) {
	svc, _ := newTestProgressService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.RecordResponse(ctx, "s1", substantiveResponse(model.DomainSocial), 0)
		require.NoError(t, err)
	}

	progress, err := svc.Get(ctx, "s1")
	require.NoError(t, err)

	count := 0
	for _, name := range milestoneNames(progress) {
		if name == "first_response" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRecordInsight(t *testing.T) {
	svc, _ := newTestProgressService()
	ctx := context.Background()

	progress, err := svc.RecordInsight(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.InsightCount)
	assert.Contains(t, milestoneNames(progress), "first_insight")

	progress, err = svc.RecordInsight(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, progress.InsightCount)
	assert.Equal(t, 2, progress.UpdateCount)
}

func TestSetPhase(t *testing.T) {
	svc, repo := newTestProgressService()
	ctx := context.Background()

	progress, err := svc.SetPhase(ctx, "s1", model.PhaseSynthesis)
	require.NoError(t, err)
	assert.Equal(t, model.PhaseSynthesis, progress.Phase)

	stored, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, model.PhaseSynthesis, stored.Phase)
}

func milestoneNames(p *model.CareerProgress) []string {
	names := make([]string, 0, len(p.Milestones))
	for _, m := range p.Milestones {
		names = append(names, m.Name)
	}
	return names
}
