package service

import (
	"context"
	"time"

	"wigu/internal/cache"
	"wigu/internal/model"
	"wigu/internal/repository"
)

// domainQuestionTarget is how many answered questions count as full
// completion of one domain.
const domainQuestionTarget = 5

// ProgressService maintains the per-session completion/engagement tracker.
// Updates are incremental: every response and insight bumps the counters and
// the rolling quality average.
type ProgressService struct {
	progressRepo  repository.ProgressRepo
	progressCache cache.ProgressCache
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo repository.ProgressRepo, progressCache cache.ProgressCache) *ProgressService {
	return &ProgressService{
		progressRepo:  progressRepo,
		progressCache: progressCache,
	}
}

// Get returns the progress record for a session, reading through the cache.
func (s *ProgressService) Get(ctx context.Context, sessionID string) (*model.CareerProgress, error) {
	if cached, err := s.progressCache.Get(ctx, sessionID); err == nil && cached != nil {
		return cached, nil
	}

	progress, err := s.progressRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	_ = s.progressCache.Set(ctx, progress)
	return progress, nil
}

// RecordResponse folds one new self response into the tracker.
func (s *ProgressService) RecordResponse(ctx context.Context, sessionID string, response *model.Response, timeSpentMin float64) (*model.CareerProgress, error) {
	progress, err := s.loadOrInit(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	progress.ResponseCount++
	progress.UpdateCount++
	if timeSpentMin > 0 {
		progress.TotalTimeSpentMin += timeSpentMin
	}

	completion := progress.DomainCompletion[response.Domain] + 1.0/domainQuestionTarget
	if completion > 1.0 {
		completion = 1.0
	}
	progress.DomainCompletion[response.Domain] = completion

	// Exponential moving average, so early low-effort answers wash out.
	quality := response.QualityScore()
	if progress.ResponseCount == 1 {
		progress.AvgResponseQuality = quality
	} else {
		progress.AvgResponseQuality = 0.7*progress.AvgResponseQuality + 0.3*quality
	}
	progress.QualityTier = tierForQuality(progress.AvgResponseQuality)

	if progress.ResponseCount == 1 {
		s.reachMilestone(progress, "first_response")
	}
	if completion >= 1.0 && progress.DomainCompletion[response.Domain] >= 1.0 {
		s.reachMilestone(progress, "domain_complete:"+string(response.Domain))
	}
	if len(progress.CompletedDomains()) == len(model.AllDomains) {
		s.reachMilestone(progress, "all_domains_complete")
	}

	return progress, s.store(ctx, progress)
}

// RecordInsight folds one new insight into the tracker.
func (s *ProgressService) RecordInsight(ctx context.Context, sessionID string) (*model.CareerProgress, error) {
	progress, err := s.loadOrInit(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	progress.InsightCount++
	progress.UpdateCount++
	if progress.InsightCount == 1 {
		s.reachMilestone(progress, "first_insight")
	}

	return progress, s.store(ctx, progress)
}

// SetPhase assigns the exploration phase label. Phases are externally-set;
// the service does not enforce transition order.
func (s *ProgressService) SetPhase(ctx context.Context, sessionID string, phase model.ExplorationPhase) (*model.CareerProgress, error) {
	progress, err := s.loadOrInit(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	progress.Phase = phase
	progress.UpdateCount++
	return progress, s.store(ctx, progress)
}

// Invalidate drops the cached progress snapshot for a session. The durable
// record in Mongo is untouched.
func (s *ProgressService) Invalidate(ctx context.Context, sessionID string) error {
	return s.progressCache.Invalidate(ctx, sessionID)
}

func (s *ProgressService) loadOrInit(ctx context.Context, sessionID string) (*model.CareerProgress, error) {
	if cached, err := s.progressCache.Get(ctx, sessionID); err == nil && cached != nil {
		return cached, nil
	}

	progress, err := s.progressRepo.Get(ctx, sessionID)
	if err == nil {
		return progress, nil
	}
	if !model.IsNotFound(err) {
		return nil, err
	}

	now := time.Now()
	return &model.CareerProgress{
		SessionID:        sessionID,
		Phase:            model.PhaseSetup,
		DomainCompletion: make(map[model.CareerDomain]float64),
		QualityTier:      model.TierPoor,
		StartedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (s *ProgressService) store(ctx context.Context, progress *model.CareerProgress) error {
	if err := s.progressRepo.Upsert(ctx, progress); err != nil {
		return err
	}
	return s.progressCache.Set(ctx, progress)
}

func (s *ProgressService) reachMilestone(progress *model.CareerProgress, name string) {
	for _, m := range progress.Milestones {
		if m.Name == name {
			return
		}
	}
	progress.Milestones = append(progress.Milestones, model.Milestone{
		Name:      name,
		ReachedAt: time.Now(),
	})
}

func tierForQuality(avg float64) model.QualityTier {
	switch {
	case avg >= 0.7:
		return model.TierExcellent
	case avg >= 0.5:
		return model.TierGood
	case avg >= 0.3:
		return model.TierFair
	default:
		return model.TierPoor
	}
}
