package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-compass/internal/dataset"
	"career-compass/internal/domain/career"
)

var (
	ErrSkillsRequired = errors.New("Skills are required")
	ErrInternal       = errors.New("internal error")
)

type RecommendationItem struct {
	Role              string
	MatchPercentage   int
	RecommendedSkills []career.RankedSkill
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, skills []string) (RecommendationItem, error)
}

type Recommendation struct {
	store    *dataset.Store
	cache    RecommendationCache
	cacheTTL time.Duration
	logger   *log.Logger
}

func NewRecommendationUsecase(store *dataset.Store, cache RecommendationCache, cacheTTL time.Duration, logger *log.Logger) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{store: store, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

func (u *Recommendation) Recommend(ctx context.Context, skills []string) (RecommendationItem, error) {
	cleaned := cleanSkills(skills)
	if len(cleaned) == 0 {
		return RecommendationItem{}, ErrSkillsRequired
	}

	key := RecommendCacheKey(cleaned)
	if u.cache != nil {
		var cached RecommendationItem
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	snap := u.store.Snapshot()
	if snap == nil || len(snap.Roles) == 0 {
		return RecommendationItem{}, ErrInternal
	}

	res := career.Recommend(cleaned, snap.Roles, snap.Skills)
	item := RecommendationItem{
		Role:              res.Role,
		MatchPercentage:   res.MatchPercentage,
		RecommendedSkills: res.RecommendedSkills,
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, item, u.cacheTTL); err != nil {
			u.logger.Printf("[Recommend] cache set failed: %v", err)
		}
	}

	return item, nil
}
