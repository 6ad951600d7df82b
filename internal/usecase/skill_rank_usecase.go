package usecase

import (
	"context"

	"career-compass/internal/dataset"
	"career-compass/internal/domain/career"
)

type SkillRankUsecase interface {
	RankSkills(ctx context.Context, skills []string) ([]career.RankedSkill, error)
}

type SkillRank struct {
	store *dataset.Store
}

func NewSkillRankUsecase(store *dataset.Store) *SkillRank {
	return &SkillRank{store: store}
}

func (u *SkillRank) RankSkills(_ context.Context, skills []string) ([]career.RankedSkill, error) {
	cleaned := cleanSkills(skills)
	if len(cleaned) == 0 {
		return nil, ErrSkillsRequired
	}

	snap := u.store.Snapshot()
	if snap == nil {
		return nil, ErrInternal
	}

	return career.Rank(cleaned, snap.Skills), nil
}
