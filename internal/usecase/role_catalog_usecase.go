package usecase

import (
	"context"

	"career-compass/internal/dataset"
)

type RoleSummary struct {
	Name           string
	RequiredSkills []string
}

type RoleCatalogUsecase interface {
	ListRoles(ctx context.Context) ([]RoleSummary, error)
}

type RoleCatalog struct {
	store *dataset.Store
}

func NewRoleCatalogUsecase(store *dataset.Store) *RoleCatalog {
	return &RoleCatalog{store: store}
}

func (u *RoleCatalog) ListRoles(_ context.Context) ([]RoleSummary, error) {
	snap := u.store.Snapshot()
	if snap == nil {
		return nil, ErrInternal
	}

	out := make([]RoleSummary, 0, len(snap.Roles))
	for _, r := range snap.Roles {
		out = append(out, RoleSummary{Name: r.Name, RequiredSkills: r.RequiredSkills})
	}
	return out, nil
}
