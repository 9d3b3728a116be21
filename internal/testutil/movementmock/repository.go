package movementmock

import (
	"context"

	domain "sils-backend/internal/domain/movement"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying movement.Repository. The
// zero value silently accepts writes, which is what most workflow tests want.
type Repo struct {
	CreateFn func(ctx context.Context, m *domain.Movement) error
	ListFn   func(ctx context.Context, f domain.Filter) ([]domain.Movement, error)
}

func (m *Repo) Create(ctx context.Context, mv *domain.Movement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mv)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Movement, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}
