package toolmock

import (
	"context"

	domain "sils-backend/internal/domain/tool"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying tool.Repository. Fill in the
// function fields a test needs; unfilled lookups return context.Canceled.
type Repo struct {
	CreateFn             func(ctx context.Context, t *domain.Tool) error
	SaveFn               func(ctx context.Context, t *domain.Tool) error
	GetByToolIDFn        func(ctx context.Context, toolID string) (*domain.Tool, error)
	ListFn               func(ctx context.Context, f domain.Filter) ([]domain.Tool, error)
	ListForCheckFn       func(ctx context.Context, zone domain.Zone) ([]domain.Tool, error)
	ListDegradedByZoneFn func(ctx context.Context, zone domain.Zone) ([]domain.Tool, error)
	DeleteFn             func(ctx context.Context, toolID string) error
}

func (m *Repo) Create(ctx context.Context, t *domain.Tool) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.Tool) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByToolID(ctx context.Context, toolID string) (*domain.Tool, error) {
	if m.GetByToolIDFn != nil {
		return m.GetByToolIDFn(ctx, toolID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.Tool, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) ListForCheck(ctx context.Context, zone domain.Zone) ([]domain.Tool, error) {
	if m.ListForCheckFn != nil {
		return m.ListForCheckFn(ctx, zone)
	}
	return nil, nil
}

func (m *Repo) ListDegradedByZone(ctx context.Context, zone domain.Zone) ([]domain.Tool, error) {
	if m.ListDegradedByZoneFn != nil {
		return m.ListDegradedByZoneFn(ctx, zone)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, toolID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, toolID)
	}
	return nil
}
