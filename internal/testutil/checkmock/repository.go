package checkmock

import (
	"context"

	domain "sils-backend/internal/domain/check"
	"sils-backend/internal/domain/tool"
)

var (
	_ domain.Repository       = (*Repo)(nil)
	_ domain.DetailRepository = (*DetailRepo)(nil)
)

// Repo is a function-backed mock satisfying check.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, c *domain.DailyCheck) error
	SaveFn              func(ctx context.Context, c *domain.DailyCheck) error
	GetByCheckIDFn      func(ctx context.Context, checkID string) (*domain.DailyCheck, error)
	GetActiveForDayFn   func(ctx context.Context, zone tool.Zone, date string) (*domain.DailyCheck, error)
	ListForDayFn        func(ctx context.Context, zone tool.Zone, date string) ([]domain.DailyCheck, error)
	ListRecentFn        func(ctx context.Context, limit int) ([]domain.DailyCheck, error)
	ListPendingBeforeFn func(ctx context.Context, date string) ([]domain.DailyCheck, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.DailyCheck) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.DailyCheck) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByCheckID(ctx context.Context, checkID string) (*domain.DailyCheck, error) {
	if m.GetByCheckIDFn != nil {
		return m.GetByCheckIDFn(ctx, checkID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveForDay(ctx context.Context, zone tool.Zone, date string) (*domain.DailyCheck, error) {
	if m.GetActiveForDayFn != nil {
		return m.GetActiveForDayFn(ctx, zone, date)
	}
	return nil, context.Canceled
}

func (m *Repo) ListForDay(ctx context.Context, zone tool.Zone, date string) ([]domain.DailyCheck, error) {
	if m.ListForDayFn != nil {
		return m.ListForDayFn(ctx, zone, date)
	}
	return nil, nil
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.DailyCheck, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) ListPendingBefore(ctx context.Context, date string) ([]domain.DailyCheck, error) {
	if m.ListPendingBeforeFn != nil {
		return m.ListPendingBeforeFn(ctx, date)
	}
	return nil, nil
}

// DetailRepo is a function-backed mock satisfying check.DetailRepository.
type DetailRepo struct {
	CreateBatchFn func(ctx context.Context, details []domain.Detail) error
	ListByCheckFn func(ctx context.Context, checkRef uint64) ([]domain.Detail, error)
}

func (m *DetailRepo) CreateBatch(ctx context.Context, details []domain.Detail) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, details)
	}
	return nil
}

func (m *DetailRepo) ListByCheck(ctx context.Context, checkRef uint64) ([]domain.Detail, error) {
	if m.ListByCheckFn != nil {
		return m.ListByCheckFn(ctx, checkRef)
	}
	return nil, nil
}
