package notificationmock

import (
	"context"
	"time"

	domain "sils-backend/internal/domain/notification"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock satisfying notification.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, n *domain.Notification) error
	ListActiveFn       func(ctx context.Context, now time.Time) ([]domain.Notification, error)
	GetActiveByCheckFn func(ctx context.Context, checkID string) (*domain.Notification, error)
	MarkReadFn         func(ctx context.Context, notificationID string) error
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}

func (m *Repo) ListActive(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx, now)
	}
	return nil, nil
}

func (m *Repo) GetActiveByCheck(ctx context.Context, checkID string) (*domain.Notification, error) {
	if m.GetActiveByCheckFn != nil {
		return m.GetActiveByCheckFn(ctx, checkID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) MarkRead(ctx context.Context, notificationID string) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, notificationID)
	}
	return nil
}
