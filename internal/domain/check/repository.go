package check

import (
	"context"

	"sils-backend/internal/domain/tool"
)

type Repository interface {
	Create(ctx context.Context, c *DailyCheck) error
	Save(ctx context.Context, c *DailyCheck) error
	GetByCheckID(ctx context.Context, checkID string) (*DailyCheck, error)
	// GetActiveForDay returns the highest cycle for (zone, date).
	GetActiveForDay(ctx context.Context, zone tool.Zone, date string) (*DailyCheck, error)
	ListForDay(ctx context.Context, zone tool.Zone, date string) ([]DailyCheck, error)
	ListRecent(ctx context.Context, limit int) ([]DailyCheck, error)
	// ListPendingBefore returns checks still PENDIENTE for days before date.
	ListPendingBefore(ctx context.Context, date string) ([]DailyCheck, error)
}

type DetailRepository interface {
	CreateBatch(ctx context.Context, details []Detail) error
	ListByCheck(ctx context.Context, checkRef uint64) ([]Detail, error)
}
