package movement

import (
	"context"
	"time"
)

type Filter struct {
	ToolID string
	Type   Type
	From   time.Time
	To     time.Time
}

type Repository interface {
	Create(ctx context.Context, m *Movement) error
	List(ctx context.Context, f Filter) ([]Movement, error)
}
