package request

import (
	"context"

	"sils-backend/internal/domain/tool"
)

type Filter struct {
	Zone     tool.Zone
	Type     Type
	Priority Priority
	Status   Status
	Search   string
}

type Repository interface {
	Create(ctx context.Context, r *Request) error
	Save(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// GetByRequestIDForUpdate locks the row; only meaningful inside a tx.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	List(ctx context.Context, f Filter) ([]Request, error)
}
