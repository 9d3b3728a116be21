package tool

import "context"

// Filter narrows List; zero values mean "no filter". Search matches
// nombre/codigo with a LIKE.
type Filter struct {
	Zone   Zone
	Type   Type
	Status Status
	Search string
}

type Repository interface {
	Create(ctx context.Context, t *Tool) error
	Save(ctx context.Context, t *Tool) error
	GetByToolID(ctx context.Context, toolID string) (*Tool, error)
	List(ctx context.Context, f Filter) ([]Tool, error)
	// ListForCheck enumerates the tools a daily check must verify for a
	// zone, in a stable order.
	ListForCheck(ctx context.Context, zone Zone) ([]Tool, error)
	ListDegradedByZone(ctx context.Context, zone Zone) ([]Tool, error)
	// Delete is a hard delete.
	Delete(ctx context.Context, toolID string) error
}
