package history

import (
	"context"

	domain "sils-backend/internal/domain/movement"
	"sils-backend/internal/domain/policy"
	"sils-backend/internal/domain/user"
)

// Usecase reads the movement trail. Writes happen inside the request and
// check flows, never here.
type Usecase struct {
	repo domain.Repository
	pol  policy.Policy
}

func NewUsecase(r domain.Repository, pol policy.Policy) *Usecase {
	return &Usecase{repo: r, pol: pol}
}

func (u *Usecase) List(ctx context.Context, actor *user.User, f domain.Filter) ([]domain.Movement, error) {
	if !u.pol.CanViewHistory(actor) {
		return nil, policy.ErrPermissionDenied
	}
	return u.repo.List(ctx, f)
}
