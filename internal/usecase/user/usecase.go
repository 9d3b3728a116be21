package user

import (
	"context"
	"log"

	"sils-backend/internal/domain/policy"
	domain "sils-backend/internal/domain/user"
)

type Usecase struct {
	users domain.Repository
	creds domain.CredentialRepository
	pol   policy.Policy
}

func NewUsecase(users domain.Repository, creds domain.CredentialRepository, pol policy.Policy) *Usecase {
	return &Usecase{users: users, creds: creds, pol: pol}
}

type Stats struct {
	Total       int `json:"total"`
	Admins      int `json:"admins"`
	Technicians int `json:"tecnicos"`
	Unassigned  int `json:"sin_asignar"`
}

func (u *Usecase) List(ctx context.Context, actor *domain.User) ([]domain.User, Stats, error) {
	if !u.pol.CanManageUsers(actor) {
		return nil, Stats{}, policy.ErrPermissionDenied
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	s := Stats{Total: len(users)}
	for _, usr := range users {
		switch usr.Role {
		case domain.RoleAdmin:
			s.Admins++
		case domain.RoleTechnician:
			s.Technicians++
		default:
			s.Unassigned++
		}
	}
	return users, s, nil
}

func (u *Usecase) AssignRole(ctx context.Context, actor *domain.User, targetID string, role domain.Role) (*domain.User, error) {
	if !u.pol.CanManageUsers(actor) {
		return nil, policy.ErrPermissionDenied
	}
	if actor.UserID == targetID {
		return nil, domain.ErrSelfEdit
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrNotFound
	}
	target, err := u.users.GetByUserID(ctx, targetID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	target.Role = role
	if err := u.users.Save(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// Delete removes the user record, then the credential as a best effort: the
// primary deletion already succeeded, so a failing credential cleanup is
// logged and ignored.
func (u *Usecase) Delete(ctx context.Context, actor *domain.User, targetID string) error {
	if !u.pol.CanManageUsers(actor) {
		return policy.ErrPermissionDenied
	}
	if actor.UserID == targetID {
		return domain.ErrSelfEdit
	}
	if _, err := u.users.GetByUserID(ctx, targetID); err != nil {
		return domain.ErrNotFound
	}
	if err := u.users.Delete(ctx, targetID); err != nil {
		return err
	}
	if err := u.creds.DeleteByUserID(ctx, targetID); err != nil {
		log.Printf("user delete: credential cleanup for %s failed: %v", targetID, err)
	}
	return nil
}
