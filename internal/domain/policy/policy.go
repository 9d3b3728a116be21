package policy

import (
	"errors"

	"sils-backend/internal/domain/request"
	"sils-backend/internal/domain/user"
)

var ErrPermissionDenied = errors.New("access denied")

// Policy gates actions by role and ownership. AllowAdminRequests lets admins
// file requests of their own in addition to deciding them.
type Policy struct {
	AllowAdminRequests bool
}

func (p Policy) CanViewCatalog(u *user.User) bool { return u.IsAssigned() }

func (p Policy) CanMutateTools(u *user.User) bool { return u.IsAdmin() }

func (p Policy) CanCreateRequest(u *user.User) bool {
	if u == nil {
		return false
	}
	if u.Role == user.RoleTechnician {
		return true
	}
	return p.AllowAdminRequests && u.IsAdmin()
}

func (p Policy) CanDecideRequest(u *user.User) bool { return u.IsAdmin() }

// CanCancelRequest: only the requester, and only while still pending.
func (p Policy) CanCancelRequest(u *user.User, req *request.Request) bool {
	if u == nil || req == nil {
		return false
	}
	return req.RequestedBy == u.UserID && req.Status == request.StatusPending
}

func (p Policy) CanRunChecks(u *user.User) bool { return u.IsAssigned() }

func (p Policy) CanResetCheck(u *user.User) bool { return u.IsAdmin() }

func (p Policy) CanManageUsers(u *user.User) bool { return u.IsAdmin() }

// CanEditUser guards against admin self-lockout: an admin may not change or
// delete their own record.
func (p Policy) CanEditUser(u *user.User, targetID string) bool {
	return u.IsAdmin() && u.UserID != targetID
}

func (p Policy) CanViewHistory(u *user.User) bool { return u.IsAdmin() }
