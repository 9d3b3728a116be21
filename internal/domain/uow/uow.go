package uow

import (
	"context"

	"sils-backend/internal/domain/check"
	"sils-backend/internal/domain/movement"
	"sils-backend/internal/domain/notification"
	"sils-backend/internal/domain/request"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/domain/user"
)

type Repos struct {
	Tools         tool.Repository
	Requests      request.Repository
	Checks        check.Repository
	CheckDetails  check.DetailRepository
	Users         user.Repository
	Credentials   user.CredentialRepository
	Movements     movement.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the request row first, then pass it in
	WithinRequestTx(ctx context.Context, requestID string, fn func(r Repos, req *request.Request) error) error
}
