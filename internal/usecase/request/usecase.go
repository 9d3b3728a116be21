package request

import (
	"context"
	"fmt"
	"time"

	"sils-backend/internal/domain/movement"
	"sils-backend/internal/domain/policy"
	domain "sils-backend/internal/domain/request"
	"sils-backend/internal/domain/tool"
	"sils-backend/internal/domain/uow"
	"sils-backend/internal/domain/user"
	"sils-backend/internal/domain/validation"
	"sils-backend/pkg/id"
)

type Usecase struct {
	repo  domain.Repository
	tools tool.Repository
	uow   uow.UnitOfWork
	pol   policy.Policy
}

func NewUsecase(r domain.Repository, tools tool.Repository, tx uow.UnitOfWork, pol policy.Policy) *Usecase {
	return &Usecase{repo: r, tools: tools, uow: tx, pol: pol}
}

func (in CreateInput) missing() []string {
	var m []string
	if in.Zone == "" {
		m = append(m, "zona")
	}
	if in.Motive == "" {
		m = append(m, "motivo")
	}
	switch in.Type {
	case domain.TypeNew:
		if in.NewToolName == "" {
			m = append(m, "herramienta_nueva_nombre")
		}
		if in.UseDescription == "" {
			m = append(m, "descripcion_uso")
		}
	case domain.TypeRepair, domain.TypeChange:
		if in.ToolID == "" {
			m = append(m, "herramienta_id")
		}
		if in.Fault == "" {
			m = append(m, "falla")
		}
	default:
		m = append(m, "tipo")
	}
	return m
}

// Create files a request in PENDIENTE and records the movement, both in one
// transaction.
func (u *Usecase) Create(ctx context.Context, actor *user.User, in CreateInput) (*domain.Request, error) {
	if !u.pol.CanCreateRequest(actor) {
		return nil, policy.ErrPermissionDenied
	}
	if m := in.missing(); len(m) > 0 {
		return nil, validation.Missing(m...)
	}
	if !domain.ValidPriority(in.Priority) {
		in.Priority = domain.PriorityUseful
	}

	req := &domain.Request{
		RequestID:      id.NewID32(),
		Type:           in.Type,
		Zone:           in.Zone,
		Priority:       in.Priority,
		Status:         domain.StatusPending,
		RequestedBy:    actor.UserID,
		Motive:         in.Motive,
		Fault:          in.Fault,
		NewToolName:    in.NewToolName,
		UseDescription: in.UseDescription,
		Brand:          in.Brand,
	}

	if in.Type == domain.TypeRepair || in.Type == domain.TypeChange {
		// the referenced tool must exist up front
		t, err := u.tools.GetByToolID(ctx, in.ToolID)
		if err != nil {
			return nil, tool.ErrNotFound
		}
		req.ToolID = &t.ToolID
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		return r.Movements.Create(ctx, &movement.Movement{
			Type:        movement.TypeRequestCreated,
			RequestID:   &req.RequestID,
			ToolID:      req.ToolID,
			UserID:      &actor.UserID,
			Description: fmt.Sprintf("Solicitud %s creada (%s)", req.Type, req.Motive),
		})
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Cancel is only available to the requester while the request is still
// pending. Terminal either way, no side effects.
func (u *Usecase) Cancel(ctx context.Context, actor *user.User, requestID string) (*domain.Request, error) {
	var out *domain.Request
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, req *domain.Request) error {
		if req.RequestedBy != actor.UserID {
			return policy.ErrPermissionDenied
		}
		if req.Status != domain.StatusPending {
			return domain.ErrNotPending
		}
		now := time.Now().UTC()
		req.Status = domain.StatusCancelled
		req.ReviewedAt = &now
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		if err := r.Movements.Create(ctx, &movement.Movement{
			Type:        movement.TypeRequestCancelled,
			RequestID:   &req.RequestID,
			ToolID:      req.ToolID,
			UserID:      &actor.UserID,
			Description: "Solicitud cancelada por el solicitante",
		}); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Decide approves or rejects a pending request. The status update, the
// approval side effects on the tool catalog and the audit movements commit
// or roll back together.
func (u *Usecase) Decide(ctx context.Context, actor *user.User, requestID string, in DecideInput) (*domain.Request, error) {
	if !u.pol.CanDecideRequest(actor) {
		return nil, policy.ErrPermissionDenied
	}
	var out *domain.Request
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, req *domain.Request) error {
		if req.Status != domain.StatusPending {
			return domain.ErrNotPending
		}
		now := time.Now().UTC()
		if in.Approve {
			req.Status = domain.StatusApproved
		} else {
			req.Status = domain.StatusRejected
		}
		req.ReviewedBy = &actor.UserID
		req.ReviewedAt = &now
		req.AdminComment = in.Comment
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}

		mtype := movement.TypeRequestRejected
		if in.Approve {
			mtype = movement.TypeRequestApproved
		}
		if err := r.Movements.Create(ctx, &movement.Movement{
			Type:        mtype,
			RequestID:   &req.RequestID,
			ToolID:      req.ToolID,
			UserID:      &req.RequestedBy,
			AdminID:     &actor.UserID,
			Description: in.Comment,
		}); err != nil {
			return err
		}

		if !in.Approve {
			out = req
			return nil
		}
		if err := u.applyApproval(ctx, r, actor, req, in); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) applyApproval(ctx context.Context, r uow.Repos, actor *user.User, req *domain.Request, in DecideInput) error {
	switch req.Type {
	case domain.TypeNew:
		if !in.CreateTool {
			return nil
		}
		if in.NewToolCode == "" {
			return validation.Missing("codigo")
		}
		t := &tool.Tool{
			ToolID:         id.NewID32(),
			Code:           in.NewToolCode,
			Name:           req.NewToolName,
			Description:    req.UseDescription,
			Zone:           req.Zone,
			Status:         tool.StatusGood,
			ConditionScore: tool.ScoreFor(tool.StatusGood),
			// created unstocked; stocking is a separate catalog edit
			TotalQuantity:     1,
			AvailableQuantity: 0,
			CreatedBy:         actor.UserID,
		}
		if err := r.Tools.Create(ctx, t); err != nil {
			return err
		}
		return r.Movements.Create(ctx, &movement.Movement{
			Type:        movement.TypeToolDelivered,
			RequestID:   &req.RequestID,
			ToolID:      &t.ToolID,
			UserID:      &req.RequestedBy,
			AdminID:     &actor.UserID,
			Description: fmt.Sprintf("Herramienta nueva %s (%s) creada por solicitud", t.Name, t.Code),
		})

	case domain.TypeChange:
		orig, err := r.Tools.GetByToolID(ctx, *req.ToolID)
		if err != nil {
			return tool.ErrNotFound
		}
		if in.CreateTool {
			if in.NewToolCode == "" {
				return validation.Missing("codigo")
			}
			repl := &tool.Tool{
				ToolID:            id.NewID32(),
				Code:              in.NewToolCode,
				Name:              orig.Name,
				Description:       orig.Description,
				Type:              orig.Type,
				Zone:              req.Zone,
				Status:            tool.StatusGood,
				ConditionScore:    tool.ScoreFor(tool.StatusGood),
				TotalQuantity:     orig.TotalQuantity,
				AvailableQuantity: 0,
				Location:          orig.Location,
				CreatedBy:         actor.UserID,
			}
			if err := r.Tools.Create(ctx, repl); err != nil {
				return err
			}
			if err := r.Movements.Create(ctx, &movement.Movement{
				Type:        movement.TypeToolDelivered,
				RequestID:   &req.RequestID,
				ToolID:      &repl.ToolID,
				UserID:      &req.RequestedBy,
				AdminID:     &actor.UserID,
				Description: fmt.Sprintf("Reemplazo de %s entregado (%s)", orig.Name, repl.Code),
			}); err != nil {
				return err
			}
		}
		// retire the replaced tool
		orig.Status = tool.StatusMissing
		orig.ConditionScore = tool.ScoreFor(tool.StatusMissing)
		return r.Tools.Save(ctx, orig)

	case domain.TypeRepair:
		if !tool.ValidStatus(in.NewToolStatus) {
			return validation.Missing("nuevo_estado")
		}
		t, err := r.Tools.GetByToolID(ctx, *req.ToolID)
		if err != nil {
			return tool.ErrNotFound
		}
		t.Status = in.NewToolStatus
		t.ConditionScore = tool.ScoreFor(in.NewToolStatus)
		if err := r.Tools.Save(ctx, t); err != nil {
			return err
		}
		return r.Movements.Create(ctx, &movement.Movement{
			Type:        movement.TypeToolRepaired,
			RequestID:   &req.RequestID,
			ToolID:      &t.ToolID,
			UserID:      &req.RequestedBy,
			AdminID:     &actor.UserID,
			Description: fmt.Sprintf("Herramienta %s reparada, estado %s", t.Name, t.Status),
		})
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*domain.Request, error) {
	req, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return req, nil
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]domain.Request, error) {
	return u.repo.List(ctx, f)
}
