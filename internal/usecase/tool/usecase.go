package tool

import (
	"context"

	"sils-backend/internal/domain/policy"
	domain "sils-backend/internal/domain/tool"
	"sils-backend/internal/domain/user"
	"sils-backend/internal/domain/validation"
	"sils-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	pol  policy.Policy
}

func NewUsecase(r domain.Repository, pol policy.Policy) *Usecase {
	return &Usecase{repo: r, pol: pol}
}

type CreateToolInput struct {
	Code              string
	Name              string
	Description       string
	Type              domain.Type
	Zone              domain.Zone
	Status            domain.Status
	ConditionScore    int
	TotalQuantity     int
	AvailableQuantity int
	Location          string
}

type UpdateToolInput struct {
	Code              string
	Name              string
	Description       string
	Type              domain.Type
	Zone              domain.Zone
	Status            domain.Status
	ConditionScore    int
	TotalQuantity     int
	AvailableQuantity int
	Location          string
}

// Stats are the per-status counts over a filtered catalog slice, recomputed
// on every read.
type Stats struct {
	Total   int `json:"total"`
	Good    int `json:"bien"`
	Fair    int `json:"regular"`
	Poor    int `json:"mal"`
	Missing int `json:"faltantes"`
	Broken  int `json:"rotas"`
}

func (in CreateToolInput) missing() []string {
	var m []string
	if in.Code == "" {
		m = append(m, "codigo")
	}
	if in.Name == "" {
		m = append(m, "nombre")
	}
	if in.Zone == "" {
		m = append(m, "zona")
	}
	return m
}

func (u *Usecase) Create(ctx context.Context, actor *user.User, in CreateToolInput) (*domain.Tool, error) {
	if !u.pol.CanMutateTools(actor) {
		return nil, policy.ErrPermissionDenied
	}
	if m := in.missing(); len(m) > 0 {
		return nil, validation.Missing(m...)
	}
	if !domain.ValidZone(in.Zone) {
		return nil, &validation.MissingFieldsError{Fields: []string{"zona"}}
	}
	status := in.Status
	if status == "" {
		status = domain.StatusGood
	}
	score := in.ConditionScore
	if score == 0 {
		score = domain.ScoreFor(status)
	}
	if in.AvailableQuantity > in.TotalQuantity {
		return nil, &validation.MissingFieldsError{Fields: []string{"cantidad_disponible"}}
	}

	t := &domain.Tool{
		ToolID:            id.NewID32(),
		Code:              in.Code,
		Name:              in.Name,
		Description:       in.Description,
		Type:              in.Type,
		Zone:              in.Zone,
		Status:            status,
		ConditionScore:    score,
		TotalQuantity:     in.TotalQuantity,
		AvailableQuantity: in.AvailableQuantity,
		Location:          in.Location,
		CreatedBy:         actor.UserID,
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *Usecase) Update(ctx context.Context, actor *user.User, toolID string, in UpdateToolInput) (*domain.Tool, error) {
	if !u.pol.CanMutateTools(actor) {
		return nil, policy.ErrPermissionDenied
	}
	if in.Code == "" || in.Name == "" {
		var m []string
		if in.Code == "" {
			m = append(m, "codigo")
		}
		if in.Name == "" {
			m = append(m, "nombre")
		}
		return nil, validation.Missing(m...)
	}
	t, err := u.repo.GetByToolID(ctx, toolID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	statusChanged := in.Status != "" && in.Status != t.Status

	t.Code = in.Code
	t.Name = in.Name
	t.Description = in.Description
	if in.Type != "" {
		t.Type = in.Type
	}
	if in.Zone != "" {
		t.Zone = in.Zone
	}
	if in.Status != "" {
		t.Status = in.Status
	}
	switch {
	case in.ConditionScore > 0:
		t.ConditionScore = in.ConditionScore
	case statusChanged:
		// status changed without an explicit score: apply the policy table
		t.ConditionScore = domain.ScoreFor(t.Status)
	}
	if in.TotalQuantity > 0 {
		t.TotalQuantity = in.TotalQuantity
	}
	if in.AvailableQuantity >= 0 {
		t.AvailableQuantity = in.AvailableQuantity
	}
	if t.AvailableQuantity > t.TotalQuantity {
		return nil, &validation.MissingFieldsError{Fields: []string{"cantidad_disponible"}}
	}
	t.Location = in.Location

	if err := u.repo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *Usecase) Delete(ctx context.Context, actor *user.User, toolID string) error {
	if !u.pol.CanMutateTools(actor) {
		return policy.ErrPermissionDenied
	}
	if _, err := u.repo.GetByToolID(ctx, toolID); err != nil {
		return domain.ErrNotFound
	}
	return u.repo.Delete(ctx, toolID)
}

func (u *Usecase) Get(ctx context.Context, toolID string) (*domain.Tool, error) {
	t, err := u.repo.GetByToolID(ctx, toolID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]domain.Tool, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) ListDegraded(ctx context.Context, zone domain.Zone) ([]domain.Tool, error) {
	return u.repo.ListDegradedByZone(ctx, zone)
}

// StatsFor aggregates per-status counts over the filtered set.
func (u *Usecase) StatsFor(ctx context.Context, f domain.Filter) (Stats, error) {
	tools, err := u.repo.List(ctx, f)
	if err != nil {
		return Stats{}, err
	}
	s := Stats{Total: len(tools)}
	for _, t := range tools {
		switch t.Status {
		case domain.StatusGood:
			s.Good++
		case domain.StatusFair:
			s.Fair++
		case domain.StatusPoor:
			s.Poor++
		case domain.StatusMissing:
			s.Missing++
		case domain.StatusBroken:
			s.Broken++
		}
	}
	return s, nil
}
