package mysql

import (
	"context"

	movementDomain "sils-backend/internal/domain/movement"

	"gorm.io/gorm"
)

type MovementRepository struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) *MovementRepository { return &MovementRepository{db: db} }

func (r *MovementRepository) Create(ctx context.Context, m *movementDomain.Movement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MovementRepository) List(ctx context.Context, f movementDomain.Filter) ([]movementDomain.Movement, error) {
	q := r.db.WithContext(ctx).Model(&movementDomain.Movement{})
	if f.ToolID != "" {
		q = q.Where("herramienta_id = ?", f.ToolID)
	}
	if f.Type != "" {
		q = q.Where("tipo = ?", f.Type)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at <= ?", f.To)
	}
	var out []movementDomain.Movement
	res := q.Order("created_at DESC").Find(&out)
	return out, res.Error
}
