package mysql

import (
	"context"

	toolDomain "sils-backend/internal/domain/tool"

	"gorm.io/gorm"
)

type ToolRepository struct{ db *gorm.DB }

func NewToolRepository(db *gorm.DB) *ToolRepository { return &ToolRepository{db: db} }

func (r *ToolRepository) Create(ctx context.Context, t *toolDomain.Tool) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ToolRepository) Save(ctx context.Context, t *toolDomain.Tool) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *ToolRepository) GetByToolID(ctx context.Context, toolID string) (*toolDomain.Tool, error) {
	var out toolDomain.Tool
	res := r.db.WithContext(ctx).Where("tool_id = ?", toolID).First(&out)
	return &out, res.Error
}

func (r *ToolRepository) List(ctx context.Context, f toolDomain.Filter) ([]toolDomain.Tool, error) {
	q := r.db.WithContext(ctx).Model(&toolDomain.Tool{})
	if f.Zone != "" {
		q = q.Where("zona = ?", f.Zone)
	}
	if f.Type != "" {
		q = q.Where("tipo = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("estado = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("nombre LIKE ? OR codigo LIKE ?", like, like)
	}
	var out []toolDomain.Tool
	res := q.Order("nombre ASC").Find(&out)
	return out, res.Error
}

func (r *ToolRepository) ListForCheck(ctx context.Context, zone toolDomain.Zone) ([]toolDomain.Tool, error) {
	var out []toolDomain.Tool
	res := r.db.WithContext(ctx).
		Where("zona = ?", zone).
		Order("nombre ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ToolRepository) ListDegradedByZone(ctx context.Context, zone toolDomain.Zone) ([]toolDomain.Tool, error) {
	var out []toolDomain.Tool
	res := r.db.WithContext(ctx).
		Where("zona = ? AND estado IN ?", zone, []toolDomain.Status{
			toolDomain.StatusPoor, toolDomain.StatusBroken, toolDomain.StatusMissing,
		}).
		Order("puntuacion_estado ASC, nombre ASC").
		Find(&out)
	return out, res.Error
}

// Delete is a hard delete; soft-deleted scope is bypassed on purpose.
func (r *ToolRepository) Delete(ctx context.Context, toolID string) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("tool_id = ?", toolID).
		Delete(&toolDomain.Tool{}).Error
}
