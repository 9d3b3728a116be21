package mysql

import (
	"context"

	requestDomain "sils-backend/internal/domain/request"
	toolDomain "sils-backend/internal/domain/tool"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, req *requestDomain.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *RequestRepository) Save(ctx context.Context, req *requestDomain.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.Request, error) {
	var out requestDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.Request, error) {
	var out requestDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *RequestRepository) List(ctx context.Context, f requestDomain.Filter) ([]requestDomain.Request, error) {
	q := r.db.WithContext(ctx).Model(&requestDomain.Request{})
	if f.Zone != "" {
		q = q.Where("zona = ?", f.Zone)
	}
	if f.Type != "" {
		q = q.Where("tipo = ?", f.Type)
	}
	if f.Priority != 0 {
		q = q.Where("prioridad = ?", f.Priority)
	}
	if f.Status != "" {
		q = q.Where("estado = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		// also match the referenced tool so a REPARACION/CAMBIO request is
		// findable by that tool's name or code
		tools := r.db.Model(&toolDomain.Tool{}).Select("tool_id").
			Where("nombre LIKE ? OR codigo LIKE ?", like, like)
		q = q.Where("motivo LIKE ? OR herramienta_nueva_nombre LIKE ? OR herramienta_id IN (?)",
			like, like, tools)
	}
	var out []requestDomain.Request
	res := q.Order("prioridad DESC, created_at DESC").Find(&out)
	return out, res.Error
}
