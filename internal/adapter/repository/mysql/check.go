package mysql

import (
	"context"

	checkDomain "sils-backend/internal/domain/check"
	toolDomain "sils-backend/internal/domain/tool"

	"gorm.io/gorm"
)

type CheckRepository struct{ db *gorm.DB }

func NewCheckRepository(db *gorm.DB) *CheckRepository { return &CheckRepository{db: db} }

func (r *CheckRepository) Create(ctx context.Context, c *checkDomain.DailyCheck) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CheckRepository) Save(ctx context.Context, c *checkDomain.DailyCheck) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CheckRepository) GetByCheckID(ctx context.Context, checkID string) (*checkDomain.DailyCheck, error) {
	var out checkDomain.DailyCheck
	res := r.db.WithContext(ctx).Where("check_id = ?", checkID).First(&out)
	return &out, res.Error
}

func (r *CheckRepository) GetActiveForDay(ctx context.Context, zone toolDomain.Zone, date string) (*checkDomain.DailyCheck, error) {
	var out checkDomain.DailyCheck
	res := r.db.WithContext(ctx).
		Where("zona = ? AND fecha = ?", zone, date).
		Order("ciclo DESC").
		First(&out)
	return &out, res.Error
}

func (r *CheckRepository) ListForDay(ctx context.Context, zone toolDomain.Zone, date string) ([]checkDomain.DailyCheck, error) {
	var out []checkDomain.DailyCheck
	res := r.db.WithContext(ctx).
		Where("zona = ? AND fecha = ?", zone, date).
		Order("ciclo ASC").
		Find(&out)
	return out, res.Error
}

func (r *CheckRepository) ListRecent(ctx context.Context, limit int) ([]checkDomain.DailyCheck, error) {
	var out []checkDomain.DailyCheck
	res := r.db.WithContext(ctx).
		Order("fecha DESC, ciclo DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *CheckRepository) ListPendingBefore(ctx context.Context, date string) ([]checkDomain.DailyCheck, error) {
	var out []checkDomain.DailyCheck
	res := r.db.WithContext(ctx).
		Where("estado = ? AND fecha < ?", checkDomain.StatusPending, date).
		Order("fecha ASC").
		Find(&out)
	return out, res.Error
}

type CheckDetailRepository struct{ db *gorm.DB }

func NewCheckDetailRepository(db *gorm.DB) *CheckDetailRepository {
	return &CheckDetailRepository{db: db}
}

func (r *CheckDetailRepository) CreateBatch(ctx context.Context, details []checkDomain.Detail) error {
	if len(details) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&details).Error
}

func (r *CheckDetailRepository) ListByCheck(ctx context.Context, checkRef uint64) ([]checkDomain.Detail, error) {
	var out []checkDomain.Detail
	res := r.db.WithContext(ctx).
		Where("check_diario_id = ?", checkRef).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
