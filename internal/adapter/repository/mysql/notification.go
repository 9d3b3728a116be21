package mysql

import (
	"context"
	"time"

	notifDomain "sils-backend/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notifDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListActive(ctx context.Context, now time.Time) ([]notifDomain.Notification, error) {
	var out []notifDomain.Notification
	res := r.db.WithContext(ctx).
		Where("activa = ? AND expires_at > ?", true, now).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) GetActiveByCheck(ctx context.Context, checkID string) (*notifDomain.Notification, error) {
	var out notifDomain.Notification
	res := r.db.WithContext(ctx).
		Where("check_diario_id = ? AND activa = ?", checkID, true).
		First(&out)
	return &out, res.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	res := r.db.WithContext(ctx).
		Model(&notifDomain.Notification{}).
		Where("notification_id = ?", notificationID).
		Update("activa", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notifDomain.ErrNotFound
	}
	return nil
}
