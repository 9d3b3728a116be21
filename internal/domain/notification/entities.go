package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notificacion not found")

// Notification flags a daily check that stayed pending past its day. It stays
// visible while activa and unexpired; marking it read flips activa off.
type Notification struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string    `gorm:"column:notification_id;type:char(32);not null;uniqueIndex:ux_notif_id" json:"id"`
	CheckID        string    `gorm:"column:check_diario_id;type:char(32);not null;index" json:"check_diario_id"`
	Message        string    `gorm:"column:mensaje;type:text;not null" json:"mensaje"`
	Active         bool      `gorm:"column:activa;not null;default:true" json:"activa"`
	ExpiresAt      time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notificaciones_checks" }
