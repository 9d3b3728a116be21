package notification

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// ListActive returns activa rows whose expires_at is after now.
	ListActive(ctx context.Context, now time.Time) ([]Notification, error)
	GetActiveByCheck(ctx context.Context, checkID string) (*Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}
