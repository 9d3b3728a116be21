package movement

import "time"

type Type string

const (
	TypeRequestCreated   Type = "SOLICITUD_CREADA"
	TypeRequestApproved  Type = "SOLICITUD_APROBADA"
	TypeRequestRejected  Type = "SOLICITUD_RECHAZADA"
	TypeRequestCancelled Type = "SOLICITUD_CANCELADA"
	TypeToolDelivered    Type = "HERRAMIENTA_ENTREGADA"
	TypeToolRepaired     Type = "HERRAMIENTA_REPARADA"
)

// Movement is the audit trail behind /historial. Rows are written inside the
// same transaction as the state change they record.
type Movement struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"-"`
	Type        Type      `gorm:"column:tipo;size:32;not null;index:idx_movimientos_tipo" json:"tipo"`
	RequestID   *string   `gorm:"column:solicitud_id;type:char(32);index" json:"solicitud_id,omitempty"`
	ToolID      *string   `gorm:"column:herramienta_id;type:char(32);index" json:"herramienta_id,omitempty"`
	UserID      *string   `gorm:"column:usuario_id;type:char(32)" json:"usuario_id,omitempty"`
	AdminID     *string   `gorm:"column:admin_id;type:char(32)" json:"admin_id,omitempty"`
	Description string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Movement) TableName() string { return "movimientos" }
