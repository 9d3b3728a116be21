package request

import (
	"errors"
	"time"

	"sils-backend/internal/domain/tool"
)

var (
	ErrNotFound = errors.New("solicitud not found")
	// ErrNotPending: the request already reached a terminal state.
	ErrNotPending = errors.New("solicitud is not pending")
)

type Type string

const (
	TypeNew    Type = "NUEVA"
	TypeRepair Type = "REPARACION"
	TypeChange Type = "CAMBIO"
)

func ValidType(t Type) bool {
	switch t {
	case TypeNew, TypeRepair, TypeChange:
		return true
	}
	return false
}

type Priority int

const (
	PriorityUseful    Priority = 1 // UTIL
	PriorityNecessary Priority = 2 // NECESARIA
	PriorityUrgent    Priority = 3 // URGENTE
)

func ValidPriority(p Priority) bool {
	return p >= PriorityUseful && p <= PriorityUrgent
}

type Status string

const (
	StatusPending   Status = "PENDIENTE"
	StatusApproved  Status = "APROBADA"
	StatusRejected  Status = "RECHAZADA"
	StatusCancelled Status = "CANCELADA"
)

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool { return s != StatusPending }

type Request struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	RequestID string    `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_solicitudes_request_id" json:"id"`
	Type      Type      `gorm:"column:tipo;size:16;not null" json:"tipo"`
	Zone      tool.Zone `gorm:"column:zona;size:32;not null;index:idx_solicitudes_zona" json:"zona"`
	Priority  Priority  `gorm:"column:prioridad;not null" json:"prioridad"`
	Status    Status    `gorm:"column:estado;size:16;not null;index:idx_solicitudes_estado" json:"estado"`

	RequestedBy string  `gorm:"column:solicitante_id;type:char(32);not null;index" json:"solicitante_id"`
	ReviewedBy  *string `gorm:"column:revisado_por;type:char(32)" json:"revisado_por,omitempty"`
	Motive      string  `gorm:"column:motivo;type:text" json:"motivo"`

	// REPARACION / CAMBIO
	ToolID *string `gorm:"column:herramienta_id;type:char(32);index" json:"herramienta_id,omitempty"`
	Fault  string  `gorm:"column:falla;type:text" json:"falla,omitempty"`

	// NUEVA
	NewToolName    string `gorm:"column:herramienta_nueva_nombre;size:255" json:"herramienta_nueva_nombre,omitempty"`
	UseDescription string `gorm:"column:descripcion_uso;type:text" json:"descripcion_uso,omitempty"`
	Brand          string `gorm:"column:marca;size:128" json:"marca,omitempty"`

	AdminComment string     `gorm:"column:comentario_admin;type:text" json:"comentario_admin,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	ReviewedAt   *time.Time `gorm:"column:fecha_revision" json:"fecha_revision,omitempty"`
}

func (Request) TableName() string { return "solicitudes" }
