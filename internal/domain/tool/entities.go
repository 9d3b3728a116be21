package tool

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("herramienta not found")
	ErrDuplicateCode = errors.New("herramienta code already in use")
)

type Zone string

const (
	ZoneInstallations Zone = "INSTALACIONES"
	ZoneMaintenance   Zone = "MANTENIMIENTO"
	ZoneWorkshop      Zone = "TALLER"
)

// Zones is the configured set of work areas; daily checks are scoped to it.
var Zones = []Zone{ZoneInstallations, ZoneMaintenance, ZoneWorkshop}

func ValidZone(z Zone) bool {
	for _, v := range Zones {
		if v == z {
			return true
		}
	}
	return false
}

type Type string

const (
	TypeHandTool Type = "HERRAMIENTA_MANO"
	TypeMachine  Type = "MAQUINA"
	TypeSupply   Type = "INSUMO"
)

func ValidType(t Type) bool {
	switch t {
	case TypeHandTool, TypeMachine, TypeSupply:
		return true
	}
	return false
}

type Status string

const (
	StatusGood    Status = "BIEN"
	StatusFair    Status = "REGULAR"
	StatusPoor    Status = "MAL"
	StatusMissing Status = "FALTANTE"
	StatusBroken  Status = "ROTA"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusGood, StatusFair, StatusPoor, StatusMissing, StatusBroken:
		return true
	}
	return false
}

// scoreByStatus is the single condition-score policy table. Every
// status-changing transition must go through ScoreFor; the score is never
// derived anywhere else.
var scoreByStatus = map[Status]int{
	StatusGood:    10,
	StatusFair:    7,
	StatusPoor:    4,
	StatusBroken:  2,
	StatusMissing: 1,
}

// ScoreFor maps a status label to its 1-10 condition score.
func ScoreFor(s Status) int {
	if v, ok := scoreByStatus[s]; ok {
		return v
	}
	return 1
}

type Tool struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ToolID   string `gorm:"column:tool_id;type:char(32);not null;uniqueIndex:ux_herramientas_tool_id" json:"id"`
	Code     string `gorm:"column:codigo;size:64;not null;uniqueIndex:ux_herramientas_codigo" json:"codigo"`
	Name     string `gorm:"column:nombre;size:255;not null" json:"nombre"`
	Description string `gorm:"column:descripcion;type:text" json:"descripcion"`
	Type     Type   `gorm:"column:tipo;size:32" json:"tipo"`
	Zone     Zone   `gorm:"column:zona;size:32;not null;index:idx_herramientas_zona" json:"zona"`
	Status   Status `gorm:"column:estado;size:16;not null" json:"estado"`
	ConditionScore    int    `gorm:"column:puntuacion_estado" json:"puntuacion_estado"`
	TotalQuantity     int    `gorm:"column:cantidad_total" json:"cantidad_total"`
	AvailableQuantity int    `gorm:"column:cantidad_disponible" json:"cantidad_disponible"`
	Location          string `gorm:"column:ubicacion;size:255" json:"ubicacion"`
	CreatedBy         string `gorm:"column:creado_por;type:char(32)" json:"creado_por"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Tool) TableName() string { return "herramientas" }
