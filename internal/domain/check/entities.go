package check

import (
	"errors"
	"fmt"
	"time"

	"sils-backend/internal/domain/tool"
)

var (
	ErrNotFound = errors.New("check not found")
	// ErrEmptyZone: nothing to verify, the zone has no tools enumerated.
	ErrEmptyZone = errors.New("no tools to verify in zone")
	// ErrAlreadyDoneToday blocks start when a finished cycle exists today.
	ErrAlreadyDoneToday = errors.New("check already finished for zone today")
	// ErrNoCompletedToday blocks repeat when nothing finished yet.
	ErrNoCompletedToday = errors.New("no completed check for zone today")
	ErrNotInProgress    = errors.New("check is not in progress")
	ErrNoInProgress     = errors.New("no in-progress check for zone today")
	ErrOutsideWindow    = errors.New("checks can only start on working days from 08:00")
	ErrEmptyReason      = errors.New("skip reason is required")
	ErrToolNotInCheck   = errors.New("tool is not part of this check")
	// ErrInvalidFoundStatus: the recorded estado is not OK/FALTANTE/DANADA.
	ErrInvalidFoundStatus = errors.New("invalid found status")
)

// IncompleteChecklistError reports how many enumerated tools still lack a
// recorded detail when complete is attempted.
type IncompleteChecklistError struct {
	Missing int
}

func (e *IncompleteChecklistError) Error() string {
	return fmt.Sprintf("checklist incomplete: %d tools missing a detail", e.Missing)
}

type Status string

const (
	StatusPending    Status = "PENDIENTE"
	StatusInProgress Status = "EN_PROCESO"
	StatusCompleted  Status = "COMPLETADO"
	StatusSkipped    Status = "OMITIDO"
)

func (s Status) Finished() bool { return s == StatusCompleted || s == StatusSkipped }

type FoundStatus string

const (
	FoundOK      FoundStatus = "OK"
	FoundMissing FoundStatus = "FALTANTE"
	FoundDamaged FoundStatus = "DANADA"
)

func ValidFoundStatus(s FoundStatus) bool {
	switch s {
	case FoundOK, FoundMissing, FoundDamaged:
		return true
	}
	return false
}

// DailyCheck is one verification cycle for a zone and calendar day. Repeats
// after completion insert a new row with the next ciclo instead of
// overwriting, so earlier detail history stays intact. The active check for a
// day is the highest ciclo. Fecha is a plain YYYY-MM-DD string so equality
// behaves the same under mysql DATE and the sqlite test driver.
type DailyCheck struct {
	ID      uint64    `gorm:"primaryKey;column:id" json:"-"`
	CheckID string    `gorm:"column:check_id;type:char(32);not null;uniqueIndex:ux_checks_check_id" json:"id"`
	Zone    tool.Zone `gorm:"column:zona;size:32;not null;uniqueIndex:ux_checks_zona_fecha_ciclo" json:"zona"`
	Date    string    `gorm:"column:fecha;type:date;not null;uniqueIndex:ux_checks_zona_fecha_ciclo" json:"fecha"`
	Cycle   int       `gorm:"column:ciclo;not null;default:1;uniqueIndex:ux_checks_zona_fecha_ciclo" json:"ciclo"`
	Status  Status    `gorm:"column:estado;size:16;not null" json:"estado"`

	StartedBy   *string    `gorm:"column:iniciado_por;type:char(32)" json:"iniciado_por,omitempty"`
	CompletedBy *string    `gorm:"column:completado_por;type:char(32)" json:"completado_por,omitempty"`
	StartedAt   *time.Time `gorm:"column:fecha_inicio" json:"fecha_inicio,omitempty"`
	CompletedAt *time.Time `gorm:"column:fecha_completado" json:"fecha_completado,omitempty"`

	SkipReason   string `gorm:"column:motivo_omision;type:text" json:"motivo_omision,omitempty"`
	Observations string `gorm:"column:observaciones;type:text" json:"observaciones,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DailyCheck) TableName() string { return "checks_diarios" }

// Detail is the per-tool outcome of one check cycle.
type Detail struct {
	ID           uint64      `gorm:"primaryKey;column:id" json:"-"`
	CheckRef     uint64      `gorm:"column:check_diario_id;not null;uniqueIndex:ux_detalle_check_tool" json:"-"`
	ToolID       string      `gorm:"column:herramienta_id;type:char(32);not null;uniqueIndex:ux_detalle_check_tool" json:"herramienta_id"`
	FoundStatus  FoundStatus `gorm:"column:estado_encontrado;size:16;not null" json:"estado_encontrado"`
	Observations string      `gorm:"column:observaciones;type:text" json:"observaciones,omitempty"`
	VerifiedBy   string      `gorm:"column:verificado_por;type:char(32);not null" json:"verificado_por"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Detail) TableName() string { return "check_detalle" }
