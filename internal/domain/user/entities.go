package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("usuario not found")
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrSelfEdit: an admin may not change or delete their own record.
	ErrSelfEdit = errors.New("cannot edit your own user record")
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTechnician Role = "TECNICO"
	RoleUnassigned Role = "SIN_ASIGNAR"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleUnassigned:
		return true
	}
	return false
}

// User mirrors the identity-provider account into the application store;
// only the role is owned here.
type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_usuarios_user_id" json:"id"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_usuarios_email" json:"email"`
	Role      Role      `gorm:"column:rol;size:16;not null;default:'SIN_ASIGNAR'" json:"rol"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) IsAdmin() bool    { return u != nil && u.Role == RoleAdmin }
func (u *User) IsAssigned() bool { return u != nil && (u.Role == RoleAdmin || u.Role == RoleTechnician) }

// Credential is the local stand-in for the external identity provider.
type Credential struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID       string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_credenciales_user_id" json:"-"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Credential) TableName() string { return "credenciales" }
