package models

import (
	"time"
)

// Rol is the closed set of user roles. Authorization switches on it
// exhaustively instead of comparing raw strings.
type Rol string

const (
	RolAdmin   Rol = "admin"
	RolCliente Rol = "cliente"
)

// Valido reports whether r is one of the known roles.
func (r Rol) Valido() bool {
	switch r {
	case RolAdmin, RolCliente:
		return true
	}
	return false
}

type Usuario struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Email         string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash  string    `gorm:"size:255;not null" json:"-"`
	Nombre        string    `gorm:"size:255;not null" json:"nombre"`
	Rol           Rol       `gorm:"size:20;default:cliente" json:"rol"`
	FechaCreacion time.Time `gorm:"autoCreateTime" json:"fecha_creacion"`
	Activo        bool      `gorm:"default:true" json:"activo"`
}

func (Usuario) TableName() string { return "usuarios" }
