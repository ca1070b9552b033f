package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User. El rol decide el alcance de los reportes:
// owner y manager pueden consultar cualquier scope; member solo el propio.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleMember  = "member"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // owner, manager, member
	JobTitle     string
	BillableRate decimal.Decimal // tarifa por hora facturable
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
