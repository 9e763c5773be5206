package entity

import "time"

// Roles de la API. El middleware RBAC compara contra estas constantes.
const (
	RoleAdmin     = "admin"     // administra empresas, bodegas y usuarios
	RoleBodeguero = "bodeguero" // opera stock: movimientos y traslados
	RoleVendedor  = "vendedor"  // solo lectura de catálogo y ledger
)

// Estados de cuenta.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// ValidRole reporta si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleBodeguero || role == RoleVendedor
}

// User un usuario de una Company. Password nunca viaja en claro por el dominio:
// solo se guarda el hash bcrypt.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive solo las cuentas activas pueden iniciar sesión.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
