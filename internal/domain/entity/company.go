package entity

import "time"

// Estados de una empresa.
const (
	CompanyStatusActive    = "active"
	CompanyStatusSuspended = "suspended"
)

// Company el tenant del sistema: toda bodega, ítem, usuario y entrada del
// ledger pertenece a exactamente una empresa, y ninguna operación cruza ese límite.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
