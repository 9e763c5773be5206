package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// GetByIDForUpdate y UpdateCapacity se usan dentro de transacciones: la fila de
// capacidad se protege con el mismo alcance de bloqueo que las cantidades de items.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// mutaciones concurrentes de capacidad sobre la misma bodega.
	GetByIDForUpdate(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	// UpdateCapacity persiste el agregado cacheado CurrentCapacity.
	UpdateCapacity(id string, currentCapacity decimal.Decimal) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error)
	// Deactivate baja lógica: Active = false. El histórico del ledger no se toca.
	Deactivate(id string) error
}
