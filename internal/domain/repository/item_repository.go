package repository

import "github.com/jhoicas/Bodegas-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para registros de stock por bodega.
// La búsqueda es por (SKU, bodega): el SKU no es global.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetBySKU devuelve el registro activo del SKU en la bodega, o nil si no existe.
	GetBySKU(sku, warehouseID string) (*entity.Item, error)
	// GetBySKUForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// mutaciones concurrentes de cantidad sobre el mismo item.
	GetBySKUForUpdate(sku, warehouseID string) (*entity.Item, error)
	Update(item *entity.Item) error
	// UpdateQuantity persiste solo la cantidad (mutación del motor de traslados).
	UpdateQuantity(id string, quantity int64) error
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Item, error)
	// ListActiveByWarehouse sin paginación; insumo de la reconciliación de capacidad.
	ListActiveByWarehouse(warehouseID string) ([]*entity.Item, error)
	// Deactivate baja lógica del registro (el SKU sobrevive en el ledger).
	Deactivate(id string) error
}
