package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
)

// Servicio de dominio de capacidad volumétrica por bodega.
// Mantiene el agregado cacheado Warehouse.CurrentCapacity; la persistencia del
// nuevo valor corre por cuenta de la transacción que envuelve la operación.

// Reserve aparta deltaVolume en la bodega. Falla con CapacityExceededError si
// CurrentCapacity + deltaVolume > MaxCapacity; en éxito deja el nuevo valor en la entidad.
func Reserve(w *entity.Warehouse, deltaVolume decimal.Decimal) error {
	if deltaVolume.IsNegative() {
		return domain.ErrInvalidInput
	}
	newUsed := w.CurrentCapacity.Add(deltaVolume)
	if newUsed.GreaterThan(w.MaxCapacity) {
		return &domain.CapacityExceededError{
			WarehouseName: w.Name,
			Available:     w.AvailableCapacity(),
			Requested:     deltaVolume,
		}
	}
	w.CurrentCapacity = newUsed
	return nil
}

// Release libera deltaVolume. Siempre tiene éxito: la capacidad usada solo baja,
// con piso en cero.
func Release(w *entity.Warehouse, deltaVolume decimal.Decimal) {
	newUsed := w.CurrentCapacity.Sub(deltaVolume)
	if newUsed.IsNegative() {
		newUsed = decimal.Zero
	}
	w.CurrentCapacity = newUsed
}

// IsAlertTriggered indica si el uso alcanzó el umbral de alerta:
// CurrentCapacity / MaxCapacity × 100 ≥ AlertThresholdPercent.
func IsAlertTriggered(w *entity.Warehouse) bool {
	if w.MaxCapacity.IsZero() {
		return false
	}
	usagePct := w.CurrentCapacity.Div(w.MaxCapacity).Mul(decimal.NewFromInt(100))
	return usagePct.GreaterThanOrEqual(decimal.NewFromInt(int64(w.AlertThresholdPercent)))
}

// UsedVolume recalcula la suma real Σ(Quantity × VolumePerUnit) sobre los items.
// Es la rutina de reconciliación contra la que se corrige el agregado cacheado.
func UsedVolume(items []*entity.Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalVolume())
	}
	return total
}
