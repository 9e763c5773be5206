package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa una bodega física con capacidad volumétrica finita (multi-bodega).
// CurrentCapacity es un agregado cacheado: Σ(item.Quantity × item.VolumePerUnit) de los
// items activos de la bodega. Invariante: 0 ≤ CurrentCapacity ≤ MaxCapacity después de
// cada mutación confirmada.
type Warehouse struct {
	ID                    string
	CompanyID             string
	Name                  string
	Location              string
	MaxCapacity           decimal.Decimal // unidades de volumen
	CurrentCapacity       decimal.Decimal // volumen usado (derivado, cacheado)
	AlertThresholdPercent int             // 0-100
	Active                bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AvailableCapacity devuelve el volumen libre de la bodega.
func (w *Warehouse) AvailableCapacity() decimal.Decimal {
	return w.MaxCapacity.Sub(w.CurrentCapacity)
}
