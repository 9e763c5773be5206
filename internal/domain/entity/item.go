package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa el registro de stock de un SKU en una bodega concreta.
// El SKU es único por bodega, no global: el mismo SKU puede existir como
// registros distintos en bodegas distintas, cada uno con su propia cantidad.
type Item struct {
	ID            string
	CompanyID     string
	WarehouseID   string // bodega dueña (exactamente una)
	SKU           string
	Name          string
	Category      string
	Brand         string
	Barcode       string
	Quantity      int64           // entero, nunca negativo
	VolumePerUnit decimal.Decimal // volumen por unidad, ≥ 0
	Price         decimal.Decimal
	Cost          decimal.Decimal
	ReorderLevel  *int64 // opcional
	Active        bool   // false = soft-delete
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TotalVolume devuelve el volumen total que ocupa el registro (Quantity × VolumePerUnit).
func (i *Item) TotalVolume() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.VolumePerUnit)
}
