package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para dar de alta un item en una bodega.
type CreateItemRequest struct {
	WarehouseID     string          `json:"warehouse_id" validate:"required,uuid"`
	SKU             string          `json:"sku" validate:"required,min=1,max=64"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Category        string          `json:"category,omitempty"`
	Brand           string          `json:"brand,omitempty"`
	Barcode         string          `json:"barcode,omitempty"`
	InitialQuantity int64           `json:"initial_quantity" validate:"min=0"`
	VolumePerUnit   decimal.Decimal `json:"volume_per_unit"`
	Price           decimal.Decimal `json:"price"`
	Cost            decimal.Decimal `json:"cost"`
	ReorderLevel    *int64          `json:"reorder_level,omitempty"`
}

// UpdateItemRequest entrada para editar un item (campos opcionales).
// Quantity edita la cantidad directamente y queda registrada en el ledger como UPDATE.
type UpdateItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	Brand         *string          `json:"brand"`
	Barcode       *string          `json:"barcode"`
	Quantity      *int64           `json:"quantity" validate:"omitempty,min=0"`
	VolumePerUnit *decimal.Decimal `json:"volume_per_unit"`
	Price         *decimal.Decimal `json:"price"`
	Cost          *decimal.Decimal `json:"cost"`
	ReorderLevel  *int64           `json:"reorder_level"`
	Note          string           `json:"note,omitempty" validate:"omitempty,max=500"`
}

// ItemResponse salida de un item.
type ItemResponse struct {
	ID            string          `json:"id"`
	WarehouseID   string          `json:"warehouse_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
	Quantity      int64           `json:"quantity"`
	VolumePerUnit decimal.Decimal `json:"volume_per_unit"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	ReorderLevel  *int64          `json:"reorder_level,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
