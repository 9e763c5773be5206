package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name                  string          `json:"name" validate:"required,min=1,max=200"`
	Location              string          `json:"location"`
	MaxCapacity           decimal.Decimal `json:"max_capacity"`
	AlertThresholdPercent int             `json:"alert_threshold_percent" validate:"min=0,max=100"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
// MaxCapacity y umbral son editables; CurrentCapacity solo la muta el motor.
type UpdateWarehouseRequest struct {
	Name                  *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Location              *string          `json:"location"`
	MaxCapacity           *decimal.Decimal `json:"max_capacity"`
	AlertThresholdPercent *int             `json:"alert_threshold_percent" validate:"omitempty,min=0,max=100"`
	Active                *bool            `json:"active"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID                    string          `json:"id"`
	CompanyID             string          `json:"company_id"`
	Name                  string          `json:"name"`
	Location              string          `json:"location"`
	MaxCapacity           decimal.Decimal `json:"max_capacity"`
	CurrentCapacity       decimal.Decimal `json:"current_capacity"`
	AlertThresholdPercent int             `json:"alert_threshold_percent"`
	Active                bool            `json:"active"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// WarehouseAlertResponse estado de alerta de capacidad de una bodega.
type WarehouseAlertResponse struct {
	WarehouseID           string          `json:"warehouse_id"`
	Name                  string          `json:"name"`
	MaxCapacity           decimal.Decimal `json:"max_capacity"`
	CurrentCapacity       decimal.Decimal `json:"current_capacity"`
	UsagePercent          decimal.Decimal `json:"usage_percent"`
	AlertThresholdPercent int             `json:"alert_threshold_percent"`
	AlertTriggered        bool            `json:"alert_triggered"`
	Message               string          `json:"message,omitempty"`
}

// ReconcileResponse resultado de la reconciliación de capacidad de una bodega.
type ReconcileResponse struct {
	WarehouseID        string          `json:"warehouse_id"`
	WarehouseName      string          `json:"warehouse_name"`
	PreviousCapacity   decimal.Decimal `json:"previous_capacity"`
	RecomputedCapacity decimal.Decimal `json:"recomputed_capacity"`
	Corrected          bool            `json:"corrected"`
}
