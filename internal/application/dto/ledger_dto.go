package dto

import "time"

// LedgerQueryRequest filtros de consulta del ledger (query params).
// From/To en formato RFC 3339. WarehouseID matchea origen o destino.
type LedgerQueryRequest struct {
	ItemID      string `query:"item_id"`
	SKU         string `query:"sku"`
	WarehouseID string `query:"warehouse_id"`
	ActorID     string `query:"actor_id"`
	Kind        string `query:"kind" validate:"omitempty,oneof=RECEIVE TRANSFER SALE ADJUSTMENT UPDATE DELETE"`
	From        string `query:"from"`
	To          string `query:"to"`
	Limit       int    `query:"limit" validate:"min=1,max=100"`
	Offset      int    `query:"offset" validate:"min=0"`
}

// LedgerEntryResponse salida de una entrada del ledger.
type LedgerEntryResponse struct {
	ID                     string    `json:"id"`
	ItemID                 string    `json:"item_id"`
	SKU                    string    `json:"sku"`
	Kind                   string    `json:"kind"`
	QuantityChange         int64     `json:"quantity_change"`
	PreviousQuantity       int64     `json:"previous_quantity"`
	NewQuantity            int64     `json:"new_quantity"`
	SourceWarehouseID      *string   `json:"source_warehouse_id,omitempty"`
	DestinationWarehouseID *string   `json:"destination_warehouse_id,omitempty"`
	ActorID                string    `json:"actor_id"`
	Note                   string    `json:"note,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// LedgerListResponse lista paginada de entradas del ledger.
type LedgerListResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Page    PageResponse          `json:"page"`
}
