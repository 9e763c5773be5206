package dto

import "time"

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	ItemSKU                string `json:"item_sku" validate:"required,min=1,max=64"`
	SourceWarehouseID      string `json:"source_warehouse_id" validate:"required,uuid"`
	DestinationWarehouseID string `json:"destination_warehouse_id" validate:"required,uuid"`
	Quantity               int64  `json:"quantity" validate:"required,gt=0"`
	Note                   string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// BulkTransferRequest body para POST /api/inventory/transfers/bulk (lista no vacía).
type BulkTransferRequest struct {
	Transfers []TransferRequest `json:"transfers" validate:"required,min=1,dive"`
}

// TransferResponse resultado de un traslado confirmado.
type TransferResponse struct {
	LedgerEntryID            string    `json:"ledger_entry_id"`
	ItemSKU                  string    `json:"item_sku"`
	ItemName                 string    `json:"item_name"`
	SourceWarehouseName      string    `json:"source_warehouse_name"`
	DestinationWarehouseName string    `json:"destination_warehouse_name"`
	Quantity                 int64     `json:"quantity"`
	PreviousQuantity         int64     `json:"previous_quantity"`
	NewQuantity              int64     `json:"new_quantity"`
	Date                     time.Time `json:"date"`
	ActorID                  string    `json:"actor_id"`
	Note                     string    `json:"note,omitempty"`
	Summary                  string    `json:"summary"`
}

// BulkTransferFailure línea rechazada del lote, con índice en la lista original.
type BulkTransferFailure struct {
	Index   int    `json:"index"`
	ItemSKU string `json:"item_sku"`
	Message string `json:"message"`
}

// BulkTransferResponse acumulado del lote.
type BulkTransferResponse struct {
	Total               int                   `json:"total"`
	SuccessfulTransfers []TransferResponse    `json:"successful_transfers"`
	FailedTransfers     []BulkTransferFailure `json:"failed_transfers"`
}

// StockOperationRequest body para POST /api/inventory/movements
// (RECEIVE, SALE o ADJUSTMENT; los traslados van por /transfers).
type StockOperationRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required,uuid"`
	ItemSKU     string `json:"item_sku" validate:"required,min=1,max=64"`
	Kind        string `json:"kind" validate:"required,oneof=RECEIVE SALE ADJUSTMENT"`
	Quantity    int64  `json:"quantity" validate:"required"`
	Note        string `json:"note,omitempty" validate:"omitempty,max=500"`
}

// StockOperationResponse resultado de una operación de stock confirmada.
type StockOperationResponse struct {
	LedgerEntryID    string    `json:"ledger_entry_id"`
	ItemSKU          string    `json:"item_sku"`
	WarehouseName    string    `json:"warehouse_name"`
	PreviousQuantity int64     `json:"previous_quantity"`
	NewQuantity      int64     `json:"new_quantity"`
	Date             time.Time `json:"date"`
}
