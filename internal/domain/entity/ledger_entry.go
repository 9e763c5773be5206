package entity

import "time"

// Tipos de actividad del ledger.
const (
	LedgerKindRECEIVE    = "RECEIVE"    // entrada de mercancía
	LedgerKindTRANSFER   = "TRANSFER"   // traslado entre bodegas
	LedgerKindSALE       = "SALE"       // salida por venta
	LedgerKindADJUSTMENT = "ADJUSTMENT" // ajuste manual
	LedgerKindUPDATE     = "UPDATE"     // edición administrativa de cantidad
	LedgerKindDELETE     = "DELETE"     // baja del registro de item
)

// LedgerEntry representa una entrada del ledger de actividad de stock.
// Es inmutable una vez escrita: el ledger es append-only, nunca se actualiza ni borra.
// SKU es un snapshot desnormalizado que sobrevive al borrado del item.
type LedgerEntry struct {
	ID                     string
	CompanyID              string
	ItemID                 string
	SKU                    string // snapshot, sobrevive al DELETE del item
	Kind                   string
	QuantityChange         int64 // con signo
	PreviousQuantity       int64
	NewQuantity            int64
	SourceWarehouseID      *string
	DestinationWarehouseID *string
	ActorID                string
	Note                   string
	CreatedAt              time.Time
}

// Validate verifica las invariantes de bodegas según el tipo de actividad:
// TRANSFER exige origen y destino distintos; RECEIVE solo destino;
// SALE/ADJUSTMENT no exigen ninguna.
func (e *LedgerEntry) Validate() bool {
	switch e.Kind {
	case LedgerKindTRANSFER:
		return e.SourceWarehouseID != nil && e.DestinationWarehouseID != nil &&
			*e.SourceWarehouseID != *e.DestinationWarehouseID
	case LedgerKindRECEIVE:
		return e.SourceWarehouseID == nil && e.DestinationWarehouseID != nil
	case LedgerKindSALE, LedgerKindADJUSTMENT, LedgerKindUPDATE, LedgerKindDELETE:
		return true
	}
	return false
}
