package repository

import (
	"time"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
)

// LedgerFilter filtros de consulta del ledger (proyección de solo lectura).
// WarehouseID matchea origen o destino.
type LedgerFilter struct {
	ItemID      string
	SKU         string
	WarehouseID string
	ActorID     string
	Kind        string
	From        *time.Time
	To          *time.Time
}

// LedgerRepository define el puerto del ledger append-only.
// Append es la única escritura; las filas nunca se actualizan ni borran.
type LedgerRepository interface {
	Append(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	List(companyID string, filter LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error)
}
