package inventory

import (
	"context"

	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Mismo contrato que transfer.TxRunner; la
// implementación de postgres satisface ambos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
