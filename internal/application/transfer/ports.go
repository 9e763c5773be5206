package transfer

import (
	"context"
	"time"

	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza la atomicidad del motor de traslados: o confirman las
// cuatro mutaciones (stock origen, stock destino, capacidades, ledger) o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// MetricsRecorder registra el resultado y la duración de cada traslado.
// Implementación Prometheus en infrastructure/metrics; nil deshabilita la medición.
type MetricsRecorder interface {
	ObserveTransfer(outcome string, elapsed time.Duration)
}
