package transfer

import (
	"context"

	"github.com/jhoicas/Bodegas-api/internal/domain"
)

// BulkCoordinator pasa una lista de solicitudes por el motor de traslados de
// forma independiente: cada línea corre en su propia transacción y el fallo de
// una no revierte ni bloquea a las demás. El operador que envía muchas líneas
// ve exactamente cuáles entraron y cuáles no.
type BulkCoordinator struct {
	engine *TransferUseCase
}

// NewBulkCoordinator construye el coordinador sobre el motor.
func NewBulkCoordinator(engine *TransferUseCase) *BulkCoordinator {
	return &BulkCoordinator{engine: engine}
}

// BulkFailure una línea rechazada, con su índice en la lista original.
type BulkFailure struct {
	Index   int
	SKU     string
	Message string
}

// BulkResult acumulado del lote: éxitos en orden de entrada y fallos con índice original.
type BulkResult struct {
	Total               int
	SuccessfulTransfers []*TransferResult
	FailedTransfers     []BulkFailure
}

// BulkTransfer ejecuta cada solicitud contra el motor. La lista no puede ser vacía.
// No reintenta ninguna línea; el caller decide con base en los fallos reportados.
func (c *BulkCoordinator) BulkTransfer(ctx context.Context, inputs []TransferInput) (*BulkResult, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	result := &BulkResult{
		Total:               len(inputs),
		SuccessfulTransfers: make([]*TransferResult, 0, len(inputs)),
	}
	for i, input := range inputs {
		res, err := c.engine.Transfer(ctx, input)
		if err != nil {
			result.FailedTransfers = append(result.FailedTransfers, BulkFailure{
				Index:   i,
				SKU:     input.ItemSKU,
				Message: err.Error(),
			})
			continue
		}
		result.SuccessfulTransfers = append(result.SuccessfulTransfers, res)
	}
	return result, nil
}
