package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	domaininv "github.com/jhoicas/Bodegas-api/internal/domain/inventory"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// ReconcileUseCase recalcula la suma real Σ(cantidad × volumen unitario) desde
// las filas de items y corrige el agregado cacheado CurrentCapacity si derivó.
// Se invoca periódicamente o ante sospecha de inconsistencia, nunca en el camino
// caliente de los traslados.
type ReconcileUseCase struct {
	txRunner TxRunner
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner TxRunner) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner}
}

// ReconcileResult reporte de la reconciliación de una bodega.
type ReconcileResult struct {
	WarehouseID        string
	WarehouseName      string
	PreviousCapacity   decimal.Decimal
	RecomputedCapacity decimal.Decimal
	Corrected          bool
}

// ReconcileCapacity bloquea la bodega, recalcula el volumen usado real y
// persiste la corrección cuando el cache derivó.
func (uc *ReconcileUseCase) ReconcileCapacity(ctx context.Context, companyID, warehouseID string) (*ReconcileResult, error) {
	var result *ReconcileResult
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		_ repository.LedgerRepository,
	) error {
		warehouse, err := warehouseRepo.GetByIDForUpdate(warehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if warehouse.CompanyID != companyID {
			return domain.ErrForbidden
		}

		items, err := itemRepo.ListActiveByWarehouse(warehouse.ID)
		if err != nil {
			return err
		}
		recomputed := domaininv.UsedVolume(items)

		result = &ReconcileResult{
			WarehouseID:        warehouse.ID,
			WarehouseName:      warehouse.Name,
			PreviousCapacity:   warehouse.CurrentCapacity,
			RecomputedCapacity: recomputed,
			Corrected:          !warehouse.CurrentCapacity.Equal(recomputed),
		}
		if result.Corrected {
			if err := warehouseRepo.UpdateCapacity(warehouse.ID, recomputed); err != nil {
				return fmt.Errorf("corregir capacidad: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
