package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Bodegas-api/internal/domain/inventory"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// StockUseCase registra operaciones de stock no mediadas por el motor de traslados
// (RECEIVE, SALE, ADJUSTMENT) de forma transaccional, con bloqueo de fila y una
// entrada de ledger por mutación aceptada. El motor de traslados escribe su propia
// entrada TRANSFER; aquí no hay doble registro.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// StockOperationInput entrada para una operación de stock sobre un SKU en una bodega.
// RECEIVE y SALE usan Quantity positivo; ADJUSTMENT admite signo.
type StockOperationInput struct {
	CompanyID   string
	ActorID     string
	WarehouseID string
	ItemSKU     string
	Kind        string // RECEIVE, SALE, ADJUSTMENT
	Quantity    int64
	Note        string
}

// StockOperationResult resultado de una operación confirmada.
type StockOperationResult struct {
	LedgerEntryID    string
	ItemSKU          string
	WarehouseName    string
	PreviousQuantity int64
	NewQuantity      int64
	Date             time.Time
}

// RegisterOperation valida y aplica la operación dentro de una transacción:
// bloquea bodega e item, muta cantidad y capacidad, y agrega la entrada de ledger.
func (uc *StockUseCase) RegisterOperation(ctx context.Context, input StockOperationInput) (*StockOperationResult, error) {
	if input.CompanyID == "" || input.ActorID == "" || input.WarehouseID == "" || input.ItemSKU == "" {
		return nil, domain.ErrInvalidInput
	}
	switch input.Kind {
	case entity.LedgerKindRECEIVE, entity.LedgerKindSALE:
		if input.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.LedgerKindADJUSTMENT:
		if input.Quantity == 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	var result *StockOperationResult
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		warehouse, err := warehouseRepo.GetByIDForUpdate(input.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if warehouse.CompanyID != input.CompanyID {
			return domain.ErrForbidden
		}
		if !warehouse.Active {
			return &domain.InvalidOperationError{Reason: "bodega inactiva"}
		}

		item, err := itemRepo.GetBySKUForUpdate(input.ItemSKU, warehouse.ID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		// Delta con signo según tipo: RECEIVE suma, SALE resta, ADJUSTMENT tal cual.
		delta := input.Quantity
		if input.Kind == entity.LedgerKindSALE {
			delta = -input.Quantity
		}
		if item.Quantity+delta < 0 {
			return &domain.InsufficientStockError{
				SKU:       item.SKU,
				Available: item.Quantity,
				Requested: -delta,
			}
		}

		deltaVolume := decimal.NewFromInt(delta).Mul(item.VolumePerUnit)
		if deltaVolume.IsPositive() {
			if err := domaininv.Reserve(warehouse, deltaVolume); err != nil {
				return err
			}
		} else {
			domaininv.Release(warehouse, deltaVolume.Neg())
		}

		previousQty := item.Quantity
		item.Quantity += delta
		if err := itemRepo.UpdateQuantity(item.ID, item.Quantity); err != nil {
			return fmt.Errorf("actualizar stock: %w", err)
		}
		if err := warehouseRepo.UpdateCapacity(warehouse.ID, warehouse.CurrentCapacity); err != nil {
			return fmt.Errorf("actualizar capacidad: %w", err)
		}

		now := time.Now()
		entry := &entity.LedgerEntry{
			ID:               uuid.New().String(),
			CompanyID:        input.CompanyID,
			ItemID:           item.ID,
			SKU:              item.SKU,
			Kind:             input.Kind,
			QuantityChange:   delta,
			PreviousQuantity: previousQty,
			NewQuantity:      item.Quantity,
			ActorID:          input.ActorID,
			Note:             input.Note,
			CreatedAt:        now,
		}
		if input.Kind == entity.LedgerKindRECEIVE {
			entry.DestinationWarehouseID = &warehouse.ID
		}
		if !entry.Validate() {
			return domain.ErrInvalidInput
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return fmt.Errorf("registrar operación en ledger: %w", err)
		}

		result = &StockOperationResult{
			LedgerEntryID:    entry.ID,
			ItemSKU:          item.SKU,
			WarehouseName:    warehouse.Name,
			PreviousQuantity: previousQty,
			NewQuantity:      item.Quantity,
			Date:             now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
