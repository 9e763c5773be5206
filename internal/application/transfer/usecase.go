package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Bodegas-api/internal/domain/inventory"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// TransferUseCase es el motor de traslados entre bodegas: valida la solicitud,
// muta stock y capacidades, y escribe exactamente una entrada TRANSFER en el
// ledger, todo como una unidad atómica (transacción con bloqueo de fila).
// En cualquier fallo no se confirma ninguna mutación ni se escribe al ledger.
type TransferUseCase struct {
	txRunner TxRunner
	metrics  MetricsRecorder
}

// NewTransferUseCase construye el motor. metrics puede ser nil.
func NewTransferUseCase(txRunner TxRunner, metrics MetricsRecorder) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, metrics: metrics}
}

// TransferInput solicitud validada de traslado de un SKU entre dos bodegas.
type TransferInput struct {
	CompanyID              string
	ActorID                string
	ItemSKU                string
	SourceWarehouseID      string
	DestinationWarehouseID string
	Quantity               int64 // entero positivo
	Note                   string
}

// TransferResult resultado de un traslado confirmado.
type TransferResult struct {
	LedgerEntryID            string
	ItemSKU                  string
	ItemName                 string
	SourceWarehouseName      string
	DestinationWarehouseName string
	Quantity                 int64
	PreviousQuantity         int64 // lado origen, antes del traslado
	NewQuantity              int64 // lado origen, después del traslado
	SourceItem               *entity.Item
	DestinationItem          *entity.Item
	Date                     time.Time
	ActorID                  string
	Note                     string
	Summary                  string
}

// summaryPrinter formatea cantidades con separador de miles para el resumen legible.
var summaryPrinter = message.NewPrinter(language.Spanish)

// Transfer ejecuta un traslado. Ver transfer() para la secuencia; esta capa solo
// añade la medición de resultado/duración.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	started := time.Now()
	result, err := uc.transfer(ctx, input)
	if uc.metrics != nil {
		uc.metrics.ObserveTransfer(outcomeLabel(err), time.Since(started))
	}
	return result, err
}

// transfer valida en orden (fail fast) y ejecuta la mutación dentro de una sola
// transacción: debitar item origen, crear-o-fusionar en destino, reservar capacidad
// destino / liberar capacidad origen, y una entrada TRANSFER en el ledger.
func (uc *TransferUseCase) transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.CompanyID == "" || input.ActorID == "" || input.ItemSKU == "" ||
		input.SourceWarehouseID == "" || input.DestinationWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	// Mismo origen y destino se rechaza antes de cualquier lookup.
	if input.SourceWarehouseID == input.DestinationWarehouseID {
		return nil, &domain.InvalidOperationError{Reason: "traslado a la misma bodega"}
	}

	var result *TransferResult
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		// Bloquea ambas bodegas en orden estable de ID para evitar deadlocks
		// entre traslados concurrentes con dirección opuesta.
		firstID, secondID := input.SourceWarehouseID, input.DestinationWarehouseID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		first, err := warehouseRepo.GetByIDForUpdate(firstID)
		if err != nil {
			return err
		}
		second, err := warehouseRepo.GetByIDForUpdate(secondID)
		if err != nil {
			return err
		}
		source, dest := first, second
		if firstID != input.SourceWarehouseID {
			source, dest = second, first
		}

		if source == nil {
			return domain.ErrNotFound
		}
		if source.CompanyID != input.CompanyID {
			return domain.ErrForbidden
		}
		if !source.Active {
			return &domain.InvalidOperationError{Reason: "bodega origen inactiva"}
		}
		if dest == nil {
			return domain.ErrNotFound
		}
		if dest.CompanyID != input.CompanyID {
			return domain.ErrForbidden
		}
		if !dest.Active {
			return &domain.InvalidOperationError{Reason: "bodega destino inactiva"}
		}

		sourceItem, err := itemRepo.GetBySKUForUpdate(input.ItemSKU, source.ID)
		if err != nil {
			return err
		}
		if sourceItem == nil {
			return domain.ErrNotFound
		}
		if input.Quantity > sourceItem.Quantity {
			return &domain.InsufficientStockError{
				SKU:       sourceItem.SKU,
				Available: sourceItem.Quantity,
				Requested: input.Quantity,
			}
		}

		deltaVolume := decimal.NewFromInt(input.Quantity).Mul(sourceItem.VolumePerUnit)
		if err := domaininv.Reserve(dest, deltaVolume); err != nil {
			return err
		}

		previousQty := sourceItem.Quantity
		sourceItem.Quantity -= input.Quantity
		if err := itemRepo.UpdateQuantity(sourceItem.ID, sourceItem.Quantity); err != nil {
			return fmt.Errorf("debitar stock origen: %w", err)
		}

		destItem, err := createOrMerge(itemRepo, dest.ID, sourceItem, input.Quantity)
		if err != nil {
			return err
		}

		domaininv.Release(source, deltaVolume)
		if err := warehouseRepo.UpdateCapacity(source.ID, source.CurrentCapacity); err != nil {
			return fmt.Errorf("liberar capacidad origen: %w", err)
		}
		if err := warehouseRepo.UpdateCapacity(dest.ID, dest.CurrentCapacity); err != nil {
			return fmt.Errorf("reservar capacidad destino: %w", err)
		}

		now := time.Now()
		entry := &entity.LedgerEntry{
			ID:                     uuid.New().String(),
			CompanyID:              input.CompanyID,
			ItemID:                 sourceItem.ID,
			SKU:                    sourceItem.SKU,
			Kind:                   entity.LedgerKindTRANSFER,
			QuantityChange:         -input.Quantity,
			PreviousQuantity:       previousQty,
			NewQuantity:            sourceItem.Quantity,
			SourceWarehouseID:      &source.ID,
			DestinationWarehouseID: &dest.ID,
			ActorID:                input.ActorID,
			Note:                   input.Note,
			CreatedAt:              now,
		}
		if !entry.Validate() {
			return domain.ErrInvalidInput
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return fmt.Errorf("registrar traslado en ledger: %w", err)
		}

		result = &TransferResult{
			LedgerEntryID:            entry.ID,
			ItemSKU:                  sourceItem.SKU,
			ItemName:                 sourceItem.Name,
			SourceWarehouseName:      source.Name,
			DestinationWarehouseName: dest.Name,
			Quantity:                 input.Quantity,
			PreviousQuantity:         previousQty,
			NewQuantity:              sourceItem.Quantity,
			SourceItem:               sourceItem,
			DestinationItem:          destItem,
			Date:                     now,
			ActorID:                  input.ActorID,
			Note:                     input.Note,
			Summary: summaryPrinter.Sprintf("Traslado de %d unidades de %s desde %s hacia %s",
				input.Quantity, sourceItem.SKU, source.Name, dest.Name),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// createOrMerge aplica el traslado en la bodega destino: si el SKU no existe ahí,
// crea un registro nuevo copiando los atributos descriptivos del item origen; si
// existe, incrementa su cantidad. Un merge con VolumePerUnit distinto se rechaza:
// la contabilidad de capacidad sería ambigua.
func createOrMerge(itemRepo repository.ItemRepository, warehouseID string, sourceItem *entity.Item, quantity int64) (*entity.Item, error) {
	existing, err := itemRepo.GetBySKUForUpdate(sourceItem.SKU, warehouseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if !existing.VolumePerUnit.Equal(sourceItem.VolumePerUnit) {
			return nil, &domain.InvalidOperationError{
				Reason: "el SKU en la bodega destino tiene un volumen unitario distinto",
			}
		}
		existing.Quantity += quantity
		if err := itemRepo.UpdateQuantity(existing.ID, existing.Quantity); err != nil {
			return nil, fmt.Errorf("acreditar stock destino: %w", err)
		}
		return existing, nil
	}

	now := time.Now()
	created := &entity.Item{
		ID:            uuid.New().String(),
		CompanyID:     sourceItem.CompanyID,
		WarehouseID:   warehouseID,
		SKU:           sourceItem.SKU,
		Name:          sourceItem.Name,
		Category:      sourceItem.Category,
		Brand:         sourceItem.Brand,
		Barcode:       sourceItem.Barcode,
		Quantity:      quantity,
		VolumePerUnit: sourceItem.VolumePerUnit,
		Price:         sourceItem.Price,
		Cost:          sourceItem.Cost,
		ReorderLevel:  sourceItem.ReorderLevel,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := itemRepo.Create(created); err != nil {
		return nil, fmt.Errorf("crear item en bodega destino: %w", err)
	}
	return created, nil
}

// outcomeLabel etiqueta de métrica según el tipo de fallo de negocio.
func outcomeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	var invalidOp *domain.InvalidOperationError
	var insufficient *domain.InsufficientStockError
	var capacity *domain.CapacityExceededError
	switch {
	case errors.As(err, &invalidOp):
		return "invalid_operation"
	case errors.As(err, &insufficient):
		return "insufficient_stock"
	case errors.As(err, &capacity):
		return "capacity_exceeded"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	}
	return "error"
}
