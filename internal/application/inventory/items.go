package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Bodegas-api/internal/domain/inventory"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// ItemAdminUseCase operaciones administrativas sobre registros de item:
// alta, edición, baja lógica y consultas. Las mutaciones que tocan cantidad o
// volumen corren en transacción, ajustan la capacidad de la bodega y quedan
// registradas en el ledger (RECEIVE en alta con stock inicial, UPDATE en
// ediciones de cantidad, DELETE en bajas).
type ItemAdminUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository // lecturas fuera de transacción
}

// NewItemAdminUseCase construye el caso de uso.
func NewItemAdminUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *ItemAdminUseCase {
	return &ItemAdminUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// Create da de alta un registro de item en una bodega. Si trae stock inicial,
// reserva la capacidad correspondiente y escribe una entrada RECEIVE.
func (uc *ItemAdminUseCase) Create(ctx context.Context, companyID, actorID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.SKU == "" || in.WarehouseID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.VolumePerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Item
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		warehouse, err := warehouseRepo.GetByIDForUpdate(in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		if warehouse.CompanyID != companyID {
			return domain.ErrForbidden
		}
		if !warehouse.Active {
			return &domain.InvalidOperationError{Reason: "bodega inactiva"}
		}
		existing, err := itemRepo.GetBySKU(in.SKU, warehouse.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}

		initialVolume := decimal.NewFromInt(in.InitialQuantity).Mul(in.VolumePerUnit)
		if err := domaininv.Reserve(warehouse, initialVolume); err != nil {
			return err
		}

		now := time.Now()
		item := &entity.Item{
			ID:            uuid.New().String(),
			CompanyID:     companyID,
			WarehouseID:   warehouse.ID,
			SKU:           in.SKU,
			Name:          in.Name,
			Category:      in.Category,
			Brand:         in.Brand,
			Barcode:       in.Barcode,
			Quantity:      in.InitialQuantity,
			VolumePerUnit: in.VolumePerUnit,
			Price:         in.Price,
			Cost:          in.Cost,
			ReorderLevel:  in.ReorderLevel,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := itemRepo.Create(item); err != nil {
			return fmt.Errorf("crear item: %w", err)
		}
		if err := warehouseRepo.UpdateCapacity(warehouse.ID, warehouse.CurrentCapacity); err != nil {
			return fmt.Errorf("actualizar capacidad: %w", err)
		}

		if in.InitialQuantity > 0 {
			entry := &entity.LedgerEntry{
				ID:                     uuid.New().String(),
				CompanyID:              companyID,
				ItemID:                 item.ID,
				SKU:                    item.SKU,
				Kind:                   entity.LedgerKindRECEIVE,
				QuantityChange:         in.InitialQuantity,
				PreviousQuantity:       0,
				NewQuantity:            in.InitialQuantity,
				DestinationWarehouseID: &warehouse.ID,
				ActorID:                actorID,
				Note:                   "stock inicial",
				CreatedAt:              now,
			}
			if err := ledgerRepo.Append(entry); err != nil {
				return fmt.Errorf("registrar stock inicial en ledger: %w", err)
			}
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(created), nil
}

// Update edita un item. Cambios de cantidad o de volumen unitario ajustan la
// capacidad de la bodega; un cambio directo de cantidad (no mediado por el motor
// de traslados) queda registrado como entrada UPDATE.
func (uc *ItemAdminUseCase) Update(ctx context.Context, companyID, actorID, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	var updated *entity.Item
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		ref, err := itemRepo.GetByID(itemID)
		if err != nil {
			return err
		}
		if ref == nil || !ref.Active {
			return domain.ErrNotFound
		}
		if ref.CompanyID != companyID {
			return domain.ErrForbidden
		}
		warehouse, err := warehouseRepo.GetByIDForUpdate(ref.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		item, err := itemRepo.GetBySKUForUpdate(ref.SKU, ref.WarehouseID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		previousQty := item.Quantity
		previousVolume := item.TotalVolume()

		if in.Name != nil {
			item.Name = *in.Name
		}
		if in.Category != nil {
			item.Category = *in.Category
		}
		if in.Brand != nil {
			item.Brand = *in.Brand
		}
		if in.Barcode != nil {
			item.Barcode = *in.Barcode
		}
		if in.Price != nil {
			item.Price = *in.Price
		}
		if in.Cost != nil {
			item.Cost = *in.Cost
		}
		if in.ReorderLevel != nil {
			item.ReorderLevel = in.ReorderLevel
		}
		if in.VolumePerUnit != nil {
			if in.VolumePerUnit.IsNegative() {
				return domain.ErrInvalidInput
			}
			item.VolumePerUnit = *in.VolumePerUnit
		}
		if in.Quantity != nil {
			if *in.Quantity < 0 {
				return domain.ErrInvalidInput
			}
			item.Quantity = *in.Quantity
		}

		// Ajuste de capacidad por la diferencia de volumen total del registro.
		volumeDiff := item.TotalVolume().Sub(previousVolume)
		if volumeDiff.IsPositive() {
			if err := domaininv.Reserve(warehouse, volumeDiff); err != nil {
				return err
			}
		} else if volumeDiff.IsNegative() {
			domaininv.Release(warehouse, volumeDiff.Neg())
		}

		item.UpdatedAt = time.Now()
		if err := itemRepo.Update(item); err != nil {
			return fmt.Errorf("actualizar item: %w", err)
		}
		if err := warehouseRepo.UpdateCapacity(warehouse.ID, warehouse.CurrentCapacity); err != nil {
			return fmt.Errorf("actualizar capacidad: %w", err)
		}

		if item.Quantity != previousQty {
			entry := &entity.LedgerEntry{
				ID:               uuid.New().String(),
				CompanyID:        companyID,
				ItemID:           item.ID,
				SKU:              item.SKU,
				Kind:             entity.LedgerKindUPDATE,
				QuantityChange:   item.Quantity - previousQty,
				PreviousQuantity: previousQty,
				NewQuantity:      item.Quantity,
				ActorID:          actorID,
				Note:             in.Note,
				CreatedAt:        item.UpdatedAt,
			}
			if err := ledgerRepo.Append(entry); err != nil {
				return fmt.Errorf("registrar edición en ledger: %w", err)
			}
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// Delete baja lógica de un item: libera su volumen en la bodega y deja una
// entrada DELETE con el SKU desnormalizado, de modo que el histórico sobrevive.
func (uc *ItemAdminUseCase) Delete(ctx context.Context, companyID, actorID, itemID string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		warehouseRepo repository.WarehouseRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		ref, err := itemRepo.GetByID(itemID)
		if err != nil {
			return err
		}
		if ref == nil || !ref.Active {
			return domain.ErrNotFound
		}
		if ref.CompanyID != companyID {
			return domain.ErrForbidden
		}
		warehouse, err := warehouseRepo.GetByIDForUpdate(ref.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		item, err := itemRepo.GetBySKUForUpdate(ref.SKU, ref.WarehouseID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		domaininv.Release(warehouse, item.TotalVolume())
		if err := itemRepo.Deactivate(item.ID); err != nil {
			return fmt.Errorf("dar de baja item: %w", err)
		}
		if err := warehouseRepo.UpdateCapacity(warehouse.ID, warehouse.CurrentCapacity); err != nil {
			return fmt.Errorf("actualizar capacidad: %w", err)
		}

		entry := &entity.LedgerEntry{
			ID:               uuid.New().String(),
			CompanyID:        companyID,
			ItemID:           item.ID,
			SKU:              item.SKU,
			Kind:             entity.LedgerKindDELETE,
			QuantityChange:   -item.Quantity,
			PreviousQuantity: item.Quantity,
			NewQuantity:      0,
			ActorID:          actorID,
			CreatedAt:        time.Now(),
		}
		if err := ledgerRepo.Append(entry); err != nil {
			return fmt.Errorf("registrar baja en ledger: %w", err)
		}
		return nil
	})
}

// GetByID obtiene un item por ID (lectura, sin transacción).
func (uc *ItemAdminUseCase) GetByID(companyID, itemID string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Active {
		return nil, domain.ErrNotFound
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toItemResponse(item), nil
}

// ListByWarehouse lista items activos de una bodega con paginación.
func (uc *ItemAdminUseCase) ListByWarehouse(companyID, warehouseID string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		if it.CompanyID != companyID {
			continue
		}
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:            i.ID,
		WarehouseID:   i.WarehouseID,
		SKU:           i.SKU,
		Name:          i.Name,
		Category:      i.Category,
		Brand:         i.Brand,
		Barcode:       i.Barcode,
		Quantity:      i.Quantity,
		VolumePerUnit: i.VolumePerUnit,
		Price:         i.Price,
		Cost:          i.Cost,
		ReorderLevel:  i.ReorderLevel,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}
