// Package testutil provee repositorios en memoria y un TxRunner con rollback
// por snapshot para probar los casos de uso transaccionales sin PostgreSQL.
// El contrato emulado es el mismo de la implementación real: si fn falla, no
// queda ninguna mutación parcial.
package testutil

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// MemState estado compartido de los repos en memoria.
type MemState struct {
	Items      map[string]*entity.Item      // por ID
	Warehouses map[string]*entity.Warehouse // por ID
	Ledger     []*entity.LedgerEntry
}

// NewMemState crea un estado vacío.
func NewMemState() *MemState {
	return &MemState{
		Items:      map[string]*entity.Item{},
		Warehouses: map[string]*entity.Warehouse{},
	}
}

func (s *MemState) clone() *MemState {
	c := NewMemState()
	for id, it := range s.Items {
		cp := *it
		c.Items[id] = &cp
	}
	for id, w := range s.Warehouses {
		cp := *w
		c.Warehouses[id] = &cp
	}
	c.Ledger = append([]*entity.LedgerEntry(nil), s.Ledger...)
	return c
}

// MemTxRunner emula el Commit/Rollback restaurando un snapshot cuando fn falla.
type MemTxRunner struct {
	State *MemState
	// AppendErr simula una falla de almacenamiento al escribir el ledger.
	AppendErr error
	// Runs cuenta las transacciones abiertas.
	Runs int
}

// Run ejecuta fn con repos atados al estado; restaura el snapshot si fn falla.
func (r *MemTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	r.Runs++
	snapshot := r.State.clone()
	err := fn(
		&MemItemRepo{State: r.State},
		&MemWarehouseRepo{State: r.State},
		&MemLedgerRepo{State: r.State, AppendErr: r.AppendErr},
	)
	if err != nil {
		*r.State = *snapshot
		return err
	}
	return nil
}

// MemItemRepo implementación en memoria de repository.ItemRepository.
type MemItemRepo struct{ State *MemState }

func (r *MemItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.State.Items[item.ID] = &cp
	return nil
}

func (r *MemItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.State.Items[id]
	if !ok {
		return nil, nil
	}
	return it, nil
}

func (r *MemItemRepo) GetBySKU(sku, warehouseID string) (*entity.Item, error) {
	for _, it := range r.State.Items {
		if it.SKU == sku && it.WarehouseID == warehouseID && it.Active {
			return it, nil
		}
	}
	return nil, nil
}

func (r *MemItemRepo) GetBySKUForUpdate(sku, warehouseID string) (*entity.Item, error) {
	return r.GetBySKU(sku, warehouseID)
}

func (r *MemItemRepo) Update(item *entity.Item) error {
	cp := *item
	r.State.Items[item.ID] = &cp
	return nil
}

func (r *MemItemRepo) UpdateQuantity(id string, quantity int64) error {
	if it, ok := r.State.Items[id]; ok {
		it.Quantity = quantity
	}
	return nil
}

func (r *MemItemRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Item, error) {
	all, _ := r.ListActiveByWarehouse(warehouseID)
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *MemItemRepo) ListActiveByWarehouse(warehouseID string) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range r.State.Items {
		if it.WarehouseID == warehouseID && it.Active {
			list = append(list, it)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return list, nil
}

func (r *MemItemRepo) Deactivate(id string) error {
	if it, ok := r.State.Items[id]; ok {
		it.Active = false
	}
	return nil
}

// MemWarehouseRepo implementación en memoria de repository.WarehouseRepository.
type MemWarehouseRepo struct{ State *MemState }

func (r *MemWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.State.Warehouses[w.ID] = &cp
	return nil
}

func (r *MemWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.State.Warehouses[id]
	if !ok {
		return nil, nil
	}
	return w, nil
}

func (r *MemWarehouseRepo) GetByIDForUpdate(id string) (*entity.Warehouse, error) {
	return r.GetByID(id)
}

func (r *MemWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	r.State.Warehouses[w.ID] = &cp
	return nil
}

func (r *MemWarehouseRepo) UpdateCapacity(id string, currentCapacity decimal.Decimal) error {
	if w, ok := r.State.Warehouses[id]; ok {
		w.CurrentCapacity = currentCapacity
	}
	return nil
}

func (r *MemWarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for _, w := range r.State.Warehouses {
		if w.CompanyID == companyID {
			list = append(list, w)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if offset >= len(list) {
		return nil, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func (r *MemWarehouseRepo) Deactivate(id string) error {
	if w, ok := r.State.Warehouses[id]; ok {
		w.Active = false
	}
	return nil
}

// MemLedgerRepo implementación en memoria de repository.LedgerRepository.
type MemLedgerRepo struct {
	State     *MemState
	AppendErr error
}

func (r *MemLedgerRepo) Append(entry *entity.LedgerEntry) error {
	if r.AppendErr != nil {
		return r.AppendErr
	}
	cp := *entry
	r.State.Ledger = append(r.State.Ledger, &cp)
	return nil
}

func (r *MemLedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	for _, e := range r.State.Ledger {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *MemLedgerRepo) List(companyID string, filter repository.LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error) {
	var list []*entity.LedgerEntry
	for _, e := range r.State.Ledger {
		if e.CompanyID != companyID {
			continue
		}
		if filter.ItemID != "" && e.ItemID != filter.ItemID {
			continue
		}
		if filter.SKU != "" && e.SKU != filter.SKU {
			continue
		}
		if filter.ActorID != "" && e.ActorID != filter.ActorID {
			continue
		}
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		if filter.WarehouseID != "" {
			src := e.SourceWarehouseID != nil && *e.SourceWarehouseID == filter.WarehouseID
			dst := e.DestinationWarehouseID != nil && *e.DestinationWarehouseID == filter.WarehouseID
			if !src && !dst {
				continue
			}
		}
		if filter.From != nil && e.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.CreatedAt.After(*filter.To) {
			continue
		}
		list = append(list, e)
	}
	if offset >= len(list) {
		return nil, nil
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end], nil
}
