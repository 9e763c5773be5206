package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, company_id, warehouse_id, sku, name, category, brand, barcode,
		quantity, volume_per_unit, price, cost, reorder_level, active, created_at, updated_at`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de items. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo registro de stock. La unicidad (sku, warehouse_id)
// la garantiza un índice único parcial sobre los registros activos.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CompanyID, item.WarehouseID, item.SKU, item.Name, item.Category,
		item.Brand, item.Barcode, item.Quantity, item.VolumePerUnit, item.Price,
		item.Cost, item.ReorderLevel, item.Active, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetBySKU obtiene el registro activo de un SKU en una bodega, o nil si no existe.
func (r *ItemRepo) GetBySKU(sku, warehouseID string) (*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE sku = $1 AND warehouse_id = $2 AND active = true`
	return r.scanOne(query, sku, warehouseID)
}

// GetBySKUForUpdate obtiene el registro activo del SKU y bloquea la fila
// (SELECT FOR UPDATE) para serializar mutaciones concurrentes de cantidad.
func (r *ItemRepo) GetBySKUForUpdate(sku, warehouseID string) (*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE sku = $1 AND warehouse_id = $2 AND active = true
		FOR UPDATE`
	return r.scanOne(query, sku, warehouseID)
}

func (r *ItemRepo) scanOne(query string, args ...any) (*entity.Item, error) {
	var i entity.Item
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&i.ID, &i.CompanyID, &i.WarehouseID, &i.SKU, &i.Name, &i.Category, &i.Brand,
		&i.Barcode, &i.Quantity, &i.VolumePerUnit, &i.Price, &i.Cost, &i.ReorderLevel,
		&i.Active, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Update actualiza un registro existente (datos descriptivos y de volumen).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, category = $3, brand = $4, barcode = $5, quantity = $6,
		    volume_per_unit = $7, price = $8, cost = $9, reorder_level = $10,
		    active = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Brand, item.Barcode, item.Quantity,
		item.VolumePerUnit, item.Price, item.Cost, item.ReorderLevel, item.Active,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// UpdateQuantity persiste solo la cantidad (mutación del motor de traslados).
func (r *ItemRepo) UpdateQuantity(id string, quantity int64) error {
	query := `UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// ListByWarehouse lista los items activos de una bodega con paginación.
func (r *ItemRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE warehouse_id = $1 AND active = true
		ORDER BY sku LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListActiveByWarehouse lista todos los items activos sin paginación; insumo de
// la reconciliación de capacidad.
func (r *ItemRepo) ListActiveByWarehouse(warehouseID string) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE warehouse_id = $1 AND active = true ORDER BY sku`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list active items: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

func (r *ItemRepo) scanList(rows pgx.Rows) ([]*entity.Item, error) {
	var list []*entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.CompanyID, &i.WarehouseID, &i.SKU, &i.Name,
			&i.Category, &i.Brand, &i.Barcode, &i.Quantity, &i.VolumePerUnit, &i.Price,
			&i.Cost, &i.ReorderLevel, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Deactivate baja lógica del registro. El SKU sobrevive en el ledger.
func (r *ItemRepo) Deactivate(id string) error {
	query := `UPDATE items SET active = false, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate item: %w", err)
	}
	return nil
}
