package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const ledgerColumns = `id, company_id, item_id, sku, kind, quantity_change,
		previous_quantity, new_quantity, source_warehouse_id, destination_warehouse_id,
		actor_id, note, created_at`

// LedgerRepo implementación del ledger append-only sobre PostgreSQL (usable con
// pool o tx). La tabla no tiene UPDATE ni DELETE: Append es la única escritura.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append inserta una entrada. Las filas son inmutables una vez escritas.
func (r *LedgerRepo) Append(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO stock_ledger (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CompanyID, entry.ItemID, entry.SKU, entry.Kind,
		entry.QuantityChange, entry.PreviousQuantity, entry.NewQuantity,
		entry.SourceWarehouseID, entry.DestinationWarehouseID,
		entry.ActorID, entry.Note, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger WHERE id = $1`
	var e entity.LedgerEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.CompanyID, &e.ItemID, &e.SKU, &e.Kind, &e.QuantityChange,
		&e.PreviousQuantity, &e.NewQuantity, &e.SourceWarehouseID,
		&e.DestinationWarehouseID, &e.ActorID, &e.Note, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return &e, nil
}

// List consulta entradas de una empresa con filtros opcionales, de la más
// reciente a la más antigua. WarehouseID matchea origen o destino.
func (r *LedgerRepo) List(companyID string, filter repository.LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM stock_ledger WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.SKU != "" {
		query += fmt.Sprintf(" AND sku = $%d", pos)
		args = append(args, filter.SKU)
		pos++
	}
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND (source_warehouse_id = $%d OR destination_warehouse_id = $%d)", pos, pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.ActorID != "" {
		query += fmt.Sprintf(" AND actor_id = $%d", pos)
		args = append(args, filter.ActorID)
		pos++
	}
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, filter.Kind)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.ItemID, &e.SKU, &e.Kind,
			&e.QuantityChange, &e.PreviousQuantity, &e.NewQuantity, &e.SourceWarehouseID,
			&e.DestinationWarehouseID, &e.ActorID, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
