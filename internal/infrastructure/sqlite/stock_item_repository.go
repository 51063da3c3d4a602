package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre SQLite.
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de existencias.
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `item_id, warehouse_id, item_name, quantity, created_at, updated_at`

// Get obtiene un ítem por id; (nil, nil) si no existe.
func (r *StockItemRepo) Get(ctx context.Context, itemID uint64) (*entity.StockItem, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+stockItemColumns+` FROM stock_items WHERE item_id = ?`, int64(itemID))
	it, err := scanStockItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Upsert inserta o reemplaza un ítem.
func (r *StockItemRepo) Upsert(ctx context.Context, item *entity.StockItem) error {
	var updatedAt sql.NullTime
	if item.UpdatedAt != nil {
		updatedAt = sql.NullTime{Time: *item.UpdatedAt, Valid: true}
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO stock_items (item_id, warehouse_id, item_name, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (item_id)
		DO UPDATE SET warehouse_id = excluded.warehouse_id, item_name = excluded.item_name,
		              quantity = excluded.quantity, created_at = excluded.created_at,
		              updated_at = excluded.updated_at`,
		int64(item.ItemID), int64(item.WarehouseID), item.ItemName,
		int64(item.Quantity), item.CreatedAt, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// Remove elimina un ítem por id. Eliminar un ítem ausente no es error.
func (r *StockItemRepo) Remove(ctx context.Context, itemID uint64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM stock_items WHERE item_id = ?`, int64(itemID))
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// List devuelve todas las existencias en orden ascendente por item_id.
func (r *StockItemRepo) List(ctx context.Context) ([]*entity.StockItem, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+stockItemColumns+` FROM stock_items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return collectStockItems(rows)
}

// ListByWarehouse devuelve las existencias de una bodega en orden ascendente por item_id.
func (r *StockItemRepo) ListByWarehouse(ctx context.Context, warehouseID uint64) ([]*entity.StockItem, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+stockItemColumns+` FROM stock_items WHERE warehouse_id = ? ORDER BY item_id`,
		int64(warehouseID))
	if err != nil {
		return nil, fmt.Errorf("list items por bodega: %w", err)
	}
	defer rows.Close()
	return collectStockItems(rows)
}

// scanStockItem arma la entidad desde una fila con las columnas de stockItemColumns.
func scanStockItem(scan func(dest ...any) error) (*entity.StockItem, error) {
	var (
		it        entity.StockItem
		id64      int64
		wh64      int64
		qty64     int64
		updatedAt sql.NullTime
	)
	if err := scan(&id64, &wh64, &it.ItemName, &qty64, &it.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	it.ItemID = uint64(id64)
	it.WarehouseID = uint64(wh64)
	it.Quantity = uint64(qty64)
	if updatedAt.Valid {
		t := updatedAt.Time
		it.UpdatedAt = &t
	}
	return &it, nil
}

func collectStockItems(rows *sql.Rows) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for rows.Next() {
		it, err := scanStockItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
