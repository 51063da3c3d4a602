package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `item_id, warehouse_id, item_name, quantity, created_at, updated_at`

// Get obtiene un ítem por id; (nil, nil) si no existe.
func (r *StockItemRepo) Get(ctx context.Context, itemID uint64) (*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items WHERE item_id = $1`
	it, err := scanStockItem(r.q.QueryRow(ctx, query, int64(itemID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Upsert inserta o reemplaza un ítem.
func (r *StockItemRepo) Upsert(ctx context.Context, item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (item_id, warehouse_id, item_name, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (item_id)
		DO UPDATE SET warehouse_id = EXCLUDED.warehouse_id, item_name = EXCLUDED.item_name,
		              quantity = EXCLUDED.quantity, created_at = EXCLUDED.created_at,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		int64(item.ItemID), int64(item.WarehouseID), item.ItemName,
		int64(item.Quantity), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// Remove elimina un ítem por id. Eliminar un ítem ausente no es error.
func (r *StockItemRepo) Remove(ctx context.Context, itemID uint64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_items WHERE item_id = $1`, int64(itemID))
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// List devuelve todas las existencias en orden ascendente por item_id.
func (r *StockItemRepo) List(ctx context.Context) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items ORDER BY item_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return collectStockItems(rows)
}

// ListByWarehouse devuelve las existencias de una bodega en orden ascendente por item_id.
func (r *StockItemRepo) ListByWarehouse(ctx context.Context, warehouseID uint64) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + stockItemColumns + `
		FROM stock_items WHERE warehouse_id = $1 ORDER BY item_id`
	rows, err := r.q.Query(ctx, query, int64(warehouseID))
	if err != nil {
		return nil, fmt.Errorf("list items por bodega: %w", err)
	}
	defer rows.Close()
	return collectStockItems(rows)
}

// scanStockItem arma la entidad desde una fila con las columnas de stockItemColumns.
func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var (
		it    entity.StockItem
		id64  int64
		wh64  int64
		qty64 int64
	)
	if err := row.Scan(&id64, &wh64, &it.ItemName, &qty64, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	it.ItemID = uint64(id64)
	it.WarehouseID = uint64(wh64)
	it.Quantity = uint64(qty64)
	return &it, nil
}

func collectStockItems(rows pgx.Rows) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for rows.Next() {
		it, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
