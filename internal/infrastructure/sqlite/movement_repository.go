package sqlite

import (
	"context"
	"fmt"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre SQLite.
// El diario es de solo inserción: nunca se actualizan ni eliminan filas.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del diario de movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Append registra un movimiento en el diario.
func (r *MovementRepo) Append(ctx context.Context, mov *entity.StockMovement) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO stock_movements (id, transaction_id, item_id, warehouse_id, item_name, type, quantity, occurred_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mov.ID, mov.TransactionID, int64(mov.ItemID), int64(mov.WarehouseID),
		mov.ItemName, mov.Type, mov.Quantity, mov.OccurredAt, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append movimiento: %w", err)
	}
	return nil
}

// ListByWarehouse devuelve los movimientos de una bodega, el más reciente primero.
func (r *MovementRepo) ListByWarehouse(ctx context.Context, warehouseID uint64, limit, offset int) ([]*entity.StockMovement, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, transaction_id, item_id, warehouse_id, item_name, type, quantity, occurred_at, created_at
		FROM stock_movements
		WHERE warehouse_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`,
		int64(warehouseID), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var (
			mov  entity.StockMovement
			id64 int64
			wh64 int64
		)
		if err := rows.Scan(&mov.ID, &mov.TransactionID, &id64, &wh64,
			&mov.ItemName, &mov.Type, &mov.Quantity, &mov.OccurredAt, &mov.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		mov.ItemID = uint64(id64)
		mov.WarehouseID = uint64(wh64)
		list = append(list, &mov)
	}
	return list, rows.Err()
}
