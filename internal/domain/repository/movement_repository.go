package repository

import (
	"context"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
)

// MovementRepository define el puerto del diario de movimientos (append-only).
type MovementRepository interface {
	Append(ctx context.Context, mov *entity.StockMovement) error
	// ListByWarehouse devuelve una página del diario de la bodega, del
	// movimiento más reciente al más antiguo. El diario conserva la historia
	// de bodegas ya eliminadas.
	ListByWarehouse(ctx context.Context, warehouseID uint64, limit, offset int) ([]*entity.StockMovement, error)
}
