package repository

import (
	"context"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
// Get devuelve (nil, nil) cuando el ítem no existe.
type StockItemRepository interface {
	Get(ctx context.Context, itemID uint64) (*entity.StockItem, error)
	Upsert(ctx context.Context, item *entity.StockItem) error
	Remove(ctx context.Context, itemID uint64) error
	// List devuelve todas las existencias en orden ascendente por item_id.
	List(ctx context.Context) ([]*entity.StockItem, error)
	// ListByWarehouse devuelve las existencias de una bodega en orden
	// ascendente por item_id. Una bodega desconocida produce lista vacía.
	ListByWarehouse(ctx context.Context, warehouseID uint64) ([]*entity.StockItem, error)
}
