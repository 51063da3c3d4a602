package repository

import (
	"context"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Get devuelve (nil, nil) cuando la bodega no existe; el error NotFound lo
// decide la capa de aplicación.
type WarehouseRepository interface {
	Get(ctx context.Context, id uint64) (*entity.Warehouse, error)
	Upsert(ctx context.Context, warehouse *entity.Warehouse) error
	Remove(ctx context.Context, id uint64) error
	// List devuelve todas las bodegas en orden ascendente por id.
	List(ctx context.Context) ([]*entity.Warehouse, error)
}
