package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL
// (usable con pool o tx). Los ids uint64 del dominio se persisten como BIGINT:
// el pool los asigna desde 1, nunca alcanzan el rango alto.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de bodegas. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Get obtiene una bodega por id; (nil, nil) si no existe.
func (r *WarehouseRepo) Get(ctx context.Context, id uint64) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, created_at
		FROM warehouses WHERE id = $1`
	var (
		w    entity.Warehouse
		id64 int64
	)
	err := r.q.QueryRow(ctx, query, int64(id)).Scan(&id64, &w.Name, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bodega: %w", err)
	}
	w.ID = uint64(id64)
	return &w, nil
}

// Upsert inserta o reemplaza una bodega.
func (r *WarehouseRepo) Upsert(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, created_at = EXCLUDED.created_at`
	_, err := r.q.Exec(ctx, query, int64(warehouse.ID), warehouse.Name, warehouse.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert bodega: %w", err)
	}
	return nil
}

// Remove elimina una bodega por id. Eliminar una bodega ausente no es error.
func (r *WarehouseRepo) Remove(ctx context.Context, id uint64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete bodega: %w", err)
	}
	return nil
}

// List devuelve todas las bodegas en orden ascendente por id.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, name, created_at
		FROM warehouses ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bodegas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		var (
			w    entity.Warehouse
			id64 int64
		)
		if err := rows.Scan(&id64, &w.Name, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bodega: %w", err)
		}
		w.ID = uint64(id64)
		list = append(list, &w)
	}
	return list, rows.Err()
}
