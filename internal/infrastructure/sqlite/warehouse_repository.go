package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre SQLite.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Get obtiene una bodega por id; (nil, nil) si no existe.
func (r *WarehouseRepo) Get(ctx context.Context, id uint64) (*entity.Warehouse, error) {
	var (
		wh   entity.Warehouse
		id64 int64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM warehouses WHERE id = ?`, int64(id),
	).Scan(&id64, &wh.Name, &wh.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bodega: %w", err)
	}
	wh.ID = uint64(id64)
	return &wh, nil
}

// Upsert inserta o reemplaza una bodega.
func (r *WarehouseRepo) Upsert(ctx context.Context, wh *entity.Warehouse) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO warehouses (id, name, created_at) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, created_at = excluded.created_at`,
		int64(wh.ID), wh.Name, wh.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert bodega: %w", err)
	}
	return nil
}

// Remove elimina una bodega por id. Eliminar una bodega ausente no es error.
func (r *WarehouseRepo) Remove(ctx context.Context, id uint64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM warehouses WHERE id = ?`, int64(id))
	if err != nil {
		return fmt.Errorf("delete bodega: %w", err)
	}
	return nil
}

// List devuelve todas las bodegas en orden ascendente por id.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, created_at FROM warehouses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list bodegas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warehouse
	for rows.Next() {
		var (
			wh   entity.Warehouse
			id64 int64
		)
		if err := rows.Scan(&id64, &wh.Name, &wh.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bodega: %w", err)
		}
		wh.ID = uint64(id64)
		list = append(list, &wh)
	}
	return list, rows.Err()
}
