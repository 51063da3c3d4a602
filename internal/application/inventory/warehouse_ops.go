package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jframirez/Bodegas-api/internal/domain"
	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

// GetWarehouse devuelve una bodega por id. Solo lectura.
func (l *Ledger) GetWarehouse(ctx context.Context, id uint64) (*entity.Warehouse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	wh, err := l.warehouses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, fmt.Errorf("bodega id=%d no encontrada: %w", id, domain.ErrNotFound)
	}
	return wh, nil
}

// CreateWarehouse registra una bodega nueva. El nombre se recorta y no puede
// quedar vacío. El id sale del pool de bodegas (menor reciclado primero).
func (l *Ledger) CreateWarehouse(ctx context.Context, name string) (*entity.Warehouse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("nombre de bodega vacío: %w", domain.ErrInvalidInput)
	}

	id := l.warehouseIDs.Allocate()
	wh := &entity.Warehouse{
		ID:        id,
		Name:      name,
		CreatedAt: l.clk.Now(),
	}

	err := l.txRunner.Run(ctx, func(
		warehouseRepo repository.WarehouseRepository,
		_ repository.StockItemRepository,
		_ repository.MovementRepository,
	) error {
		return warehouseRepo.Upsert(ctx, wh)
	})
	if err != nil {
		// El id asignado nunca llegó a estar vivo: vuelve al pool como hueco.
		l.warehouseIDs.Release(id)
		return nil, err
	}
	return wh, nil
}

// DeleteWarehouse elimina una bodega y, en cascada, todas sus existencias
// dentro de una misma transacción. Devuelve la bodega eliminada. Los ids
// (bodega e ítems) se liberan después del commit; el diario recibe una salida
// por cada ítem arrastrado, todas con el mismo TransactionID.
func (l *Ledger) DeleteWarehouse(ctx context.Context, id uint64) (*entity.Warehouse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	wh, err := l.warehouses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, fmt.Errorf("bodega id=%d no encontrada: %w", id, domain.ErrNotFound)
	}

	victims, err := l.items.ListByWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}

	now := l.clk.Now()
	txID := uuid.New().String()

	err = l.txRunner.Run(ctx, func(
		warehouseRepo repository.WarehouseRepository,
		itemRepo repository.StockItemRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := warehouseRepo.Remove(ctx, id); err != nil {
			return err
		}
		for _, v := range victims {
			if err := itemRepo.Remove(ctx, v.ItemID); err != nil {
				return err
			}
			mov := newMovement(txID, entity.MovementTypeOUT, v.ItemID, id, v.ItemName, -int64(v.Quantity), now)
			if err := movementRepo.Append(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.warehouseIDs.Release(id)
	for _, v := range victims {
		l.itemIDs.Release(v.ItemID)
	}
	return wh, nil
}

// ListWarehousesWithStock devuelve todas las bodegas en orden ascendente por
// id, cada una con sus existencias actuales (misma foto del ledger).
func (l *Ledger) ListWarehousesWithStock(ctx context.Context) ([]WarehouseWithStock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	whs, err := l.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]WarehouseWithStock, 0, len(whs))
	for _, wh := range whs {
		its, err := l.items.ListByWarehouse(ctx, wh.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, WarehouseWithStock{Warehouse: wh, Items: its})
	}
	return out, nil
}
