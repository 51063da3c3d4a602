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

// GetItem devuelve un ítem por id. Solo lectura.
func (l *Ledger) GetItem(ctx context.Context, itemID uint64) (*entity.StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("ítem id=%d no encontrado: %w", itemID, domain.ErrNotFound)
	}
	return item, nil
}

// ListByWarehouse devuelve las existencias de una bodega en orden ascendente
// por item_id. Una bodega desconocida produce lista vacía, no error.
func (l *Ledger) ListByWarehouse(ctx context.Context, warehouseID uint64) ([]*entity.StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.items.ListByWarehouse(ctx, warehouseID)
}

// AddItem agrega existencias a una bodega. Regla de fusión: si ya hay un ítem
// vivo con el mismo nombre en esa bodega, se suma la cantidad sobre ese
// registro (sin asignar id nuevo) y se estampa updated_at; si no, se crea un
// registro con id del pool de ítems. El diario recibe una entrada (IN).
func (l *Ledger) AddItem(ctx context.Context, warehouseID uint64, itemName string, quantity uint64) (*entity.StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, fmt.Errorf("nombre de ítem vacío: %w", domain.ErrInvalidInput)
	}
	if quantity == 0 {
		return nil, fmt.Errorf("cantidad debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}

	wh, err := l.warehouses.Get(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, fmt.Errorf("bodega id=%d no encontrada: %w", warehouseID, domain.ErrNotFound)
	}

	siblings, err := l.items.ListByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	now := l.clk.Now()
	txID := uuid.New().String()

	if existing := findByName(siblings, itemName); existing != nil {
		merged := *existing
		merged.Quantity += quantity
		merged.UpdatedAt = &now

		err := l.txRunner.Run(ctx, func(
			_ repository.WarehouseRepository,
			itemRepo repository.StockItemRepository,
			movementRepo repository.MovementRepository,
		) error {
			if err := itemRepo.Upsert(ctx, &merged); err != nil {
				return err
			}
			mov := newMovement(txID, entity.MovementTypeIN, merged.ItemID, warehouseID, itemName, int64(quantity), now)
			return movementRepo.Append(ctx, mov)
		})
		if err != nil {
			return nil, err
		}
		return &merged, nil
	}

	id := l.itemIDs.Allocate()
	item := &entity.StockItem{
		ItemID:      id,
		WarehouseID: warehouseID,
		ItemName:    itemName,
		Quantity:    quantity,
		CreatedAt:   now,
	}

	err = l.txRunner.Run(ctx, func(
		_ repository.WarehouseRepository,
		itemRepo repository.StockItemRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := itemRepo.Upsert(ctx, item); err != nil {
			return err
		}
		mov := newMovement(txID, entity.MovementTypeIN, id, warehouseID, itemName, int64(quantity), now)
		return movementRepo.Append(ctx, mov)
	})
	if err != nil {
		l.itemIDs.Release(id)
		return nil, err
	}
	return item, nil
}

// DecrementItem retira unidades de un ítem. Si el retiro deja la cantidad en
// cero el registro se elimina y su id vuelve al pool; el estado devuelto trae
// Quantity 0 para que el caller observe el desenlace. Retirar más de lo
// disponible falla sin tocar el registro. Un retiro de cero unidades solo
// refresca updated_at y no genera movimiento en el diario.
func (l *Ledger) DecrementItem(ctx context.Context, itemID uint64, quantity uint64) (*entity.StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.items.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("ítem id=%d no encontrado: %w", itemID, domain.ErrNotFound)
	}
	if quantity > item.Quantity {
		return nil, fmt.Errorf("ítem id=%d: disponible=%d, solicitado=%d: %w",
			itemID, item.Quantity, quantity, domain.ErrInsufficientStock)
	}

	now := l.clk.Now()

	if quantity == 0 {
		touched := *item
		touched.UpdatedAt = &now
		err := l.txRunner.Run(ctx, func(
			_ repository.WarehouseRepository,
			itemRepo repository.StockItemRepository,
			_ repository.MovementRepository,
		) error {
			return itemRepo.Upsert(ctx, &touched)
		})
		if err != nil {
			return nil, err
		}
		return &touched, nil
	}

	txID := uuid.New().String()
	remaining := item.Quantity - quantity

	if remaining == 0 {
		removed := *item
		removed.Quantity = 0
		removed.UpdatedAt = &now

		err := l.txRunner.Run(ctx, func(
			_ repository.WarehouseRepository,
			itemRepo repository.StockItemRepository,
			movementRepo repository.MovementRepository,
		) error {
			if err := itemRepo.Remove(ctx, itemID); err != nil {
				return err
			}
			mov := newMovement(txID, entity.MovementTypeOUT, itemID, item.WarehouseID, item.ItemName, -int64(quantity), now)
			return movementRepo.Append(ctx, mov)
		})
		if err != nil {
			return nil, err
		}
		l.itemIDs.Release(itemID)
		return &removed, nil
	}

	updated := *item
	updated.Quantity = remaining
	updated.UpdatedAt = &now

	err = l.txRunner.Run(ctx, func(
		_ repository.WarehouseRepository,
		itemRepo repository.StockItemRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := itemRepo.Upsert(ctx, &updated); err != nil {
			return err
		}
		mov := newMovement(txID, entity.MovementTypeOUT, itemID, item.WarehouseID, item.ItemName, -int64(quantity), now)
		return movementRepo.Append(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
