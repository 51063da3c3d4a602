package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jframirez/Bodegas-api/internal/domain"
	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

// TransferItem traslada unidades de un ítem entre bodegas. Validaciones, en
// orden y todas antes de la primera escritura:
//
//  1. cantidad cero es entrada inválida
//  2. el ítem debe existir
//  3. el ítem debe estar en la bodega de origen declarada
//  4. la bodega destino debe existir (un traslado nunca crea stock huérfano)
//  5. la cantidad no puede exceder lo disponible
//
// El lado origen sigue la regla del retiro: si queda en cero, el registro se
// elimina y su id vuelve al pool. El lado destino sigue la regla de fusión: si
// hay un ítem vivo con el mismo nombre en la bodega destino, se suma sobre él;
// si no, se crea un registro con id nuevo. Un traslado a la misma bodega es
// válido y degenera en refrescar updated_at del propio registro. El diario
// recibe dos registros TRANSFER con el mismo TransactionID: la salida del
// origen y la entrada al destino.
func (l *Ledger) TransferItem(ctx context.Context, in TransferInput) (*TransferResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if in.Quantity == 0 {
		return nil, fmt.Errorf("cantidad debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}

	item, err := l.items.Get(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("ítem id=%d no encontrado: %w", in.ItemID, domain.ErrNotFound)
	}
	if item.WarehouseID != in.FromWarehouseID {
		return nil, fmt.Errorf("ítem id=%d no pertenece a la bodega id=%d: %w",
			in.ItemID, in.FromWarehouseID, domain.ErrNotFound)
	}

	destWh, err := l.warehouses.Get(ctx, in.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if destWh == nil {
		return nil, fmt.Errorf("bodega destino id=%d no encontrada: %w", in.ToWarehouseID, domain.ErrNotFound)
	}

	if item.Quantity < in.Quantity {
		return nil, fmt.Errorf("ítem id=%d: disponible=%d, solicitado=%d: %w",
			in.ItemID, item.Quantity, in.Quantity, domain.ErrInsufficientStock)
	}

	destSiblings, err := l.items.ListByWarehouse(ctx, in.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	mergeTarget := findByName(destSiblings, item.ItemName)

	now := l.clk.Now()
	txID := uuid.New().String()

	outMov := newMovement(txID, entity.MovementTypeTRANSFER, item.ItemID, in.FromWarehouseID, item.ItemName, -int64(in.Quantity), now)

	// Traslado a la misma bodega: el destino de la fusión es el propio
	// registro de origen, la cantidad neta no cambia.
	if mergeTarget != nil && mergeTarget.ItemID == item.ItemID {
		touched := *item
		touched.UpdatedAt = &now
		inMov := newMovement(txID, entity.MovementTypeTRANSFER, touched.ItemID, in.ToWarehouseID, item.ItemName, int64(in.Quantity), now)

		err := l.txRunner.Run(ctx, func(
			_ repository.WarehouseRepository,
			itemRepo repository.StockItemRepository,
			movementRepo repository.MovementRepository,
		) error {
			if err := itemRepo.Upsert(ctx, &touched); err != nil {
				return err
			}
			if err := movementRepo.Append(ctx, outMov); err != nil {
				return err
			}
			return movementRepo.Append(ctx, inMov)
		})
		if err != nil {
			return nil, err
		}
		return &TransferResult{TransactionID: txID, Source: &touched, Destination: &touched}, nil
	}

	remaining := item.Quantity - in.Quantity
	sourceDrained := remaining == 0

	// Estado final del lado origen.
	source := *item
	source.UpdatedAt = &now
	if sourceDrained {
		source.Quantity = 0
	} else {
		source.Quantity = remaining
	}

	// Estado final del lado destino: fusión sobre el existente o registro nuevo.
	var (
		dest      entity.StockItem
		allocated uint64 // id recién asignado; 0 si hubo fusión
	)
	if mergeTarget != nil {
		dest = *mergeTarget
		dest.Quantity += in.Quantity
		dest.UpdatedAt = &now
	} else {
		allocated = l.itemIDs.Allocate()
		dest = entity.StockItem{
			ItemID:      allocated,
			WarehouseID: in.ToWarehouseID,
			ItemName:    item.ItemName,
			Quantity:    in.Quantity,
			CreatedAt:   now,
		}
	}
	inMov := newMovement(txID, entity.MovementTypeTRANSFER, dest.ItemID, in.ToWarehouseID, item.ItemName, int64(in.Quantity), now)

	err = l.txRunner.Run(ctx, func(
		_ repository.WarehouseRepository,
		itemRepo repository.StockItemRepository,
		movementRepo repository.MovementRepository,
	) error {
		if sourceDrained {
			if err := itemRepo.Remove(ctx, item.ItemID); err != nil {
				return err
			}
		} else {
			if err := itemRepo.Upsert(ctx, &source); err != nil {
				return err
			}
		}
		if err := itemRepo.Upsert(ctx, &dest); err != nil {
			return err
		}
		if err := movementRepo.Append(ctx, outMov); err != nil {
			return err
		}
		return movementRepo.Append(ctx, inMov)
	})
	if err != nil {
		if allocated != 0 {
			// El id del destino nunca llegó a estar vivo.
			l.itemIDs.Release(allocated)
		}
		return nil, err
	}

	if sourceDrained {
		l.itemIDs.Release(item.ItemID)
	}
	return &TransferResult{TransactionID: txID, Source: &source, Destination: &dest}, nil
}
