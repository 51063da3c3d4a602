package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/idpool"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
	"github.com/jframirez/Bodegas-api/pkg/clock"
)

// Ledger es el motor de inventario: registra bodegas y existencias, asigna y
// recicla identificadores, y aplica las reglas de ciclo de vida (fusión al
// agregar, retiro parcial, eliminación en cascada, traslado entre bodegas).
//
// Un único mutex serializa todas las operaciones públicas, lecturas incluidas:
// ninguna llamada puede observar un estado a medio mutar, y una consulta
// posterior a una eliminación nunca ve existencias huérfanas. Toda validación
// ocurre antes de la primera escritura, así una llamada que falla es un no-op.
type Ledger struct {
	mu sync.Mutex

	txRunner   TxRunner
	warehouses repository.WarehouseRepository
	items      repository.StockItemRepository
	movements  repository.MovementRepository

	warehouseIDs *idpool.Pool
	itemIDs      *idpool.Pool

	clk clock.Clock
}

// NewLedger construye el motor y reconstruye los pools de identificadores a
// partir de las claves vivas del almacén, de modo que tras un reinicio la
// asignación continúa exactamente donde quedó (los huecos vuelven a ser
// reciclables y el contador retoma max+1).
func NewLedger(
	ctx context.Context,
	txRunner TxRunner,
	warehouses repository.WarehouseRepository,
	items repository.StockItemRepository,
	movements repository.MovementRepository,
	clk clock.Clock,
) (*Ledger, error) {
	l := &Ledger{
		txRunner:     txRunner,
		warehouses:   warehouses,
		items:        items,
		movements:    movements,
		warehouseIDs: idpool.New(),
		itemIDs:      idpool.New(),
		clk:          clk,
	}

	whs, err := warehouses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar bodegas para reconstruir pool: %w", err)
	}
	whIDs := make([]uint64, 0, len(whs))
	for _, w := range whs {
		whIDs = append(whIDs, w.ID)
	}
	l.warehouseIDs.Rebuild(whIDs)

	its, err := items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar existencias para reconstruir pool: %w", err)
	}
	itIDs := make([]uint64, 0, len(its))
	for _, it := range its {
		itIDs = append(itIDs, it.ItemID)
	}
	l.itemIDs.Rebuild(itIDs)

	return l, nil
}

// WarehouseWithStock una bodega junto con sus existencias actuales.
type WarehouseWithStock struct {
	Warehouse *entity.Warehouse
	Items     []*entity.StockItem
}

// TransferInput parámetros de un traslado entre bodegas.
type TransferInput struct {
	ItemID          uint64
	FromWarehouseID uint64
	ToWarehouseID   uint64
	Quantity        uint64
}

// TransferResult estado final de ambos lados de un traslado. Source llega con
// Quantity 0 cuando el traslado agotó el registro de origen (ya eliminado).
type TransferResult struct {
	TransactionID string
	Source        *entity.StockItem
	Destination   *entity.StockItem
}

// SummaryReport totales globales y por bodega.
type SummaryReport struct {
	WarehouseCount int
	ItemCount      int
	TotalUnits     uint64
	Warehouses     []WarehouseTotals
}

// WarehouseTotals rollup de una bodega dentro del resumen.
type WarehouseTotals struct {
	WarehouseID uint64
	Name        string
	ItemCount   int
	TotalUnits  uint64
}

// newMovement arma un registro del diario para la operación txID.
func newMovement(txID string, movType string, itemID, warehouseID uint64, itemName string, quantity int64, now time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		ItemID:        itemID,
		WarehouseID:   warehouseID,
		ItemName:      itemName,
		Type:          movType,
		Quantity:      quantity,
		OccurredAt:    now,
		CreatedAt:     now,
	}
}

// findByName busca el ítem vivo con ese nombre dentro de una lista de
// existencias de una bodega. La regla de fusión garantiza a lo sumo uno.
func findByName(items []*entity.StockItem, name string) *entity.StockItem {
	for _, it := range items {
		if it.ItemName == name {
			return it
		}
	}
	return nil
}
