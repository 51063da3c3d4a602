package inventory

import (
	"context"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
)

// ListMovements devuelve una página del diario de una bodega, del movimiento
// más reciente al más antiguo. El diario conserva la historia de bodegas ya
// eliminadas, por eso no se exige que la bodega exista.
func (l *Ledger) ListMovements(ctx context.Context, warehouseID uint64, limit, offset int) ([]*entity.StockMovement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.movements.ListByWarehouse(ctx, warehouseID, limit, offset)
}

// Summary calcula los totales globales y por bodega sobre una misma foto
// consistente del ledger (bodegas en orden ascendente por id).
func (l *Ledger) Summary(ctx context.Context) (*SummaryReport, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	whs, err := l.warehouses.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &SummaryReport{
		WarehouseCount: len(whs),
		Warehouses:     make([]WarehouseTotals, 0, len(whs)),
	}
	for _, wh := range whs {
		its, err := l.items.ListByWarehouse(ctx, wh.ID)
		if err != nil {
			return nil, err
		}
		totals := WarehouseTotals{
			WarehouseID: wh.ID,
			Name:        wh.Name,
			ItemCount:   len(its),
		}
		for _, it := range its {
			totals.TotalUnits += it.Quantity
		}
		report.ItemCount += totals.ItemCount
		report.TotalUnits += totals.TotalUnits
		report.Warehouses = append(report.Warehouses, totals)
	}
	return report, nil
}
