package inventory

import (
	"context"

	"github.com/jframirez/Bodegas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa tx. Garantiza que las mutaciones de una operación
// del ledger se confirmen o se reviertan como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		warehouseRepo repository.WarehouseRepository,
		itemRepo repository.StockItemRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
