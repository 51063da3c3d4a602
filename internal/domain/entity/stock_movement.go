package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // entrada
	MovementTypeOUT      = "OUT"      // salida
	MovementTypeTRANSFER = "TRANSFER" // traslado entre bodegas
)

// StockMovement registro del diario de movimientos (append-only).
// Quantity es positiva para entradas y negativa para salidas; los registros
// generados por una misma operación comparten TransactionID (un traslado
// produce dos, una eliminación en cascada uno por ítem). El diario es solo
// auditoría, nunca participa en las validaciones del ledger.
type StockMovement struct {
	ID            string
	TransactionID string
	ItemID        uint64
	WarehouseID   uint64
	ItemName      string
	Type          string
	Quantity      int64
	OccurredAt    time.Time
	CreatedAt     time.Time
}
