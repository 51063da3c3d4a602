package dto

import "time"

// MovementResponse registro del diario de movimientos.
type MovementResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	ItemID        uint64    `json:"item_id"`
	WarehouseID   uint64    `json:"warehouse_id"`
	ItemName      string    `json:"item_name"`
	Type          string    `json:"type"`     // IN, OUT, TRANSFER
	Quantity      int64     `json:"quantity"` // negativa para salidas
	OccurredAt    time.Time `json:"occurred_at"`
}

// MovementListResponse página del diario de una bodega, del más reciente al más antiguo.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
