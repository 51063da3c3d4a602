package dto

import "time"

// AddStockItemRequest body para POST /api/stock. Si ya existe un ítem vivo con
// el mismo nombre en la bodega, la cantidad se fusiona sobre ese registro.
type AddStockItemRequest struct {
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	ItemName    string `json:"item_name" validate:"required,min=1,max=200"`
	Quantity    uint64 `json:"quantity" validate:"required,gt=0"`
}

// DecrementStockRequest body para POST /api/stock/{id}/decrement.
type DecrementStockRequest struct {
	Quantity uint64 `json:"quantity"`
}

// TransferStockRequest body para POST /api/stock/transfer.
type TransferStockRequest struct {
	ItemID          uint64 `json:"item_id"`
	FromWarehouseID uint64 `json:"from_warehouse_id"`
	ToWarehouseID   uint64 `json:"to_warehouse_id"`
	Quantity        uint64 `json:"quantity" validate:"gt=0"`
}

// StockItemResponse salida de un ítem de inventario. Quantity llega en 0 solo
// cuando la operación acaba de eliminar el registro (retiro total).
type StockItemResponse struct {
	ItemID      uint64     `json:"item_id"`
	WarehouseID uint64     `json:"warehouse_id"`
	ItemName    string     `json:"item_name"`
	Quantity    uint64     `json:"quantity"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// TransferResponse estado final de origen y destino tras un traslado.
type TransferResponse struct {
	TransactionID string            `json:"transaction_id"`
	Source        StockItemResponse `json:"source"`
	Destination   StockItemResponse `json:"destination"`
}
