package entity

import "time"

// StockItem representa una existencia de inventario dentro de una bodega.
// Invariante: Quantity > 0 mientras el registro exista; un retiro que deja la
// cantidad en cero elimina el registro. UpdatedAt es nil hasta la primera
// modificación.
type StockItem struct {
	ItemID      uint64
	WarehouseID uint64
	ItemName    string
	Quantity    uint64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
