package dto

import "time"

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// WarehouseWithStockResponse bodega junto con sus existencias actuales.
type WarehouseWithStockResponse struct {
	Warehouse WarehouseResponse   `json:"warehouse"`
	Stock     []StockItemResponse `json:"stock"`
}

// WarehouseListResponse listado de bodegas con stock, en orden ascendente por id.
type WarehouseListResponse struct {
	Items []WarehouseWithStockResponse `json:"items"`
	Total int                          `json:"total"`
}
