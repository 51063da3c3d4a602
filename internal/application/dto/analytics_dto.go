package dto

// SummaryResponse resumen global del inventario para GET /api/analytics/summary,
// calculado sobre una misma foto consistente del ledger.
type SummaryResponse struct {
	WarehouseCount int                `json:"warehouse_count"`
	ItemCount      int                `json:"item_count"`
	TotalUnits     uint64             `json:"total_units"`
	Warehouses     []WarehouseSummary `json:"warehouses"`
}

// WarehouseSummary totales por bodega, en orden ascendente por id.
type WarehouseSummary struct {
	WarehouseID uint64 `json:"warehouse_id"`
	Name        string `json:"name"`
	ItemCount   int    `json:"item_count"`
	TotalUnits  uint64 `json:"total_units"`
}
