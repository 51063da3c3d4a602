package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jframirez/Bodegas-api/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger *inventory.Ledger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.Ledger)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Delete("/:id", warehouseHandler.Delete)
	warehouses.Get("/:id/stock", warehouseHandler.ListStock)
	warehouses.Get("/:id/movements", warehouseHandler.ListMovements)

	// Stock (transfer va antes que :id para que fiber no lo capture como id)
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Ledger)
	stock.Post("/", stockHandler.Add)
	stock.Post("/transfer", stockHandler.Transfer)
	stock.Get("/:id", stockHandler.GetByID)
	stock.Post("/:id/decrement", stockHandler.Decrement)

	// Analytics
	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.Ledger)
	analytics.Get("/summary", analyticsHandler.Summary)
}
