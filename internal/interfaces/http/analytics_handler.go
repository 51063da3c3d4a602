package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jframirez/Bodegas-api/internal/application/dto"
	"github.com/jframirez/Bodegas-api/internal/application/inventory"
)

// AnalyticsHandler maneja las consultas de resumen del inventario.
type AnalyticsHandler struct {
	ledger *inventory.Ledger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(ledger *inventory.Ledger) *AnalyticsHandler {
	return &AnalyticsHandler{ledger: ledger}
}

// Summary godoc
// @Summary      Resumen global del inventario
// @Description  Totales de bodegas, ítems y unidades, con el desglose por
// @Description  bodega calculado sobre una misma foto consistente del ledger.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	report, err := h.ledger.Summary(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	warehouses := make([]dto.WarehouseSummary, 0, len(report.Warehouses))
	for _, wt := range report.Warehouses {
		warehouses = append(warehouses, dto.WarehouseSummary{
			WarehouseID: wt.WarehouseID,
			Name:        wt.Name,
			ItemCount:   wt.ItemCount,
			TotalUnits:  wt.TotalUnits,
		})
	}
	return c.JSON(dto.SummaryResponse{
		WarehouseCount: report.WarehouseCount,
		ItemCount:      report.ItemCount,
		TotalUnits:     report.TotalUnits,
		Warehouses:     warehouses,
	})
}
