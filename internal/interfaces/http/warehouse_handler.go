package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jframirez/Bodegas-api/internal/application/dto"
	"github.com/jframirez/Bodegas-api/internal/application/inventory"
)

// WarehouseHandler maneja las peticiones HTTP de bodegas.
type WarehouseHandler struct {
	ledger *inventory.Ledger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(ledger *inventory.Ledger) *WarehouseHandler {
	return &WarehouseHandler{ledger: ledger}
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      201   {object}  dto.WarehouseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/warehouses [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	wh, err := h.ledger.CreateWarehouse(c.Context(), in.Name)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWarehouseResponse(wh))
}

// GetByID godoc
// @Summary      Obtener bodega por ID
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	wh, err := h.ledger.GetWarehouse(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toWarehouseResponse(wh))
}

// Delete godoc
// @Summary      Eliminar bodega y todas sus existencias
// @Description  Elimina la bodega en cascada. Los ids de la bodega y de sus
// @Description  ítems quedan libres para reutilizarse; el diario de movimientos
// @Description  conserva la historia.
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	wh, err := h.ledger.DeleteWarehouse(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toWarehouseResponse(wh))
}

// List godoc
// @Summary      Listar bodegas con sus existencias
// @Tags         warehouses
// @Produce      json
// @Success      200  {object}  dto.WarehouseListResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	list, err := h.ledger.ListWarehousesWithStock(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.WarehouseWithStockResponse, 0, len(list))
	for _, ws := range list {
		items = append(items, dto.WarehouseWithStockResponse{
			Warehouse: toWarehouseResponse(ws.Warehouse),
			Stock:     toStockItemResponses(ws.Items),
		})
	}
	return c.JSON(dto.WarehouseListResponse{Items: items, Total: len(items)})
}

// ListStock godoc
// @Summary      Listar existencias de una bodega
// @Tags         warehouses
// @Produce      json
// @Param        id   path  int  true  "ID de la bodega"
// @Success      200  {array}   dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id}/stock [get]
func (h *WarehouseHandler) ListStock(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	items, err := h.ledger.ListByWarehouse(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toStockItemResponses(items))
}

// ListMovements godoc
// @Summary      Diario de movimientos de una bodega
// @Description  Página del diario, del movimiento más reciente al más antiguo.
// @Description  La historia sobrevive a la eliminación de la bodega.
// @Tags         warehouses
// @Produce      json
// @Param        id      path   int  true   "ID de la bodega"
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/warehouses/{id}/movements [get]
func (h *WarehouseHandler) ListMovements(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	movs, err := h.ledger.ListMovements(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, mov := range movs {
		items = append(items, toMovementResponse(mov))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}
