package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jframirez/Bodegas-api/internal/application/dto"
	"github.com/jframirez/Bodegas-api/internal/application/inventory"
)

// StockHandler maneja las peticiones HTTP de existencias.
type StockHandler struct {
	ledger *inventory.Ledger
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *inventory.Ledger) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// Add godoc
// @Summary      Agregar existencias
// @Description  Crea un ítem nuevo en la bodega, o fusiona la cantidad sobre el
// @Description  ítem vivo del mismo nombre si ya existe uno.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockItemRequest  true  "Bodega, nombre y cantidad"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.AddStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.ledger.AddItem(c.Context(), in.WarehouseID, in.ItemName, in.Quantity)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockItemResponse(item))
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         stock
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	item, err := h.ledger.GetItem(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toStockItemResponse(item))
}

// Decrement godoc
// @Summary      Retirar existencias de un ítem
// @Description  Retira quantity unidades. Si el retiro deja el ítem en cero, el
// @Description  registro se elimina y su id queda libre; la respuesta llega con
// @Description  quantity 0. Un retiro mayor al disponible se rechaza completo.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ítem"
// @Param        body  body  dto.DecrementStockRequest  true  "Cantidad a retirar"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/{id}/decrement [post]
func (h *StockHandler) Decrement(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.DecrementStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.ledger.DecrementItem(c.Context(), id, in.Quantity)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toStockItemResponse(item))
}

// Transfer godoc
// @Summary      Trasladar existencias entre bodegas
// @Description  Mueve quantity unidades del ítem hacia la bodega destino. Si el
// @Description  destino ya tiene un ítem vivo con el mismo nombre, la cantidad
// @Description  se fusiona sobre él; si el origen queda en cero, se elimina.
// @Description  La validación completa ocurre antes de mutar: un traslado
// @Description  rechazado no deja rastro.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferStockRequest  true  "Ítem, origen, destino y cantidad"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/transfer [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.ledger.TransferItem(c.Context(), inventory.TransferInput{
		ItemID:          in.ItemID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Quantity:        in.Quantity,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toTransferResponse(res))
}
