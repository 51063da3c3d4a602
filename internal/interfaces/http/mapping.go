package http

import (
	"github.com/jframirez/Bodegas-api/internal/application/dto"
	"github.com/jframirez/Bodegas-api/internal/application/inventory"
	"github.com/jframirez/Bodegas-api/internal/domain/entity"
)

func toWarehouseResponse(wh *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:        wh.ID,
		Name:      wh.Name,
		CreatedAt: wh.CreatedAt,
	}
}

func toStockItemResponse(it *entity.StockItem) dto.StockItemResponse {
	return dto.StockItemResponse{
		ItemID:      it.ItemID,
		WarehouseID: it.WarehouseID,
		ItemName:    it.ItemName,
		Quantity:    it.Quantity,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toStockItemResponses(items []*entity.StockItem) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toStockItemResponse(it))
	}
	return out
}

func toMovementResponse(mov *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            mov.ID,
		TransactionID: mov.TransactionID,
		ItemID:        mov.ItemID,
		WarehouseID:   mov.WarehouseID,
		ItemName:      mov.ItemName,
		Type:          mov.Type,
		Quantity:      mov.Quantity,
		OccurredAt:    mov.OccurredAt,
	}
}

func toTransferResponse(res *inventory.TransferResult) dto.TransferResponse {
	return dto.TransferResponse{
		TransactionID: res.TransactionID,
		Source:        toStockItemResponse(res.Source),
		Destination:   toStockItemResponse(res.Destination),
	}
}
