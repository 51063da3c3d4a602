package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/memory"
)

func TestWarehouses_GetAusenteDevuelveNilNil(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	w, err := s.Warehouses().Get(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, w, "una bodega ausente es (nil, nil), no un error")
}

func TestWarehouses_ListaEnOrdenAscendente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	repo := s.Warehouses()

	for _, id := range []uint64{3, 1, 2} {
		require.NoError(t, repo.Upsert(ctx, &entity.Warehouse{ID: id, Name: "B", CreatedAt: time.Now()}))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, uint64(1), list[0].ID)
	assert.Equal(t, uint64(2), list[1].ID)
	assert.Equal(t, uint64(3), list[2].ID)
}

// Los registros devueltos son copias: mutarlos no debe afectar el almacén.
func TestItems_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	repo := s.Items()

	require.NoError(t, repo.Upsert(ctx, &entity.StockItem{
		ItemID: 1, WarehouseID: 1, ItemName: "tornillo", Quantity: 10, CreatedAt: time.Now(),
	}))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	got.Quantity = 999
	got.ItemName = "mutado"

	again, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), again.Quantity, "mutar la copia no debe tocar el almacén")
	assert.Equal(t, "tornillo", again.ItemName)
}

func TestItems_ListByWarehouseFiltraYOrdena(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	repo := s.Items()

	seed := []entity.StockItem{
		{ItemID: 5, WarehouseID: 1, ItemName: "a", Quantity: 1, CreatedAt: time.Now()},
		{ItemID: 2, WarehouseID: 2, ItemName: "b", Quantity: 1, CreatedAt: time.Now()},
		{ItemID: 3, WarehouseID: 1, ItemName: "c", Quantity: 1, CreatedAt: time.Now()},
	}
	for i := range seed {
		require.NoError(t, repo.Upsert(ctx, &seed[i]))
	}

	got, err := repo.ListByWarehouse(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(3), got[0].ItemID, "orden ascendente por item_id")
	assert.Equal(t, uint64(5), got[1].ItemID)

	vacio, err := repo.ListByWarehouse(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, vacio, "bodega desconocida produce lista vacía")
}

func TestMovements_PaginaDelMasRecienteAlMasAntiguo(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	repo := s.Movements()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, &entity.StockMovement{
			ID:          string(rune('a' + i)),
			WarehouseID: 1,
			Type:        entity.MovementTypeIN,
			Quantity:    int64(i + 1),
			OccurredAt:  base.Add(time.Duration(i) * time.Second),
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	page, err := repo.ListByWarehouse(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(5), page[0].Quantity, "primero el más reciente")
	assert.Equal(t, int64(4), page[1].Quantity)

	page2, err := repo.ListByWarehouse(ctx, 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, int64(3), page2[0].Quantity)

	otra, err := repo.ListByWarehouse(ctx, 2, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, otra, "el diario filtra por bodega")
}
