package postgres_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/jframirez/Bodegas-api/internal/domain/entity"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/postgres"
)

// openTestPool abre un pool contra TEST_DATABASE_URL, aplica migraciones y
// limpia las tablas. La prueba se omite si la variable no está definida.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido; se omite la prueba de integración")
	}

	require.NoError(t, postgres.Migrate(dsn), "las migraciones deben aplicarse")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE warehouses, stock_items, stock_movements`)
	require.NoError(t, err)

	return pool
}

func TestWarehouseRepo_RoundTrip(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := postgres.NewWarehouseRepository(pool)

	wh := &entity.Warehouse{ID: 1, Name: "Bodega Central", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Upsert(ctx, wh))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got, "la bodega recién creada debe existir")
	require.Equal(t, wh.ID, got.ID)
	require.Equal(t, wh.Name, got.Name)
	require.WithinDuration(t, wh.CreatedAt, got.CreatedAt, time.Millisecond)

	absent, err := repo.Get(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, absent, "una bodega inexistente devuelve nil sin error")

	require.NoError(t, repo.Remove(ctx, 1))
	gone, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestStockItemRepo_UpdatedAtNulo(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := postgres.NewStockItemRepository(pool)

	fresh := &entity.StockItem{
		ItemID:      1,
		WarehouseID: 7,
		ItemName:    "Tornillos",
		Quantity:    10,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, fresh))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Nil(t, got.UpdatedAt, "un ítem jamás modificado no tiene updated_at")

	touched := time.Now().UTC()
	fresh.Quantity = 15
	fresh.UpdatedAt = &touched
	require.NoError(t, repo.Upsert(ctx, fresh))

	got, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got.UpdatedAt, "tras modificar, updated_at queda registrado")
	require.WithinDuration(t, touched, *got.UpdatedAt, time.Millisecond)
	require.Equal(t, uint64(15), got.Quantity)
}

func TestStockItemRepo_ListByWarehouseOrden(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := postgres.NewStockItemRepository(pool)

	now := time.Now().UTC()
	for _, it := range []*entity.StockItem{
		{ItemID: 3, WarehouseID: 1, ItemName: "Clavos", Quantity: 5, CreatedAt: now},
		{ItemID: 1, WarehouseID: 1, ItemName: "Tuercas", Quantity: 8, CreatedAt: now},
		{ItemID: 2, WarehouseID: 2, ItemName: "Arandelas", Quantity: 3, CreatedAt: now},
	} {
		require.NoError(t, repo.Upsert(ctx, it))
	}

	list, err := repo.ListByWarehouse(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, uint64(1), list[0].ItemID, "el listado va en orden ascendente de id")
	require.Equal(t, uint64(3), list[1].ItemID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestMovementRepo_OrdenDescendente(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	repo := postgres.NewMovementRepository(pool)

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i := 0; i < 3; i++ {
		mov := &entity.StockMovement{
			ID:            string(rune('a' + i)),
			TransactionID: "tx-1",
			ItemID:        1,
			WarehouseID:   4,
			ItemName:      "Cables",
			Type:          entity.MovementTypeIN,
			Quantity:      int64(i + 1),
			OccurredAt:    base.Add(time.Duration(i) * time.Second),
			CreatedAt:     base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Append(ctx, mov))
	}

	list, err := repo.ListByWarehouse(ctx, 4, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, int64(3), list[0].Quantity, "el movimiento más reciente va primero")
	require.Equal(t, int64(1), list[2].Quantity)

	page, err := repo.ListByWarehouse(ctx, 4, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, int64(2), page[0].Quantity)
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)

	boom := errors.New("falla simulada")
	err := runner.Run(ctx, func(
		warehouseRepo repository.WarehouseRepository,
		itemRepo repository.StockItemRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := warehouseRepo.Upsert(ctx, &entity.Warehouse{ID: 9, Name: "Efímera", CreatedAt: time.Now().UTC()}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := postgres.NewWarehouseRepository(pool).Get(ctx, 9)
	require.NoError(t, err)
	require.Nil(t, got, "el rollback descarta la bodega escrita dentro de la tx")
}
