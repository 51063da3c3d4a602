// seed puebla el backend configurado con un juego de datos de demostración:
// tres bodegas, existencias variadas y un traslado. Todo entra por el ledger,
// nunca por SQL directo, así los datos respetan cada invariante y el diario
// de movimientos queda poblado.
//
// Uso: go run ./cmd/seed (respeta STORE_DRIVER, DATABASE_URL, SQLITE_PATH…)
package main

import (
	"context"

	"github.com/jframirez/Bodegas-api/internal/application/inventory"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/memory"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/postgres"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/sqlite"
	"github.com/jframirez/Bodegas-api/pkg/clock"
	"github.com/jframirez/Bodegas-api/pkg/config"
	"github.com/jframirez/Bodegas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name + "-seed",
	})
	log.Info().Str("store", cfg.Store.Driver).Msg("sembrando datos de demostración")

	ctx := context.Background()

	var (
		txRunner      inventory.TxRunner
		warehouseRepo repository.WarehouseRepository
		itemRepo      repository.StockItemRepository
		movementRepo  repository.MovementRepository
		closeStore    func()
	)
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones de PostgreSQL")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		txRunner = postgres.NewTxRunner(pool)
		warehouseRepo = postgres.NewWarehouseRepository(pool)
		itemRepo = postgres.NewStockItemRepository(pool)
		movementRepo = postgres.NewMovementRepository(pool)
		closeStore = pool.Close

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("apertura de SQLite")
		}
		txRunner = sqlite.NewTxRunner(db)
		warehouseRepo = sqlite.NewWarehouseRepository(db)
		itemRepo = sqlite.NewStockItemRepository(db)
		movementRepo = sqlite.NewMovementRepository(db)
		closeStore = func() { _ = db.Close() }

	case config.StoreDriverMemory:
		// Con el backend en memoria la siembra se pierde al salir; solo tiene
		// sentido para comprobar que el flujo completo funciona.
		store := memory.NewStore()
		txRunner = store.TxRunner()
		warehouseRepo = store.Warehouses()
		itemRepo = store.Items()
		movementRepo = store.Movements()
		closeStore = func() {}
	}
	defer closeStore()

	ledger, err := inventory.NewLedger(ctx, txRunner, warehouseRepo, itemRepo, movementRepo, clock.NewSystem())
	if err != nil {
		log.Fatal().Err(err).Msg("construcción del ledger")
	}

	central, err := ledger.CreateWarehouse(ctx, "Bodega Central")
	if err != nil {
		log.Fatal().Err(err).Msg("crear Bodega Central")
	}
	norte, err := ledger.CreateWarehouse(ctx, "Bodega Norte")
	if err != nil {
		log.Fatal().Err(err).Msg("crear Bodega Norte")
	}
	if _, err := ledger.CreateWarehouse(ctx, "Bodega Sur"); err != nil {
		log.Fatal().Err(err).Msg("crear Bodega Sur")
	}

	type alta struct {
		warehouseID uint64
		name        string
		quantity    uint64
	}
	altas := []alta{
		{central.ID, "Tornillos 3/8", 500},
		{central.ID, "Tuercas 3/8", 480},
		{central.ID, "Cable UTP cat6 (m)", 1200},
		{norte.ID, "Tornillos 3/8", 150},
		{norte.ID, "Cinta aislante", 60},
	}
	var cables *inventory.TransferInput
	for _, a := range altas {
		item, err := ledger.AddItem(ctx, a.warehouseID, a.name, a.quantity)
		if err != nil {
			log.Fatal().Err(err).Str("item", a.name).Msg("agregar existencias")
		}
		if a.name == "Cable UTP cat6 (m)" {
			cables = &inventory.TransferInput{
				ItemID:          item.ItemID,
				FromWarehouseID: central.ID,
				ToWarehouseID:   norte.ID,
				Quantity:        300,
			}
		}
	}

	// Un traslado de muestra para que el diario tenga movimientos TRANSFER.
	res, err := ledger.TransferItem(ctx, *cables)
	if err != nil {
		log.Fatal().Err(err).Msg("traslado de demostración")
	}
	log.Info().
		Str("transaction_id", res.TransactionID).
		Uint64("restante_origen", res.Source.Quantity).
		Uint64("en_destino", res.Destination.Quantity).
		Msg("traslado sembrado")

	report, err := ledger.Summary(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("resumen final")
	}
	log.Info().
		Int("bodegas", report.WarehouseCount).
		Int("items", report.ItemCount).
		Uint64("unidades", report.TotalUnits).
		Msg("siembra completada")
}
