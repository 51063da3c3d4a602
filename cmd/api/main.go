package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jframirez/Bodegas-api/internal/application/inventory"
	"github.com/jframirez/Bodegas-api/internal/domain/repository"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/memory"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/postgres"
	"github.com/jframirez/Bodegas-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jframirez/Bodegas-api/internal/interfaces/http"
	"github.com/jframirez/Bodegas-api/pkg/clock"
	"github.com/jframirez/Bodegas-api/pkg/config"
	"github.com/jframirez/Bodegas-api/pkg/logger"
	"github.com/jframirez/Bodegas-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

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
		log.Info().Msg("migraciones aplicadas")

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
		log.Info().Str("path", cfg.SQLite.Path).Msg("migraciones aplicadas")

		txRunner = sqlite.NewTxRunner(db)
		warehouseRepo = sqlite.NewWarehouseRepository(db)
		itemRepo = sqlite.NewStockItemRepository(db)
		movementRepo = sqlite.NewMovementRepository(db)
		closeStore = func() { _ = db.Close() }

	case config.StoreDriverMemory:
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

	m := metrics.New()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.AccessLog(log.Zerolog()))
	app.Use(httpRouter.Metrics(m))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodegas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{Ledger: ledger})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
