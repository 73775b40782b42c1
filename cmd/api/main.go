package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cytochromxxx/StockControl/internal/application/analytics"
	appexport "github.com/cytochromxxx/StockControl/internal/application/export"
	"github.com/cytochromxxx/StockControl/internal/application/ledger"
	"github.com/cytochromxxx/StockControl/internal/application/usecase"
	infrapdf "github.com/cytochromxxx/StockControl/internal/infrastructure/pdf"
	"github.com/cytochromxxx/StockControl/internal/infrastructure/postgres"
	httpRouter "github.com/cytochromxxx/StockControl/internal/interfaces/http"
	"github.com/cytochromxxx/StockControl/pkg/config"
	"github.com/cytochromxxx/StockControl/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones al día")

	kitRepo := postgres.NewKitRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	kitUC := usecase.NewKitUseCase(txRunner, kitRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	importUC := usecase.NewImportUseCase(kitUC)
	ledgerUC := ledger.NewUseCase(txRunner, kitRepo)
	dashboardUC := analytics.NewDashboardUseCase(kitRepo, categoryRepo)

	pdfGenerator := infrapdf.NewMarotoStockReport()
	exportUC := appexport.NewUseCase(kitRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockControl API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		KitUC:       kitUC,
		CategoryUC:  categoryUC,
		ImportUC:    importUC,
		LedgerUC:    ledgerUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor HTTP")
	}
}
