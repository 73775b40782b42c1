package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cytochromxxx/StockControl/internal/application/analytics"
	"github.com/cytochromxxx/StockControl/internal/application/export"
	"github.com/cytochromxxx/StockControl/internal/application/ledger"
	"github.com/cytochromxxx/StockControl/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	KitUC       *usecase.KitUseCase
	CategoryUC  *usecase.CategoryUseCase
	ImportUC    *usecase.ImportUseCase
	LedgerUC    *ledger.UseCase
	DashboardUC *analytics.DashboardUseCase
	ExportUC    *export.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)

	// Kits (ciclo de vida + vista de inventario)
	kits := api.Group("/kits")
	kitHandler := NewKitHandler(deps.KitUC)
	kits.Get("/", kitHandler.List)
	kits.Post("/", kitHandler.Create)
	kits.Get("/:id", kitHandler.GetByID)
	kits.Put("/:id", kitHandler.Update)
	kits.Delete("/:id", kitHandler.Delete)

	// Ledger (mutaciones de volumen y lecturas derivadas)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	kits.Post("/:id/withdrawals", ledgerHandler.Withdraw)
	kits.Post("/:id/refills", ledgerHandler.Refill)
	kits.Put("/:id/entries/:entryId", ledgerHandler.EditEntry)
	kits.Delete("/:id/entries/:entryId", ledgerHandler.RemoveEntry)
	kits.Get("/:id/series", ledgerHandler.Series)
	kits.Get("/:id/history", ledgerHandler.History)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetStats)

	// Export / Import
	exportHandler := NewExportHandler(deps.ExportUC)
	exportGroup := api.Group("/export")
	exportGroup.Get("/csv", exportHandler.CSV)
	exportGroup.Get("/xlsx", exportHandler.XLSX)
	exportGroup.Get("/pdf", exportHandler.PDF)

	importHandler := NewImportHandler(deps.ImportUC)
	api.Post("/import/csv", importHandler.CSV)
}
