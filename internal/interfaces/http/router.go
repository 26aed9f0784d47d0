package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/painel-bi/internal/application/analytics"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SalesUC     *usecase.SalesUseCase
	SellerUC    *usecase.SellerUseCase
	CustomerUC  *usecase.CustomerUseCase
	StockUC     *usecase.StockUseCase
	ServiceUC   *usecase.ServiceUseCase
	ConfigUC    *usecase.ConfigUseCase
	ExportUC    *usecase.ExportUseCase
	RefreshUC   *usecase.RefreshUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	sales := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC, deps.ExportUC)
	sales.Get("/report", salesHandler.Report)
	sales.Get("/export.xlsx", salesHandler.ExportXLSX)

	seller := protected.Group("/seller")
	sellerHandler := NewSellerHandler(deps.SellerUC, deps.ExportUC)
	seller.Get("/report", sellerHandler.Report)
	seller.Get("/export.xlsx", sellerHandler.ExportXLSX)
	seller.Patch("/invoices/:id/tag", sellerHandler.UpdateTag)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ExportUC)
	customers.Get("/report", customerHandler.Report)
	customers.Get("/export.xlsx", customerHandler.ExportXLSX)
	customers.Get("/export.pdf", customerHandler.ExportPDF)

	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.ExportUC)
	stock.Get("/report", stockHandler.Report)
	stock.Get("/export.xlsx", stockHandler.ExportXLSX)
	stock.Get("/export.pdf", stockHandler.ExportPDF)
	stock.Post("/purchase-request", stockHandler.PurchaseRequest)

	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC, deps.ExportUC)
	services.Get("/report", serviceHandler.Report)
	services.Get("/export.xlsx", serviceHandler.ExportXLSX)
	services.Get("/export.pdf", serviceHandler.ExportPDF)

	configHandler := NewConfigHandler(deps.ConfigUC, deps.RefreshUC)
	config := protected.Group("/config", RequireRole(RoleAdmin))
	config.Get("/", configHandler.List)
	config.Put("/:key", configHandler.Update)
	protected.Post("/refresh", configHandler.Refresh)
}
