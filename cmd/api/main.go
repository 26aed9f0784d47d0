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

	appanalytics "github.com/jhoicas/painel-bi/internal/application/analytics"
	"github.com/jhoicas/painel-bi/internal/application/usecase"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
	"github.com/jhoicas/painel-bi/internal/infrastructure/cache"
	"github.com/jhoicas/painel-bi/internal/infrastructure/erp"
	infrapdf "github.com/jhoicas/painel-bi/internal/infrastructure/pdf"
	"github.com/jhoicas/painel-bi/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/painel-bi/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/painel-bi/internal/interfaces/http"
	"github.com/jhoicas/painel-bi/pkg/config"
	"github.com/jhoicas/painel-bi/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("erp", cfg.ERP.BaseURL).
		Str("config_backend", cfg.Store.Backend).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()

	erpClient := erp.NewClient(cfg.ERP, log)
	snapshot := cache.NewGateway(cache.Sources{
		Invoices:     erpClient,
		Customers:    erpClient,
		Stock:        erpClient,
		ServiceNotes: erpClient,
	}, cfg.ERP.CacheTTL(), log)

	// Configuración: en el ERP o en PostgreSQL propio
	var configRepo repository.ConfigRepository = erpClient
	if cfg.Store.Backend == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pgConfig := postgres.NewConfigRepository(pool)
		if err := pgConfig.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de configuración")
		}
		configRepo = pgConfig
	}

	clock := usecase.Clock{Now: time.Now, Location: cfg.App.Location()}
	opts := usecase.ReportOptions{CompanyName: cfg.Report.CompanyName, PDFMaxRows: cfg.Report.PDFMaxRows}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xlsxExporter := infraxlsx.NewExcelizeExporter()

	configUC := usecase.NewConfigUseCase(configRepo, log)
	salesUC := usecase.NewSalesUseCase(snapshot, clock)
	sellerUC := usecase.NewSellerUseCase(snapshot, clock, log)
	customerUC := usecase.NewCustomerUseCase(snapshot, snapshot, clock)
	stockUC := usecase.NewStockUseCase(snapshot, configUC, pdfGenerator, opts, clock)
	serviceUC := usecase.NewServiceUseCase(snapshot, clock)
	exportUC := usecase.NewExportUseCase(usecase.Reports{
		Sales:     salesUC,
		Seller:    sellerUC,
		Customers: customerUC,
		Stock:     stockUC,
		Services:  serviceUC,
	}, xlsxExporter, pdfGenerator, opts, clock)
	dashboardUC := appanalytics.NewDashboardUseCase(snapshot, snapshot, configUC, time.Now, cfg.App.Location())
	refreshUC := usecase.NewRefreshUseCase(log, snapshot, configUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.ERP.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Painel BI API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SalesUC:     salesUC,
		SellerUC:    sellerUC,
		CustomerUC:  customerUC,
		StockUC:     stockUC,
		ServiceUC:   serviceUC,
		ConfigUC:    configUC,
		ExportUC:    exportUC,
		RefreshUC:   refreshUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
