// @title        Facturación API
// @version      1.0
// @description  Registro de facturas, gastos y presupuestos con dashboard fiscal (IVA, IRPF).
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/facturacion-api/docs"
	"github.com/jhoicas/facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/facturacion-api/internal/application/records"
	"github.com/jhoicas/facturacion-api/internal/domain/fiscal"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/facturacion-api/pkg/config"
	"github.com/jhoicas/facturacion-api/pkg/logger"
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
		Msg("iniciando aplicación")

	// importes como números JSON (1210.5) y no como cadenas
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.DB.RunMigrations {
		if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	stateRepo := postgres.NewDashboardStateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	cache := dashboard.NewResultCache(cfg.Dashboard.CacheTTL)
	notifier := dashboard.NewStateNotifier(stateRepo, log.Component("dashboard_state"))
	policy := fiscal.FallbackPolicy{
		VATRate:  cfg.Dashboard.FallbackVATRate,
		IRPFRate: cfg.Dashboard.FallbackIRPFRate,
	}
	dashboardUC := dashboard.NewDashboardUseCase(
		invoiceRepo, transactionRepo, quoteRepo,
		cache, notifier, policy, log.Component("dashboard"),
	)
	recordsUC := records.NewUseCase(invoiceRepo, transactionRepo, quoteRepo, txRunner, notifier)

	sched := scheduler.New(log.Zerolog())
	if err := sched.AddJob(cfg.Dashboard.PurgeSchedule, scheduler.NewCachePurgeJob(cache, log.Zerolog())); err != nil {
		log.Fatal().Err(err).Msg("registrar purga de caché")
	}
	sched.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Facturación API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		RecordsUC:   recordsUC,
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
	sched.Stop()

	log.Info().Msg("aplicación detenida")
}
