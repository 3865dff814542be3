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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Ginebra-api/internal/application/auth"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
	"github.com/jhoicas/Ginebra-api/internal/infrastructure/excel"
	"github.com/jhoicas/Ginebra-api/internal/infrastructure/mail"
	"github.com/jhoicas/Ginebra-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Ginebra-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Ginebra-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Ginebra-api/internal/infrastructure/redis"
	"github.com/jhoicas/Ginebra-api/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/Ginebra-api/internal/interfaces/http"
	"github.com/jhoicas/Ginebra-api/pkg/config"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

// pinger dependencia consultada por /health.
type pinger interface {
	Ping(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	checks := map[string]pinger{"postgres": pool}

	// Empresa seleccionada por sesión: Redis si está configurado, si no en memoria.
	var selection ports.SelectionStore
	if cfg.Redis.Addr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		store := infraredis.NewSelectionStore(client, cfg.Redis.SelectionTTL)
		if err := store.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no responde; la selección de empresa fallará hasta que vuelva")
		}
		selection = store
		checks["redis"] = store
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: la selección de empresa se guarda en memoria del proceso")
		selection = session.NewMemoryStore()
	}

	registry := prometheus.NewRegistry()
	var domainMetrics ports.Metrics = ports.NopMetrics{}
	var promMetrics *metrics.Prometheus
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		promMetrics = metrics.NewPrometheus(cfg.Metrics.Namespace, registry)
		domainMetrics = promMetrics
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	agentRepo := postgres.NewAgentRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo, domainMetrics, log)
	agentUC := usecase.NewAgentUseCase(agentRepo, txRunner)
	bookingUC := usecase.NewBookingUseCase(bookingRepo, txRunner, domainMetrics, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, domainMetrics, log)
	contractUC := usecase.NewContractUseCase(contractRepo, catalogRepo, supplierRepo, domainMetrics, log)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, companyRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, companyRepo, domainMetrics, log, time.Now)
	featureSvc := usecase.NewFeatureService(companyRepo)

	// XLSX (excelize) y liquidación PDF (maroto)
	exportUC := usecase.NewExportUseCase(usecase.ExportDeps{
		Agents:    agentUC,
		Companies: companyUC,
		Bookings:  bookingUC,
		Suppliers: supplierUC,
		Contracts: contractUC,
		Invoices:  invoiceUC,
		Reports:   reportUC,
		XLSX:      excel.NewWriter(),
		PDF:       infrapdf.NewMarotoSettlementGenerator(),
	})

	authUC := auth.NewAuthUseCase(agentRepo, mail.New(cfg.Mail, log.Component("mail")), auth.JWTConfig{
		Secret:          cfg.JWT.Secret,
		ExpMinutes:      cfg.JWT.Expiration,
		Issuer:          cfg.JWT.Issuer,
		ResetExpMinutes: cfg.JWT.ResetExpiration,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.HTTP.BodyLimit,
		ErrorHandler: httpRouter.FiberErrorHandler,
	})
	if promMetrics != nil {
		app.Use(httpRouter.Metrics(promMetrics))
	}
	app.Use(httpRouter.RequestLogger(log))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ginebra API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		hctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		status := fiber.Map{}
		healthy := true
		for name, p := range checks {
			if err := p.Ping(hctx); err != nil {
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "ok"
		}
		code := fiber.StatusOK
		if !healthy {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{"status": status, "service": cfg.App.Name})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		AgentUC:        agentUC,
		CompanyUC:      companyUC,
		BookingUC:      bookingUC,
		SupplierUC:     supplierUC,
		ContractUC:     contractUC,
		InvoiceUC:      invoiceUC,
		ReportUC:       reportUC,
		ExportUC:       exportUC,
		Features:       featureSvc,
		Selection:      selection,
		JWTSecret:      cfg.JWT.Secret,
		MaxUploadBytes: cfg.Uploads.MaxBytes,
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
