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

	_ "github.com/jhoicas/sistema-inventarios/docs"
	"github.com/jhoicas/sistema-inventarios/internal/application/analytics"
	"github.com/jhoicas/sistema-inventarios/internal/application/auth"
	"github.com/jhoicas/sistema-inventarios/internal/application/export"
	"github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/application/usecase"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/sistema-inventarios/internal/infrastructure/pdf"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/sistema-inventarios/internal/interfaces/http"
	"github.com/jhoicas/sistema-inventarios/pkg/config"
	"github.com/jhoicas/sistema-inventarios/pkg/logger"
)

// @title                       Sistema de Inventarios API
// @version                     1.0
// @description                 Registro de productos, libro de movimientos de stock, estadísticas y exportaciones.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" obtenido en /api/auth/login
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.LogLevel,
		Service: cfg.App.Name,
		Storage: cfg.Storage.Driver,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	store, closeStore, err := backend.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	if err := storage.Initialize(ctx, store, storage.SeedOptions{ExampleProducts: cfg.App.SeedExamples}); err != nil {
		log.Fatal().Err(err).Msg("inicializar datos por defecto")
	}

	productRepo := storage.NewProductRepository(store)
	movementRepo := storage.NewMovementRepository(store)
	categoryRepo := storage.NewCategoryRepository(store)
	settingsRepo := storage.NewSettingsRepository(store)
	userRepo := storage.NewUserRepository(store)
	sessionRepo := storage.NewSessionRepository(store)
	txRunner := storage.NewTxRunner(store)

	notifierLog := log.Component("notifier")
	movementUC := inventory.NewMovementUseCase(txRunner, productRepo, movementRepo, inventory.NewLogNotifier(&notifierLog))
	replenishmentUC := inventory.NewReplenishmentUseCase(productRepo, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner, movementUC)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	statisticsUC := analytics.NewStatisticsUseCase(productRepo, movementRepo)
	dashboardUC := analytics.NewDashboardUseCase(statisticsUC)
	exportUC := export.NewUseCase(productRepo, movementRepo, settingsRepo, statisticsUC, dashboardUC, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Refresco periódico del panel; se detiene al cancelar ctx.
	go analytics.NewRefresher(dashboardUC, cfg.Dashboard.RefreshInterval(), nil).Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
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
		Title:    "Sistema de Inventarios API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		SettingsUC:    settingsUC,
		MovementUC:    movementUC,
		Replenishment: replenishmentUC,
		StatisticsUC:  statisticsUC,
		DashboardUC:   dashboardUC,
		ExportUC:      exportUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
	cancelBackground()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
