package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventarios/internal/application/analytics"
	"github.com/jhoicas/sistema-inventarios/internal/application/auth"
	"github.com/jhoicas/sistema-inventarios/internal/application/export"
	"github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/application/usecase"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	SettingsUC    *usecase.SettingsUseCase
	MovementUC    *inventory.MovementUseCase
	Replenishment *inventory.ReplenishmentUseCase
	StatisticsUC  *analytics.StatisticsUseCase
	DashboardUC   *analytics.DashboardUseCase
	ExportUC      *export.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
// Cualquier usuario autenticado lee y registra movimientos; el rol admin además
// administra productos, categorías, configuración y estadísticas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleEmpleado)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), anyRole)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StatisticsUC)
	products.Get("/", productHandler.List)
	products.Get("/summary", productHandler.Summary)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/statistics", productHandler.Statistics)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", adminOnly, categoryHandler.Create)

	// Inventory movements
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.Replenishment)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Post("/entries", inventoryHandler.RegisterEntry)
	invGroup.Post("/exits", inventoryHandler.RegisterExit)
	invGroup.Post("/validate", inventoryHandler.Validate)
	invGroup.Post("/check", inventoryHandler.Check)
	invGroup.Get("/reasons", inventoryHandler.Reasons)
	invGroup.Get("/recent", inventoryHandler.Recent)
	invGroup.Get("/today", inventoryHandler.Today)
	invGroup.Get("/month", inventoryHandler.MonthToDate)
	invGroup.Get("/by-day", inventoryHandler.ByDay)
	invGroup.Get("/statistics", inventoryHandler.Statistics)
	invGroup.Get("/replenishment", adminOnly, inventoryHandler.GetReplenishmentList)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)

	// Statistics (admin)
	stats := protected.Group("/statistics", adminOnly)
	statsHandler := NewStatisticsHandler(deps.StatisticsUC)
	stats.Get("/inventory", statsHandler.Inventory)
	stats.Get("/low-stock", statsHandler.LowStock)
	stats.Get("/top-products", statsHandler.TopProducts)
	stats.Get("/user-activity", statsHandler.UserActivity)
	stats.Get("/categories", statsHandler.Categories)

	// Export
	exports := protected.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/products.csv", exportHandler.Products)
	exports.Get("/movements.csv", exportHandler.Movements)
	exports.Get("/statistics.csv", adminOnly, exportHandler.Statistics)
	exports.Get("/report.pdf", adminOnly, exportHandler.Report)

	// Settings
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", adminOnly, settingsHandler.Update)
}
