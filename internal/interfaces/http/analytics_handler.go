package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/sistema-inventarios/internal/application/analytics"
	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
)

// StatisticsHandler maneja los endpoints de estadísticas del inventario (admin).
type StatisticsHandler struct {
	uc *appanalytics.StatisticsUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *appanalytics.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Inventory godoc
// @Summary      KPIs del inventario
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatsDTO
// @Router       /api/statistics/inventory [get]
func (h *StatisticsHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.InventoryStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/statistics/low-stock [get]
func (h *StatisticsHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.uc.LowStockProducts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// TopProducts godoc
// @Summary      Productos con más unidades movidas
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máx. productos (default 5)"
// @Success      200  {object}  dto.ListResponse[dto.TopProductDTO]
// @Router       /api/statistics/top-products [get]
func (h *StatisticsHandler) TopProducts(c *fiber.Ctx) error {
	list, err := h.uc.TopMovedProducts(c.Context(), c.QueryInt("limit", 5))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// UserActivity godoc
// @Summary      Movimientos por usuario
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.UserActivityDTO]
// @Router       /api/statistics/user-activity [get]
func (h *StatisticsHandler) UserActivity(c *fiber.Ctx) error {
	list, err := h.uc.UserActivity(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Categories godoc
// @Summary      Distribución de productos por categoría
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.CategoryShareDTO]
// @Router       /api/statistics/categories [get]
func (h *StatisticsHandler) Categories(c *fiber.Ctx) error {
	list, err := h.uc.CategoryDistribution(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}
