package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP del libro de movimientos (protegido).
type InventoryHandler struct {
	uc            *inventory.MovementUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, type (entrada|salida), quantity, reason, notes"
// @Success      201   {object}  dto.MovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	return h.register(c, h.uc.Register)
}

// RegisterEntry godoc
// @Summary      Registrar entrada
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "type se ignora"
// @Success      201  {object}  dto.MovementResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	return h.register(c, h.uc.RegisterEntry)
}

// RegisterExit godoc
// @Summary      Registrar salida
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "type se ignora"
// @Success      201  {object}  dto.MovementResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/exits [post]
func (h *InventoryHandler) RegisterExit(c *fiber.Ctx) error {
	return h.register(c, h.uc.RegisterExit)
}

type registerFunc func(ctx context.Context, actor entity.Actor, in dto.RegisterMovementRequest) (*dto.MovementResult, error)

func (h *InventoryHandler) register(c *fiber.Ctx, fn registerFunc) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := fn(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Validate godoc
// @Summary      Validar un movimiento sin registrarlo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento a validar"
// @Success      200  {object}  dto.ValidationResult
// @Router       /api/inventory/validate [post]
func (h *InventoryHandler) Validate(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Validate(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Consultar el libro de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "entrada | salida"
// @Param        product_id  query  string  false  "ID del producto"
// @Param        user_id     query  string  false  "ID del usuario"
// @Param        date_from   query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        date_to     query  string  false  "YYYY-MM-DD (inclusivo, hasta fin del día)"
// @Param        search      query  string  false  "Texto en producto, razón, notas o usuario"
// @Success      200  {object}  dto.ListResponse[dto.MovementResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	f, err := movementFilters(c)
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", "fechas en formato YYYY-MM-DD")
	}
	list, err := h.uc.Query(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Recent godoc
// @Summary      Últimos movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (default 10, máx. 100)"
// @Success      200  {object}  dto.ListResponse[dto.MovementResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/recent [get]
func (h *InventoryHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit > inventory.MaxRecent {
		return badRequest(c, "INVALID_PARAMS", fmt.Sprintf("limit debe ser como máximo %d", inventory.MaxRecent))
	}
	list, err := h.uc.Recent(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// Today godoc
// @Summary      Movimientos de hoy
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.MovementResponse]
// @Router       /api/inventory/today [get]
func (h *InventoryHandler) Today(c *fiber.Ctx) error {
	list, err := h.uc.Today(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// MonthToDate godoc
// @Summary      Movimientos del mes en curso
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.MovementResponse]
// @Router       /api/inventory/month [get]
func (h *InventoryHandler) MonthToDate(c *fiber.Ctx) error {
	list, err := h.uc.MonthToDate(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(list))
}

// ByDay godoc
// @Summary      Movimientos por día
// @Description  Una cubeta por día local, la más antigua primero, incluidos los días sin movimientos.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días (default 7, máx. 366)"
// @Success      200  {array}   dto.DayBucket
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/by-day [get]
func (h *InventoryHandler) ByDay(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days > inventory.MaxDays {
		return badRequest(c, "INVALID_PARAMS", fmt.Sprintf("days debe ser como máximo %d", inventory.MaxDays))
	}
	buckets, err := h.uc.ByDay(c.Context(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(buckets)
}

// Statistics godoc
// @Summary      Totales de movimientos
// @Description  Acepta los mismos filtros que el listado.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "entrada | salida"
// @Param        product_id  query  string  false  "ID del producto"
// @Param        user_id     query  string  false  "ID del usuario"
// @Param        date_from   query  string  false  "YYYY-MM-DD"
// @Param        date_to     query  string  false  "YYYY-MM-DD"
// @Param        search      query  string  false  "Texto libre"
// @Success      200  {object}  dto.MovementStatistics
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/statistics [get]
func (h *InventoryHandler) Statistics(c *fiber.Ctx) error {
	f, err := movementFilters(c)
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", "fechas en formato YYYY-MM-DD")
	}
	out, err := h.uc.Statistics(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Check godoc
// @Summary      Verificar si un movimiento es posible
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CanPerformRequest  true  "product_id, type, quantity"
// @Success      200   {object}  dto.CanPerformResponse
// @Router       /api/inventory/check [post]
func (h *InventoryHandler) Check(c *fiber.Ctx) error {
	var in dto.CanPerformRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CanPerform(c.Context(), in.ProductID, in.Type, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reasons godoc
// @Summary      Razones sugeridas por tipo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "entrada (default) | salida"
// @Success      200  {object}  dto.ReasonsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/reasons [get]
func (h *InventoryHandler) Reasons(c *fiber.Ctx) error {
	movType := c.Query("type", entity.MovementTypeEntrada)
	if !entity.IsValidMovementType(movType) {
		return badRequest(c, "INVALID_PARAMS", inventory.MsgInvalidType)
	}
	return c.JSON(dto.ReasonsResponse{Type: movType, Reasons: h.uc.ReasonsByType(movType)})
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Productos en o bajo su stock mínimo con la cantidad sugerida de pedido,
//
//	los agotados primero y luego por salidas de los últimos 90 días.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReplenishmentListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.Suggestions(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReplenishmentListResponse{Total: len(list), Replenishments: list})
}
