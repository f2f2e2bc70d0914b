package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain"
)

// respondError traduce un error de dominio a status HTTP con el cuerpo uniforme
// {success:false, code, message}. Los errores no clasificados se registran y se
// responden como 500 sin detalles internos.
func respondError(c *fiber.Ctx, err error) error {
	body := dto.ErrorResponse{Success: false, Message: domain.Message(err)}
	var status int
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		status, body.Code, body.Errors = fiber.StatusBadRequest, "VALIDATION", ve.Errors
	case errors.Is(err, domain.ErrDuplicateCode):
		status, body.Code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrNotFound):
		status, body.Code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrNegativeStock):
		status, body.Code = fiber.StatusConflict, "NEGATIVE_STOCK"
	case errors.Is(err, domain.ErrUnauthorized):
		status, body.Code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, body.Code = fiber.StatusForbidden, "FORBIDDEN"
	default:
		status, body.Code = fiber.StatusInternalServerError, "INTERNAL"
		body.Message = domain.MsgPersistence
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
	}
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// parseDate interpreta YYYY-MM-DD como medianoche local. Vacío devuelve tiempo cero.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// movementFilters lee type, product_id, user_id, date_from, date_to y search.
func movementFilters(c *fiber.Ctx) (dto.MovementFilters, error) {
	from, err := parseDate(c.Query("date_from"))
	if err != nil {
		return dto.MovementFilters{}, err
	}
	to, err := parseDate(c.Query("date_to"))
	if err != nil {
		return dto.MovementFilters{}, err
	}
	return dto.MovementFilters{
		Type:      c.Query("type"),
		ProductID: c.Query("product_id"),
		UserID:    c.Query("user_id"),
		DateFrom:  from,
		DateTo:    to,
		Search:    c.Query("search"),
	}, nil
}
