package http

import (
	"bytes"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/application/export"
	"github.com/jhoicas/sistema-inventarios/internal/infrastructure/csvexport"
)

// ExportHandler descargas CSV y PDF.
type ExportHandler struct {
	uc *export.UseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Products godoc
// @Summary      Exportar productos en CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/export/products.csv [get]
func (h *ExportHandler) Products(c *fiber.Ctx) error {
	rows, err := h.uc.Products(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, "productos", rows)
}

// Movements godoc
// @Summary      Exportar movimientos en CSV
// @Description  Acepta los filtros del libro de movimientos.
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Param        type        query  string  false  "entrada | salida"
// @Param        product_id  query  string  false  "ID del producto"
// @Param        user_id     query  string  false  "ID del usuario"
// @Param        date_from   query  string  false  "YYYY-MM-DD"
// @Param        date_to     query  string  false  "YYYY-MM-DD"
// @Param        search      query  string  false  "Texto libre"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/export/movements.csv [get]
func (h *ExportHandler) Movements(c *fiber.Ctx) error {
	f, err := movementFilters(c)
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", "fechas en formato YYYY-MM-DD")
	}
	rows, err := h.uc.Movements(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, "movimientos", rows)
}

// Statistics godoc
// @Summary      Exportar indicadores en CSV
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/export/statistics.csv [get]
func (h *ExportHandler) Statistics(c *fiber.Ctx) error {
	rows, err := h.uc.StatsReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, "reporte_estadisticas", rows)
}

// Report godoc
// @Summary      Reporte de inventario en PDF
// @Tags         export
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/export/report.pdf [get]
func (h *ExportHandler) Report(c *fiber.Ctx) error {
	doc, filename, err := h.uc.ReportPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

func sendCSV(c *fiber.Ctx, base string, rows []export.Row) error {
	var buf bytes.Buffer
	if err := csvexport.Write(&buf, rows); err != nil {
		if errors.Is(err, csvexport.ErrNoData) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DATA", Message: "No hay datos para exportar"})
		}
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, csvexport.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(base, "csv", time.Now())+`"`)
	return c.Send(buf.Bytes())
}
