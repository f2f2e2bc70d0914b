// Package pdf genera el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa              │  Reporte de Inventario + Fecha│
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / stock / valor / bajos / agotados       │
//	│  CATEGORÍAS: cantidad y porcentaje                           │
//	│  STOCK BAJO: Código | Producto | Stock | Mínimo | Estado     │
//	│  MOVIMIENTOS: Fecha | Producto | Tipo | Cant. | Usuario      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/application/export"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 95, Blue: 6}
	colorDanger  = &props.Color{Red: 176, Green: 42, Blue: 55}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.ReportRenderer = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa export.ReportRenderer usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// RenderInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) RenderInventoryReport(_ context.Context, data *export.ReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(data.Stats)...)

	if len(data.Categories) > 0 {
		m.AddRows(sectionTitle("DISTRIBUCIÓN POR CATEGORÍA"))
		m.AddRows(categoryRows(data.Categories)...)
	}

	m.AddRows(sectionTitle("PRODUCTOS CON STOCK BAJO"))
	if len(data.LowStock) == 0 {
		m.AddRows(emptyRow("Todos los productos tienen stock suficiente"))
	} else {
		m.AddRows(lowStockHeaderRow())
		m.AddRows(lowStockRows(data.LowStock)...)
	}

	m.AddRows(sectionTitle("MOVIMIENTOS RECIENTES"))
	if len(data.RecentMovements) == 0 {
		m.AddRows(emptyRow("No hay movimientos registrados"))
	} else {
		m.AddRows(movementsHeaderRow())
		m.AddRows(movementRows(data.RecentMovements)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha del reporte (der).
func headerRow(data *export.ReportData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(data.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistema de Inventarios", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+export.FormatDate(data.GeneratedAt, true), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRows(s dto.InventoryStatsDTO) []core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 6}),
		)
	}
	return []core.Row{
		row.New(14).Add(
			kpi("Productos", strconv.Itoa(s.TotalProducts)),
			kpi("Stock total", strconv.Itoa(s.TotalStock)),
			col.New(3).Add(
				text.New("Valor total", props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
				text.New(export.FormatCurrency(s.TotalValue), props.Text{
					Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 6, Color: colorPrimary,
				}),
			),
			kpi("Stock bajo", strconv.Itoa(s.LowStockCount)),
			kpi("Sin stock", strconv.Itoa(s.OutOfStockCount)),
			col.New(1),
		),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Movimientos hoy: %d   |   Movimientos totales: %d", s.TodayMovements, s.TotalMovements),
				props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 4}),
	))
}

func emptyRow(msg string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

// column etiqueta y ancho (sobre 12) de una columna de tabla.
type column struct {
	label string
	size  int
}

func headerCells(cells ...column) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func cell(s string, size int) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Top: 1, Left: 1}))
}

func categoryRows(list []dto.CategoryShareDTO) []core.Row {
	rows := make([]core.Row, 0, len(list))
	for _, c := range list {
		rows = append(rows, row.New(6).Add(
			cell(c.Category, 6),
			cell(strconv.Itoa(c.Count)+" productos", 3),
			cell(c.Percentage.StringFixed(1)+"%", 3),
		))
	}
	return rows
}

func lowStockHeaderRow() core.Row {
	return headerCells(
		column{"Código", 2},
		column{"Producto", 5},
		column{"Stock", 1},
		column{"Mínimo", 1},
		column{"Estado", 3},
	)
}

func lowStockRows(list []dto.ProductResponse) []core.Row {
	rows := make([]core.Row, 0, len(list))
	for _, p := range list {
		color := colorWarning
		if p.Stock == 0 {
			color = colorDanger
		}
		rows = append(rows, row.New(6).Add(
			cell(p.Code, 2),
			cell(p.Name, 5),
			cell(strconv.Itoa(p.Stock), 1),
			cell(strconv.Itoa(p.MinStock), 1),
			col.New(3).Add(text.New(p.Status.Text, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Color: color,
			})),
		))
	}
	return rows
}

func movementsHeaderRow() core.Row {
	return headerCells(
		column{"Fecha", 3},
		column{"Producto", 4},
		column{"Tipo", 1},
		column{"Cant.", 1},
		column{"Usuario", 3},
	)
}

func movementRows(list []dto.MovementResponse) []core.Row {
	rows := make([]core.Row, 0, len(list))
	for _, m := range list {
		rows = append(rows, row.New(6).Add(
			cell(export.FormatDate(m.CreatedAt, true), 3),
			cell(m.ProductName, 4),
			cell(m.TypeLabel, 1),
			cell(strconv.Itoa(m.Units), 1),
			cell(m.UserName, 3),
		))
	}
	return rows
}
