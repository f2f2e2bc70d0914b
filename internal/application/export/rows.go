package export

import (
	"strconv"
	"time"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/inventory"
)

// Field celda de una fila: encabezado de columna y valor ya formateado.
type Field struct {
	Key   string
	Value string
}

// Row fila exportable. El orden de los campos es el orden de las columnas.
type Row []Field

// Keys encabezados de la fila en orden.
func (r Row) Keys() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.Key
	}
	return out
}

// Values valores de la fila en orden.
func (r Row) Values() []string {
	out := make([]string, len(r))
	for i, f := range r {
		out[i] = f.Value
	}
	return out
}

// Get valor de la columna key, "" si no existe.
func (r Row) Get(key string) string {
	for _, f := range r {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// PrepareProductsForExport una fila por producto con estado y valor de stock.
func PrepareProductsForExport(products []*entity.Product) []Row {
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		status := inventory.ClassifyStock(p.Stock, p.MinStock)
		rows = append(rows, Row{
			{"Código", p.Code},
			{"Nombre", p.Name},
			{"Categoría", p.Category},
			{"Precio", FormatCurrency(p.Price)},
			{"Stock", strconv.Itoa(p.Stock)},
			{"Stock Mínimo", strconv.Itoa(p.MinStock)},
			{"Estado", status.Text},
			{"Valor en Stock", FormatCurrency(p.StockValue())},
			{"Creado", FormatDate(p.CreatedAt, false)},
		})
	}
	return rows
}

// PrepareMovementsForExport una fila por movimiento; Cantidad va sin signo.
func PrepareMovementsForExport(movements []*entity.Movement) []Row {
	rows := make([]Row, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, Row{
			{"Fecha/Hora", FormatDate(m.CreatedAt, true)},
			{"Producto", m.ProductName},
			{"Código", m.ProductCode},
			{"Tipo", m.TypeLabel()},
			{"Cantidad", strconv.Itoa(m.Units())},
			{"Razón", m.Reason},
			{"Notas", m.Notes},
			{"Usuario", m.UserName},
			{"Stock Anterior", strconv.Itoa(m.PreviousStock)},
			{"Stock Nuevo", strconv.Itoa(m.NewStock)},
		})
	}
	return rows
}

// PrepareStatsReport reporte de indicadores en filas Indicador/Valor.
func PrepareStatsReport(stats dto.InventoryStatsDTO, now time.Time) []Row {
	indicators := []Field{
		{"Fecha del Reporte", FormatDate(now, true)},
		{"Total de Productos", strconv.Itoa(stats.TotalProducts)},
		{"Stock Total", strconv.Itoa(stats.TotalStock)},
		{"Valor Total del Inventario", FormatCurrency(stats.TotalValue)},
		{"Productos con Stock Bajo", strconv.Itoa(stats.LowStockCount)},
		{"Productos sin Stock", strconv.Itoa(stats.OutOfStockCount)},
		{"Total de Movimientos", strconv.Itoa(stats.TotalMovements)},
		{"Movimientos Hoy", strconv.Itoa(stats.TodayMovements)},
	}
	rows := make([]Row, 0, len(indicators))
	for _, ind := range indicators {
		rows = append(rows, Row{{"Indicador", ind.Key}, {"Valor", ind.Value}})
	}
	return rows
}
