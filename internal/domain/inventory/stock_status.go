package inventory

// Niveles de stock usados por filtros y reportes.
const (
	LevelSinStock = "sin_stock"
	LevelBajo     = "bajo"
	LevelNormal   = "normal"
	LevelAlto     = "alto"
)

// StockStatus clasificación de salud del stock de un producto.
type StockStatus struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Class string `json:"class"`
	Badge string `json:"badge"`
}

// ClassifyStock es la única fuente de verdad para el estado del stock:
//
//	stock == 0                 → Sin Stock
//	stock <= minStock          → Stock Bajo
//	stock <= 150% de minStock  → Stock Normal
//	resto                      → Stock Alto
func ClassifyStock(stock, minStock int) StockStatus {
	switch {
	case stock == 0:
		return StockStatus{Level: LevelSinStock, Text: "Sin Stock", Class: "danger", Badge: "badge-stock-bajo"}
	case stock <= minStock:
		return StockStatus{Level: LevelBajo, Text: "Stock Bajo", Class: "warning", Badge: "badge-stock-bajo"}
	case minStock > 0 && stock*2 <= minStock*3:
		return StockStatus{Level: LevelNormal, Text: "Stock Normal", Class: "success", Badge: "badge-stock-normal"}
	default:
		return StockStatus{Level: LevelAlto, Text: "Stock Alto", Class: "info", Badge: "badge-stock-alto"}
	}
}

// MatchesLevel indica si (stock, minStock) pertenece al nivel de filtro pedido.
// "bajo" incluye los productos sin stock. Un nivel desconocido o vacío no filtra.
func MatchesLevel(stock, minStock int, level string) bool {
	status := ClassifyStock(stock, minStock)
	switch level {
	case LevelBajo:
		return status.Level == LevelBajo || status.Level == LevelSinStock
	case LevelNormal, LevelAlto, LevelSinStock:
		return status.Level == level
	default:
		return true
	}
}

// StockPercentage porcentaje de stock respecto del mínimo, redondeado hacia abajo.
func StockPercentage(stock, minStock int) int {
	if minStock <= 0 {
		return 0
	}
	return stock * 100 / minStock
}
