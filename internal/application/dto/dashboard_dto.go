package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventarios/internal/domain/inventory"
)

// InventoryStatsDTO KPIs globales del inventario.
type InventoryStatsDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalStock      int             `json:"total_stock"`
	TotalValue      decimal.Decimal `json:"total_value"` // Σ stock × precio
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	TodayMovements  int             `json:"today_movements"`
	TotalMovements  int             `json:"total_movements"`
}

// TopProductDTO producto con más unidades movidas.
type TopProductDTO struct {
	ProductID  string `json:"product_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Stock      int    `json:"stock"`
	TotalMoved int    `json:"total_moved"`
	Movements  int    `json:"movements"`
}

// UserActivityDTO movimientos registrados por un usuario.
type UserActivityDTO struct {
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name"`
	TotalMovements int    `json:"total_movements"`
	Entradas       int    `json:"entradas"`
	Salidas        int    `json:"salidas"`
}

// ProductStatisticsDTO estadísticas de un producto.
type ProductStatisticsDTO struct {
	Product        ProductResponse       `json:"product"`
	TotalEntradas  int                   `json:"total_entradas"`
	TotalSalidas   int                   `json:"total_salidas"`
	TotalMovements int                   `json:"total_movements"`
	StockValue     decimal.Decimal       `json:"stock_value"`
	Status         inventory.StockStatus `json:"status"`
	NeedsRestock   bool                  `json:"needs_restock"`
}

// CategoryShareDTO cantidad de productos de una categoría y su porcentaje del total.
type CategoryShareDTO struct {
	Category   string          `json:"category"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"` // 0–100, 1 decimal
}

// DashboardDTO respuesta de GET /api/dashboard: lo que refresca el panel periódicamente.
type DashboardDTO struct {
	Stats           InventoryStatsDTO  `json:"stats"`
	RecentMovements []MovementResponse `json:"recent_movements"`
	LowStock        []ProductResponse  `json:"low_stock"`
	GeneratedAt     time.Time          `json:"generated_at"`
}
