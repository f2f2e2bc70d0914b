package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-inventarios/internal/domain/inventory"
)

// ProductRequest entrada para crear o editar un producto.
// Los numéricos son punteros para distinguir "ausente" de cero al validar.
type ProductRequest struct {
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"` // se ignora al editar
	MinStock    *int             `json:"min_stock"`
}

// ProductResponse salida de un producto con su estado de stock calculado.
type ProductResponse struct {
	ID          string                `json:"id"`
	Code        string                `json:"code"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Price       decimal.Decimal       `json:"price"`
	Stock       int                   `json:"stock"`
	MinStock    int                   `json:"min_stock"`
	StockValue  decimal.Decimal       `json:"stock_value"`
	Status      inventory.StockStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// ProductResult respuesta uniforme de create/edit.
type ProductResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Product *ProductResponse `json:"product,omitempty"`
}

// ProductFilters estado de filtros de la lista de productos. Lo arma quien consulta
// y se pasa explícitamente a ApplyFilters.
type ProductFilters struct {
	Search     string `query:"search"`
	Category   string `query:"category"`
	StockLevel string `query:"stock_level"` // bajo, normal, alto
	SortField  string `query:"sort"`        // code, name, category, price, stock, min_stock, created_at
	SortDir    string `query:"dir"`         // asc, desc
}

// ProductsSummary resumen global de productos.
type ProductsSummary struct {
	Total      int             `json:"total"`
	TotalStock int             `json:"total_stock"`
	TotalValue decimal.Decimal `json:"total_value"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
	Categories int             `json:"categories"`
}

// CategoryRequest entrada para crear una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResult respuesta uniforme de creación de categoría.
type CategoryResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Category *CategoryResponse `json:"category,omitempty"`
}
