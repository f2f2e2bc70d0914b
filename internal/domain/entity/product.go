package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock solo cambia a través de movimientos; la edición directa lo ignora.
type Product struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"` // único entre productos vigentes
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"` // nombre de la categoría, no su id
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"` // umbral de alerta de stock bajo
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewProduct construye un producto verificando los campos obligatorios.
func NewProduct(id, code, name, description, category string, price decimal.Decimal, stock, minStock int, now time.Time) (*Product, error) {
	switch {
	case id == "":
		return nil, errors.New("producto: id requerido")
	case strings.TrimSpace(code) == "":
		return nil, errors.New("producto: código requerido")
	case strings.TrimSpace(name) == "":
		return nil, errors.New("producto: nombre requerido")
	case strings.TrimSpace(category) == "":
		return nil, errors.New("producto: categoría requerida")
	case !price.IsPositive():
		return nil, errors.New("producto: precio debe ser positivo")
	case stock < 0:
		return nil, errors.New("producto: stock negativo")
	case minStock <= 0:
		return nil, errors.New("producto: stock mínimo debe ser positivo")
	}
	return &Product{
		ID:          id,
		Code:        code,
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		Stock:       stock,
		MinStock:    minStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// StockValue devuelve stock × precio.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// IsLowStock indica stock <= stock mínimo.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
