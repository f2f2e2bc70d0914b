package entity

import (
	"errors"
	"strings"
)

// Category representa una categoría de productos. Los productos la referencian por Name.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewCategory construye una categoría con nombre obligatorio.
func NewCategory(id, name, description string) (*Category, error) {
	if id == "" {
		return nil, errors.New("categoría: id requerido")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("categoría: nombre requerido")
	}
	return &Category{ID: id, Name: strings.TrimSpace(name), Description: description}, nil
}

// DefaultCategories categorías sembradas en la inicialización.
func DefaultCategories() []*Category {
	return []*Category{
		{ID: "1", Name: "Electrónicos", Description: "Productos electrónicos y tecnología"},
		{ID: "2", Name: "Alimentos", Description: "Productos alimenticios"},
		{ID: "3", Name: "Bebidas", Description: "Bebidas y líquidos"},
		{ID: "4", Name: "Oficina", Description: "Material de oficina"},
		{ID: "5", Name: "Limpieza", Description: "Productos de limpieza"},
		{ID: "6", Name: "Ferretería", Description: "Herramientas y materiales"},
		{ID: "7", Name: "Textil", Description: "Ropa y telas"},
		{ID: "8", Name: "Otros", Description: "Productos varios"},
	}
}
