package entity

import (
	"errors"
	"fmt"
	"time"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
)

// Razones reconocidas por tipo. "Otro" admite texto libre en Notes.
var (
	EntryReasons = []string{
		"Compra",
		"Devolución de cliente",
		"Ajuste de inventario",
		"Donación",
		"Producción interna",
		"Otro",
	}
	ExitReasons = []string{
		"Venta",
		"Devolución a proveedor",
		"Pérdida",
		"Daño",
		"Robo",
		"Uso interno",
		"Donación",
		"Ajuste de inventario",
		"Otro",
	}
)

// ReasonInitialStock razón del movimiento sintético que acompaña la creación de un producto.
const ReasonInitialStock = "Stock inicial"

// IsValidMovementType indica si t es entrada o salida.
func IsValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSalida
}

// ReasonsByType devuelve las razones según el tipo de movimiento.
func ReasonsByType(t string) []string {
	if t == MovementTypeEntrada {
		return EntryReasons
	}
	return ExitReasons
}

// Movement registro inmutable de un cambio de stock.
// Quantity lleva signo: positivo en entrada, negativo en salida.
// ProductCode/ProductName y UserName son copias tomadas al momento de registrar.
type Movement struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	ProductCode   string    `json:"productCode"`
	ProductName   string    `json:"productName"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	Reason        string    `json:"reason"`
	Notes         string    `json:"notes"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewMovement construye un movimiento a partir del producto antes del cambio.
// Falla si el delta no corresponde al tipo o si el stock resultante sería negativo.
func NewMovement(id string, product *Product, movType string, delta int, reason, notes string, actor Actor, now time.Time) (*Movement, error) {
	if id == "" {
		return nil, errors.New("movimiento: id requerido")
	}
	if product == nil {
		return nil, errors.New("movimiento: producto requerido")
	}
	switch movType {
	case MovementTypeEntrada:
		if delta <= 0 {
			return nil, fmt.Errorf("movimiento: entrada con cantidad %d", delta)
		}
	case MovementTypeSalida:
		if delta >= 0 {
			return nil, fmt.Errorf("movimiento: salida con cantidad %d", delta)
		}
	default:
		return nil, fmt.Errorf("movimiento: tipo %q inválido", movType)
	}
	newStock := product.Stock + delta
	if newStock < 0 {
		return nil, fmt.Errorf("movimiento: stock resultante %d", newStock)
	}
	return &Movement{
		ID:            id,
		ProductID:     product.ID,
		ProductCode:   product.Code,
		ProductName:   product.Name,
		Type:          movType,
		Quantity:      delta,
		Reason:        reason,
		Notes:         notes,
		PreviousStock: product.Stock,
		NewStock:      newStock,
		UserID:        actor.ID,
		UserName:      actor.DisplayName(),
		CreatedAt:     now,
	}, nil
}

// Units devuelve la magnitud de la cantidad (unidades movidas).
func (m *Movement) Units() int {
	if m.Quantity < 0 {
		return -m.Quantity
	}
	return m.Quantity
}

// TypeLabel "Entrada" o "Salida".
func (m *Movement) TypeLabel() string {
	if m.Type == MovementTypeEntrada {
		return "Entrada"
	}
	return "Salida"
}
