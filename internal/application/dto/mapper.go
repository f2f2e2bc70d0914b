package dto

import (
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/inventory"
)

// FromProduct convierte la entidad en respuesta, calculando valor y estado del stock.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		StockValue:  p.StockValue(),
		Status:      inventory.ClassifyStock(p.Stock, p.MinStock),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromMovement convierte un movimiento del libro en respuesta.
func FromMovement(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductCode:   m.ProductCode,
		ProductName:   m.ProductName,
		Type:          m.Type,
		TypeLabel:     m.TypeLabel(),
		Quantity:      m.Quantity,
		Units:         m.Units(),
		Reason:        m.Reason,
		Notes:         m.Notes,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		UserID:        m.UserID,
		UserName:      m.UserName,
		CreatedAt:     m.CreatedAt,
	}
}

func FromMovements(list []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMovement(m))
	}
	return out
}

func FromCategory(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func FromActor(a entity.Actor) ActorResponse {
	return ActorResponse{ID: a.ID, Username: a.Username, FullName: a.FullName, Role: a.Role}
}

func FromSettings(s entity.Settings) SettingsDTO {
	return SettingsDTO{
		CompanyName:       s.CompanyName,
		LowStockThreshold: s.LowStockThreshold,
		Currency:          s.Currency,
		DateFormat:        s.DateFormat,
	}
}
