package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity es la magnitud pedida; el signo lo determina Type.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  *int   `json:"quantity"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductCode   string    `json:"product_code"`
	ProductName   string    `json:"product_name"`
	Type          string    `json:"type"`
	TypeLabel     string    `json:"type_label"`
	Quantity      int       `json:"quantity"` // con signo
	Units         int       `json:"units"`
	Reason        string    `json:"reason"`
	Notes         string    `json:"notes"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovementResult respuesta uniforme de un registro. LowStock y Alert son la señal
// de stock bajo; la presentación puede ignorarlas.
type MovementResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Movement *MovementResponse `json:"movement,omitempty"`
	LowStock bool              `json:"low_stock"`
	Alert    string            `json:"alert,omitempty"`
}

// MovementFilters filtros explícitos para consultar el libro. Campos vacíos no filtran.
// DateTo se extiende hasta el final del día.
type MovementFilters struct {
	Type      string
	ProductID string
	UserID    string
	DateFrom  time.Time
	DateTo    time.Time
	Search    string
}

// MovementStatistics totales de un conjunto de movimientos.
type MovementStatistics struct {
	Total                 int `json:"total"`
	Entradas              int `json:"entradas"`
	Salidas               int `json:"salidas"`
	TotalEntradasQuantity int `json:"total_entradas_quantity"`
	TotalSalidasQuantity  int `json:"total_salidas_quantity"`
	Balance               int `json:"balance"`
}

// DayBucket conteo de movimientos de un día local (medianoche a medianoche).
type DayBucket struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"` // DD/MM/YYYY
	Entradas int       `json:"entradas"`
	Salidas  int       `json:"salidas"`
	Total    int       `json:"total"`
}

// CanPerformRequest body para POST /api/inventory/check.
type CanPerformRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
}

// CanPerformResponse resultado del chequeo previo.
type CanPerformResponse struct {
	CanMove bool   `json:"can_move"`
	Message string `json:"message"`
}

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto en o bajo su mínimo.
type ReplenishmentSuggestionDTO struct {
	ProductID           string          `json:"product_id"`
	Code                string          `json:"code"`
	ProductName         string          `json:"product_name"`
	CurrentStock        int             `json:"current_stock"`
	MinStock            int             `json:"min_stock"`
	IdealStock          int             `json:"ideal_stock"`         // 150% del mínimo
	SuggestedOrderQty   int             `json:"suggested_order_qty"` // IdealStock - CurrentStock
	UnitPrice           decimal.Decimal `json:"unit_price"`
	EstimatedOrderValue decimal.Decimal `json:"estimated_order_value"`
	UnitsOutLast90Days  int             `json:"units_out_last_90d"`
	Priority            int             `json:"priority"` // 1 = más urgente
}

// ReplenishmentListResponse respuesta de GET /api/inventory/replenishment.
type ReplenishmentListResponse struct {
	Total          int                          `json:"total"`
	Replenishments []ReplenishmentSuggestionDTO `json:"replenishments"`
}

// ReasonsResponse razones sugeridas para un tipo de movimiento.
type ReasonsResponse struct {
	Type    string   `json:"type"`
	Reasons []string `json:"reasons"`
}
