package analytics

import (
	"context"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	appinventory "github.com/jhoicas/sistema-inventarios/internal/application/inventory"
)

const (
	dashboardRecent   = 5 // movimientos recientes del panel
	dashboardLowStock = 5 // productos críticos del panel
)

// DashboardUseCase arma el panel principal: KPIs, últimos movimientos y productos críticos.
type DashboardUseCase struct {
	stats *StatisticsUseCase
}

// NewDashboardUseCase construye el caso de uso sobre las agregaciones.
func NewDashboardUseCase(stats *StatisticsUseCase) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// Dashboard recalcula el panel desde una única lectura de productos y movimientos.
func (uc *DashboardUseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	products, movements, err := uc.stats.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.stats.clock()

	recent := appinventory.FilterMovements(movements, dto.MovementFilters{})
	if len(recent) > dashboardRecent {
		recent = recent[:dashboardRecent]
	}
	critical := lowStock(products)
	if len(critical) > dashboardLowStock {
		critical = critical[:dashboardLowStock]
	}

	return &dto.DashboardDTO{
		Stats:           computeStats(products, movements, now),
		RecentMovements: dto.FromMovements(recent),
		LowStock:        dto.FromProducts(critical),
		GeneratedAt:     now,
	}, nil
}
