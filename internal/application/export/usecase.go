package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/sistema-inventarios/internal/application/analytics"
	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	appinventory "github.com/jhoicas/sistema-inventarios/internal/application/inventory"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/internal/domain/repository"
)

// ReportData contenido del reporte de inventario en PDF.
type ReportData struct {
	CompanyName     string
	GeneratedAt     time.Time
	Stats           dto.InventoryStatsDTO
	Categories      []dto.CategoryShareDTO
	LowStock        []dto.ProductResponse
	RecentMovements []dto.MovementResponse
}

// ReportRenderer convierte el reporte en un documento (PDF).
type ReportRenderer interface {
	RenderInventoryReport(ctx context.Context, data *ReportData) ([]byte, error)
}

// UseCase prepara las exportaciones de productos, movimientos y estadísticas.
type UseCase struct {
	productRepo  repository.ProductRepository
	movRepo      repository.MovementRepository
	settingsRepo repository.SettingsRepository
	stats        *analytics.StatisticsUseCase
	dashboard    *analytics.DashboardUseCase
	renderer     ReportRenderer
	clock        func() time.Time
}

// NewUseCase construye el caso de uso. renderer puede ser nil si no se exporta PDF.
func NewUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	settingsRepo repository.SettingsRepository,
	stats *analytics.StatisticsUseCase,
	dashboard *analytics.DashboardUseCase,
	renderer ReportRenderer,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		movRepo:      movRepo,
		settingsRepo: settingsRepo,
		stats:        stats,
		dashboard:    dashboard,
		renderer:     renderer,
		clock:        time.Now,
	}
}

// Products filas de todos los productos.
func (uc *UseCase) Products(ctx context.Context) ([]Row, error) {
	list, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return PrepareProductsForExport(list), nil
}

// Movements filas de los movimientos que pasan los filtros, más recientes primero.
func (uc *UseCase) Movements(ctx context.Context, f dto.MovementFilters) ([]Row, error) {
	list, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return PrepareMovementsForExport(appinventory.FilterMovements(list, f)), nil
}

// StatsReport indicadores generales del inventario.
func (uc *UseCase) StatsReport(ctx context.Context) ([]Row, error) {
	stats, err := uc.stats.InventoryStats(ctx)
	if err != nil {
		return nil, err
	}
	return PrepareStatsReport(*stats, uc.clock()), nil
}

// Report reúne los datos del reporte PDF.
func (uc *UseCase) Report(ctx context.Context) (*ReportData, error) {
	board, err := uc.dashboard.Dashboard(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.stats.CategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}
	settings := entity.DefaultSettings()
	if uc.settingsRepo != nil {
		if settings, err = uc.settingsRepo.Get(ctx); err != nil {
			return nil, err
		}
	}
	return &ReportData{
		CompanyName:     settings.CompanyName,
		GeneratedAt:     board.GeneratedAt,
		Stats:           board.Stats,
		Categories:      categories,
		LowStock:        board.LowStock,
		RecentMovements: board.RecentMovements,
	}, nil
}

// ReportPDF genera el PDF del reporte y su nombre de archivo.
func (uc *UseCase) ReportPDF(ctx context.Context) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("export: generador de PDF no configurado")
	}
	data, err := uc.Report(ctx)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.renderer.RenderInventoryReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar pdf: %w", err)
	}
	return doc, Filename("reporte_inventario", "pdf", data.GeneratedAt), nil
}
