package analytics

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
)

// Refresher recalcula el panel cada intervalo y entrega la foto a onSnapshot.
// Solo lee; puede correr a la par de escrituras y simplemente verá el último estado guardado.
type Refresher struct {
	dashboard  *DashboardUseCase
	interval   time.Duration
	onSnapshot func(*dto.DashboardDTO)
}

// NewRefresher construye el refresco periódico. Con onSnapshot nil solo registra en el log.
func NewRefresher(dashboard *DashboardUseCase, interval time.Duration, onSnapshot func(*dto.DashboardDTO)) *Refresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Refresher{dashboard: dashboard, interval: interval, onSnapshot: onSnapshot}
}

// Run bloquea hasta que ctx se cancela. Calcula una foto inicial y luego una por tick.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("refresco del dashboard detenido")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	snap, err := r.dashboard.Dashboard(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Error().Err(err).Msg("refrescar dashboard")
		}
		return
	}
	log.Debug().
		Int("products", snap.Stats.TotalProducts).
		Int("low_stock", snap.Stats.LowStockCount).
		Int("today_movements", snap.Stats.TodayMovements).
		Msg("dashboard actualizado")
	if r.onSnapshot != nil {
		r.onSnapshot(snap)
	}
}
