package inventory

import (
	"context"
	"slices"
	"time"

	"github.com/jhoicas/sistema-inventarios/internal/application/dto"
	"github.com/jhoicas/sistema-inventarios/internal/domain/entity"
	"github.com/jhoicas/sistema-inventarios/pkg/textnorm"
)

const (
	defaultRecent = 10
	defaultDays   = 7
)

// Topes de las consultas por cantidad: valores mayores se recortan.
const (
	MaxRecent = 100
	MaxDays   = 366
)

// StartOfDay medianoche local del día de t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// FilterMovements aplica los filtros y ordena por fecha descendente (estable ante empates).
func FilterMovements(list []*entity.Movement, f dto.MovementFilters) []*entity.Movement {
	out := make([]*entity.Movement, 0, len(list))
	var to time.Time
	if !f.DateTo.IsZero() {
		to = endOfDay(f.DateTo)
	}
	for _, m := range list {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.UserID != "" && m.UserID != f.UserID {
			continue
		}
		if !f.DateFrom.IsZero() && m.CreatedAt.Before(f.DateFrom) {
			continue
		}
		if !to.IsZero() && m.CreatedAt.After(to) {
			continue
		}
		if !textnorm.Contains(f.Search, m.ProductCode, m.ProductName, m.Reason, m.Notes, m.UserName) {
			continue
		}
		out = append(out, m)
	}
	SortNewestFirst(out)
	return out
}

// SortNewestFirst ordena in place por CreatedAt descendente.
func SortNewestFirst(list []*entity.Movement) {
	slices.SortStableFunc(list, func(a, b *entity.Movement) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func (uc *MovementUseCase) filtered(ctx context.Context, f dto.MovementFilters) ([]*entity.Movement, error) {
	list, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterMovements(list, f), nil
}

// Query consulta el libro con filtros explícitos, más recientes primero.
func (uc *MovementUseCase) Query(ctx context.Context, f dto.MovementFilters) ([]dto.MovementResponse, error) {
	list, err := uc.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.FromMovements(list), nil
}

// Recent los n movimientos más recientes (10 si n <= 0, como máximo MaxRecent).
func (uc *MovementUseCase) Recent(ctx context.Context, n int) ([]dto.MovementResponse, error) {
	if n <= 0 {
		n = defaultRecent
	}
	n = min(n, MaxRecent)
	list, err := uc.filtered(ctx, dto.MovementFilters{})
	if err != nil {
		return nil, err
	}
	if len(list) > n {
		list = list[:n]
	}
	return dto.FromMovements(list), nil
}

// Today movimientos del día local en curso.
func (uc *MovementUseCase) Today(ctx context.Context) ([]dto.MovementResponse, error) {
	now := uc.clock()
	return uc.Query(ctx, dto.MovementFilters{DateFrom: StartOfDay(now), DateTo: now})
}

// MonthToDate movimientos desde el día 1 del mes hasta ahora.
func (uc *MovementUseCase) MonthToDate(ctx context.Context) ([]dto.MovementResponse, error) {
	now := uc.clock()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	list, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Movement, 0)
	for _, m := range list {
		if !m.CreatedAt.Before(first) && !m.CreatedAt.After(now) {
			out = append(out, m)
		}
	}
	SortNewestFirst(out)
	return dto.FromMovements(out), nil
}

// ByDay exactamente days cubetas (7 si days <= 0, como máximo MaxDays), de la más
// antigua a hoy, incluidos los días sin movimientos.
func (uc *MovementUseCase) ByDay(ctx context.Context, days int) ([]dto.DayBucket, error) {
	if days <= 0 {
		days = defaultDays
	}
	days = min(days, MaxDays)
	list, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := StartOfDay(uc.clock())
	buckets := make([]dto.DayBucket, days)
	index := make(map[int64]int, days)
	for i := range buckets {
		day := today.AddDate(0, 0, i-days+1)
		buckets[i] = dto.DayBucket{Date: day, Label: day.Format("02/01/2006")}
		index[day.Unix()] = i
	}
	for _, m := range list {
		i, ok := index[StartOfDay(m.CreatedAt.In(today.Location())).Unix()]
		if !ok {
			continue
		}
		buckets[i].Total++
		if m.Type == entity.MovementTypeEntrada {
			buckets[i].Entradas++
		} else {
			buckets[i].Salidas++
		}
	}
	return buckets, nil
}

// Statistics totales de los movimientos que pasan los filtros.
func (uc *MovementUseCase) Statistics(ctx context.Context, f dto.MovementFilters) (dto.MovementStatistics, error) {
	list, err := uc.filtered(ctx, f)
	if err != nil {
		return dto.MovementStatistics{}, err
	}
	return Summarize(list), nil
}

// Summarize cuenta entradas, salidas y unidades de la lista.
func Summarize(list []*entity.Movement) dto.MovementStatistics {
	var s dto.MovementStatistics
	s.Total = len(list)
	for _, m := range list {
		if m.Type == entity.MovementTypeEntrada {
			s.Entradas++
			s.TotalEntradasQuantity += m.Units()
		} else {
			s.Salidas++
			s.TotalSalidasQuantity += m.Units()
		}
	}
	s.Balance = s.TotalEntradasQuantity - s.TotalSalidasQuantity
	return s
}

// ReasonsByType razones reconocidas para el tipo de movimiento.
func (uc *MovementUseCase) ReasonsByType(movType string) []string {
	return slices.Clone(entity.ReasonsByType(movType))
}
