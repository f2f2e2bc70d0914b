package analytics

import "time"

func SetClock(uc *StatisticsUseCase, clock func() time.Time) { uc.clock = clock }
