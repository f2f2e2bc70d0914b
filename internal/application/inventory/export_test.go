package inventory

import "time"

// SetClock fija el reloj de los casos de uso en tests.
func SetClock(uc *MovementUseCase, clock func() time.Time) { uc.clock = clock }

func SetReplenishmentClock(uc *ReplenishmentUseCase, clock func() time.Time) { uc.clock = clock }
