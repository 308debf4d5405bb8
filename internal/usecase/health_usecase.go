package usecase

import (
	"context"
	"time"
)

// Pinger is satisfied by the document store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	store Pinger
}

func NewHealthUsecase(store Pinger) HealthUsecase {
	return &healthUsecase{store: store}
}

// Check reports ok only when the document store answers a ping.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := u.store.Ping(ctx); err != nil {
		return map[string]string{
			"status": "degraded",
			"store":  "down",
		}, false
	}
	return map[string]string{
		"status": "ok",
		"store":  "up",
	}, true
}
