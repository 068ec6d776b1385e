package usecases

import (
	"context"
	"fmt"

	"github.com/dannyvin11/resy-bot/internal/domain/reservation"
)

type PingProvider struct {
	Provider reservation.BookingProvider
}

func (u PingProvider) Execute(ctx context.Context) error {
	if u.Provider == nil {
		return fmt.Errorf("provider is nil")
	}
	return u.Provider.Ping(ctx)
}
