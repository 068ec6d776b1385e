package reservation

import (
	"context"
	"time"
)

// BookingProvider is the upstream reservation platform. Exact JSON shapes are
// vendor-defined; implementations translate them into the types above and
// treat commit tokens as opaque.
type BookingProvider interface {
	Name() string
	Ping(ctx context.Context) error
	SearchVenues(ctx context.Context, query string, date time.Time, partySize int) ([]Venue, error)
	LookupVenue(ctx context.Context, slug string) (Venue, error)
	FindSlots(ctx context.Context, venueID string, date time.Time, partySize int) ([]Slot, error)
	Book(ctx context.Context, slot Slot, date time.Time, partySize int) (Confirmation, error)
}
