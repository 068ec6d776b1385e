package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dannyvin11/resy-bot/internal/domain/reservation"
)

// FindAndBook runs the one-shot workflow: resolve the restaurant, fetch
// availability for the target date, take the first slot, book it. One search,
// one availability and one booking call per Execute; the first failure is
// terminal and no later call is issued.
type FindAndBook struct {
	Provider reservation.BookingProvider
}

func (u FindAndBook) Execute(ctx context.Context, query reservation.VenueQuery, prefs reservation.Preferences) (reservation.Confirmation, error) {
	if u.Provider == nil {
		return reservation.Confirmation{}, fmt.Errorf("provider is nil")
	}
	if query.Text == "" {
		return reservation.Confirmation{}, fmt.Errorf("restaurant name required")
	}
	if err := prefs.Validate(time.Now()); err != nil {
		return reservation.Confirmation{}, err
	}

	venue, err := u.resolve(ctx, query, prefs)
	if err != nil {
		return reservation.Confirmation{}, err
	}

	slots, err := u.Provider.FindSlots(ctx, venue.ID, prefs.Date, prefs.PartySize)
	if err != nil {
		return reservation.Confirmation{}, err
	}
	slot, ok := reservation.FirstSlot(slots)
	if !ok {
		return reservation.Confirmation{}, reservation.ErrNoAvailability
	}

	conf, err := u.Provider.Book(ctx, slot, prefs.Date, prefs.PartySize)
	if err != nil {
		return reservation.Confirmation{}, err
	}
	if conf.VenueName == "" {
		conf.VenueName = venue.Name
	}
	if conf.SlotStart.IsZero() {
		conf.SlotStart = slot.Start
	}
	return conf, nil
}

// resolve maps the user's input to a venue. URL slugs get a direct lookup
// first with a search fallback, names go straight to search. Either way the
// first match wins.
func (u FindAndBook) resolve(ctx context.Context, query reservation.VenueQuery, prefs reservation.Preferences) (reservation.Venue, error) {
	if query.IsSlug {
		v, err := u.Provider.LookupVenue(ctx, query.Text)
		if err == nil {
			return v, nil
		}
		var ne *reservation.NetworkError
		if errors.As(err, &ne) || errors.Is(err, reservation.ErrInvalidCredentials) {
			return reservation.Venue{}, err
		}
		// lookup miss, fall back to search on the slug text
	}
	matches, err := u.Provider.SearchVenues(ctx, query.Text, prefs.Date, prefs.PartySize)
	if err != nil {
		return reservation.Venue{}, err
	}
	venue, ok := reservation.FirstVenue(matches)
	if !ok {
		return reservation.Venue{}, reservation.ErrRestaurantNotFound
	}
	return venue, nil
}
