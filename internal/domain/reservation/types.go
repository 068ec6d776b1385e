package reservation

import (
	"fmt"
	"time"
)

// Preferences describe what the user wants booked. Immutable once built for a
// run; zero fields are filled from config defaults before validation.
type Preferences struct {
	PartySize  int
	Date       time.Time // calendar date in the venue's locale
	DiningTime string    // HH:MM, informational only (no slot filtering)
}

// WithDefaults returns a copy with missing fields filled in: party size and
// dining time from config, date set to tomorrow.
func (p Preferences) WithDefaults(partySize int, diningTime string, now time.Time) Preferences {
	if p.PartySize == 0 {
		p.PartySize = partySize
	}
	if p.Date.IsZero() {
		p.Date = now.AddDate(0, 0, 1)
	}
	if p.DiningTime == "" {
		p.DiningTime = diningTime
	}
	return p
}

func (p Preferences) Validate(now time.Time) error {
	if p.PartySize < 1 {
		return fmt.Errorf("party size must be >= 1 (got %d)", p.PartySize)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("reservation date required")
	}
	// Calendar-date comparison, each in its own zone: a date parsed as UTC
	// midnight must not read as "yesterday" (and get rejected) just because
	// the host clock runs behind UTC.
	if p.Date.Format("2006-01-02") < now.Format("2006-01-02") {
		return fmt.Errorf("reservation date %s is in the past", p.Date.Format("2006-01-02"))
	}
	if p.DiningTime != "" {
		if _, err := time.Parse("15:04", p.DiningTime); err != nil {
			return fmt.Errorf("invalid dining time %q (want HH:MM)", p.DiningTime)
		}
	}
	return nil
}

// Venue is a restaurant returned by search. Only the first result of a search
// is ever selected; API order is preserved, no re-ranking.
type Venue struct {
	ID           string
	Name         string
	Slug         string
	Neighborhood string
}

// Slot is a bookable time/table combination. Token is the opaque commit token
// required to finalize the booking.
type Slot struct {
	Start time.Time
	Type  string
	Token string
}

// Confirmation is the result of a successful booking.
type Confirmation struct {
	ReservationID string
	ResyToken     string
	VenueName     string
	SlotStart     time.Time
}

// Credentials hold the Resy API key and auth token captured from an
// authenticated browser session. Never persisted by the workflow.
type Credentials struct {
	APIKey    string
	AuthToken string
}

func (c Credentials) Validate() error {
	if c.APIKey == "" || c.AuthToken == "" {
		return ErrInvalidCredentials
	}
	return nil
}
