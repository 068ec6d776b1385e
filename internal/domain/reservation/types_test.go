package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences_WithDefaults(t *testing.T) {
	now := time.Date(2026, 9, 11, 14, 0, 0, 0, time.UTC)

	p := Preferences{}.WithDefaults(2, "19:00", now)
	assert.Equal(t, 2, p.PartySize)
	assert.Equal(t, "19:00", p.DiningTime)
	assert.Equal(t, "2026-09-12", p.Date.Format("2006-01-02"), "default date is tomorrow")

	// explicit values survive
	explicit := Preferences{PartySize: 4, DiningTime: "20:30", Date: now.AddDate(0, 0, 5)}
	p = explicit.WithDefaults(2, "19:00", now)
	assert.Equal(t, explicit, p)
}

func TestPreferences_Validate(t *testing.T) {
	now := time.Date(2026, 9, 11, 14, 0, 0, 0, time.UTC)

	ok := Preferences{PartySize: 2, Date: now, DiningTime: "19:00"}
	require.NoError(t, ok.Validate(now), "today is allowed")

	past := Preferences{PartySize: 2, Date: now.AddDate(0, 0, -1)}
	assert.Error(t, past.Validate(now))

	zeroParty := Preferences{PartySize: 0, Date: now.AddDate(0, 0, 1)}
	assert.Error(t, zeroParty.Validate(now))

	badTime := Preferences{PartySize: 2, Date: now, DiningTime: "7pm"}
	assert.Error(t, badTime.Validate(now))
}

// A date flag parses to UTC midnight; in zones behind UTC that instant is
// still "yesterday evening" on the local clock. Same calendar day must
// validate regardless.
func TestPreferences_Validate_TodayAcrossZones(t *testing.T) {
	eastern, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	now := time.Date(2026, 9, 12, 10, 0, 0, 0, eastern)

	utcMidnight, err := time.Parse("2006-01-02", "2026-09-12")
	require.NoError(t, err)

	today := Preferences{PartySize: 2, Date: utcMidnight}
	assert.NoError(t, today.Validate(now), "same calendar day is not past")

	yesterday := Preferences{PartySize: 2, Date: utcMidnight.AddDate(0, 0, -1)}
	assert.Error(t, yesterday.Validate(now))
}

func TestCredentials_Validate(t *testing.T) {
	assert.NoError(t, Credentials{APIKey: "k", AuthToken: "t"}.Validate())
	assert.ErrorIs(t, Credentials{APIKey: "k"}.Validate(), ErrInvalidCredentials)
	assert.ErrorIs(t, Credentials{AuthToken: "t"}.Validate(), ErrInvalidCredentials)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "RestaurantNotFound", Kind(ErrRestaurantNotFound))
	assert.Equal(t, "NoAvailability", Kind(ErrNoAvailability))
	assert.Equal(t, "InvalidCredentials", Kind(ErrInvalidCredentials))
	assert.Equal(t, "BookingFailed", Kind(&BookingError{Status: 500}))
	assert.Equal(t, "NetworkError", Kind(&NetworkError{Op: "book"}))
	assert.Equal(t, "", Kind(nil))
}
