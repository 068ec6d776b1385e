package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dannyvin11/resy-bot/internal/domain/reservation"
)

type Config struct {
	Credentials reservation.Credentials

	DefaultPartySize  int
	DefaultDiningTime string // HH:MM

	// Search context sent with venue search. Defaults target Orlando, the
	// area this bot was written for.
	SearchLat      string
	SearchLng      string
	SearchLocation string
	SearchRadius   string

	HTTPTimeout time.Duration
	LogLevel    string
}

// FromEnv loads configuration from the environment, reading a .env file
// first when one is present. Missing credentials are a hard error.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Credentials: reservation.Credentials{
			APIKey:    strings.TrimSpace(os.Getenv("RESY_API_KEY")),
			AuthToken: strings.TrimSpace(os.Getenv("RESY_AUTH_TOKEN")),
		},
		DefaultDiningTime: envDefault("DEFAULT_DINING_TIME", "19:00"),
		SearchLat:         envDefault("SEARCH_LAT", "28.538300"),
		SearchLng:         envDefault("SEARCH_LNG", "-81.379200"),
		SearchLocation:    envDefault("SEARCH_LOCATION", "orlando-fl"),
		SearchRadius:      envDefault("SEARCH_RADIUS", "20"),
		LogLevel:          envDefault("LOG_LEVEL", "info"),
	}

	if err := cfg.Credentials.Validate(); err != nil {
		return Config{}, fmt.Errorf("RESY_API_KEY and RESY_AUTH_TOKEN are required: %w", err)
	}

	partySize, err := strconv.Atoi(envDefault("DEFAULT_PARTY_SIZE", "2"))
	if err != nil || partySize < 1 {
		return Config{}, fmt.Errorf("invalid DEFAULT_PARTY_SIZE")
	}
	cfg.DefaultPartySize = partySize

	if _, err := time.Parse("15:04", cfg.DefaultDiningTime); err != nil {
		return Config{}, fmt.Errorf("invalid DEFAULT_DINING_TIME (want HH:MM): %w", err)
	}

	timeoutSec, err := strconv.Atoi(envDefault("HTTP_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSec < 1 {
		return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS")
	}
	cfg.HTTPTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}

func envDefault(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
