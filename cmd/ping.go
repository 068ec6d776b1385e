package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dannyvin11/resy-bot/internal/application/usecases"
	"github.com/dannyvin11/resy-bot/internal/config"
	"github.com/dannyvin11/resy-bot/internal/logging"
	"github.com/dannyvin11/resy-bot/internal/resy"
)

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Verify the Resy credentials in the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			client := newResyClient(cfg)

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			uc := usecases.PingProvider{Provider: client}
			if err := uc.Execute(ctx); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", client.Name())
			return nil
		},
	}
}

func newResyClient(cfg config.Config) *resy.Client {
	return resy.New(
		cfg.Credentials,
		resy.SearchContext{
			Lat:      cfg.SearchLat,
			Lng:      cfg.SearchLng,
			Location: cfg.SearchLocation,
			Radius:   cfg.SearchRadius,
		},
		logging.New(cfg.LogLevel),
		resy.WithTimeout(cfg.HTTPTimeout),
	)
}
