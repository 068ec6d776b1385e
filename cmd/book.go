package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dannyvin11/resy-bot/internal/application/usecases"
	"github.com/dannyvin11/resy-bot/internal/config"
	"github.com/dannyvin11/resy-bot/internal/domain/reservation"
)

func newBookCmd() *cobra.Command {
	var (
		partySize int
		resDate   string
		resTime   string
	)

	c := &cobra.Command{
		Use:   "book [restaurant name or resy.com URL]",
		Short: "Search for a restaurant and book the first available slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			input := ""
			if len(args) == 1 {
				input = args[0]
			} else {
				input, err = promptRestaurant(cmd)
				if err != nil {
					return err
				}
			}
			query := reservation.ParseVenueQuery(input)

			prefs := reservation.Preferences{PartySize: partySize, DiningTime: resTime}
			if resDate != "" {
				d, err := time.ParseInLocation("2006-01-02", resDate, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date (want YYYY-MM-DD)")
				}
				prefs.Date = d
			}
			now := time.Now()
			prefs = prefs.WithDefaults(cfg.DefaultPartySize, cfg.DefaultDiningTime, now)
			if err := prefs.Validate(now); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			fmt.Printf("Booking %q for %d on %s (preferred time %s)...\n",
				query.Text, prefs.PartySize, prefs.Date.Format("2006-01-02"), prefs.DiningTime)

			uc := usecases.FindAndBook{Provider: newResyClient(cfg)}
			conf, err := uc.Execute(ctx, query, prefs)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen, color.Bold)
			green.Println("Reservation booked!")
			fmt.Printf("  Restaurant: %s\n", conf.VenueName)
			fmt.Printf("  Time:       %s\n", conf.SlotStart.Format("2006-01-02 15:04"))
			if conf.ReservationID != "" {
				fmt.Printf("  Confirmation: %s\n", conf.ReservationID)
			}
			return nil
		},
	}

	c.Flags().IntVar(&partySize, "party-size", 0, "party size (default from DEFAULT_PARTY_SIZE)")
	c.Flags().StringVar(&resDate, "date", "", "reservation date YYYY-MM-DD (default tomorrow)")
	c.Flags().StringVar(&resTime, "time", "", "preferred time HH:MM (default from DEFAULT_DINING_TIME)")
	return c
}

func promptRestaurant(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Enter restaurant name or Resy URL: ")
	r := bufio.NewReader(cmd.InOrStdin())
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read restaurant name: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("restaurant name required")
	}
	return line, nil
}
