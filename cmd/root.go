package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dannyvin11/resy-bot/internal/domain/reservation"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resybot",
		Short:         "One-shot bot that books the first available Resy slot matching your preferences",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newPingCmd())
	root.AddCommand(newBookCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if kind := reservation.Kind(err); kind != "" && kind != "Error" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", kind, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
