package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/t-rays/Blackijecky/internal/config"
	"github.com/t-rays/Blackijecky/pkg/client"
	"github.com/t-rays/Blackijecky/pkg/protocol"
)

func playCmd() *cobra.Command {
	var (
		name   string
		rounds int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Discover a server and play rounds in the terminal",
		Long: `Discover a blackjack server via UDP broadcast and play.

The client listens for offers on the well-known port, connects to the
first valid one, and plays with the fixed strategy: hit below 17,
stand at 17 or more.

Examples:
  blackjack play
  blackjack play --rounds 5 --name Challenger`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if name != "" {
				cfg.Name = name
			}
			if rounds < 1 || rounds > protocol.MaxRounds {
				return fmt.Errorf("rounds must be between 1 and %d", protocol.MaxRounds)
			}

			pterm.DefaultHeader.Printfln("Blackjack — %s", cfg.Name)
			spinner, _ := pterm.DefaultSpinner.Start("Listening for offers...")

			info, err := client.Discover(context.Background(), cfg.UDPPort, cfg.DiscoveryTimeout)
			if err != nil {
				spinner.Fail("No server found")
				return err
			}
			spinner.Success(fmt.Sprintf("Found %s at %s", info.Name, info.Addr()))

			session := client.NewSession(cfg)
			session.SetReporter(client.TermReporter{})
			if _, err := session.Play(context.Background(), info.Addr(), uint8(rounds)); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Client display name")
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 1, "Number of rounds to play (1-255)")

	return cmd
}
