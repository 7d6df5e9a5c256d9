package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blackjack",
		Short: "Discoverable blackjack over a fixed-size binary protocol",
		Long: `Blackijecky is a small blackjack suite for local networks:

  • serve   — host games over TCP, advertised by UDP broadcast
  • play    — discover a server and play rounds in the terminal
  • bridge  — reconstruct game state from the wire for web consumers

Servers announce themselves once a second; clients take the first
valid offer they hear. The bridge exposes sessions over an HTTP API
with polling, SSE, and WebSocket event streams.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		playCmd(),
		bridgeCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
