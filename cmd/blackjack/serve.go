package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/t-rays/Blackijecky/internal/config"
	"github.com/t-rays/Blackijecky/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		name    string
		tcpPort int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game server",
		Long: `Run the blackjack game server.

The server binds a TCP port (ephemeral by default), broadcasts a UDP
offer for it once a second, and plays rounds with every client that
connects, each on its own goroutine.

Examples:
  blackjack serve
  blackjack serve --name CardShark --tcp-port 9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServer()
			if err != nil {
				return err
			}
			if name != "" {
				cfg.Name = name
			}
			if cmd.Flags().Changed("tcp-port") {
				cfg.TCPPort = tcpPort
			}

			srv := server.New(cfg)
			if err := srv.Start(); err != nil {
				return err
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop
			srv.Stop()
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Server display name")
	cmd.Flags().IntVarP(&tcpPort, "tcp-port", "p", 0, "TCP game port (0 = ephemeral)")

	return cmd
}
