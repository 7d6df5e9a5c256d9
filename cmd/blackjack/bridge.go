package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/t-rays/Blackijecky/internal/config"
	"github.com/t-rays/Blackijecky/pkg/bridge"
)

func bridgeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Run the web bridge",
		Long: `Run the web bridge between browsers and a blackjack server.

The bridge holds a TCP game session per browser player and rebuilds
round state purely from the byte stream, with no help from the server.
State is served over an HTTP API with polling, SSE, and WebSocket
event streams, plus Prometheus metrics on /metrics.

Examples:
  blackjack bridge
  blackjack bridge --addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadBridge()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			api := bridge.NewAPI(cfg)
			httpServer := &http.Server{
				Addr:    cfg.Addr,
				Handler: api.Router(),
			}

			errc := make(chan error, 1)
			go func() {
				slog.Info("bridge listening", "addr", cfg.Addr)
				errc <- httpServer.ListenAndServe()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errc:
				return err
			case <-stop:
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "HTTP listen address")

	return cmd
}
