// Package config holds the environment-driven configuration for the
// three process roles. Values come from environment variables; the CLI
// layers flag overrides on top of the parsed structs.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	// DiscoveryPort is the well-known UDP port offers are broadcast to.
	DiscoveryPort = 13122

	// DefaultName is the display name used when none is configured.
	DefaultName = "DragonLion"
)

// Server configures the game server role.
type Server struct {
	// Name is broadcast in every offer, truncated to 32 bytes on the wire.
	Name string `env:"BLACKJACK_SERVER_NAME" envDefault:"DragonLion"`

	// TCPPort is the game port; 0 binds an ephemeral port.
	TCPPort int `env:"BLACKJACK_TCP_PORT" envDefault:"0"`

	// UDPPort is the discovery broadcast target port.
	UDPPort int `env:"BLACKJACK_UDP_PORT" envDefault:"13122"`

	// BroadcastInterval is the delay between consecutive offers.
	BroadcastInterval time.Duration `env:"BLACKJACK_BROADCAST_INTERVAL" envDefault:"1s"`

	// ClientTimeout bounds every read and write on a client connection.
	ClientTimeout time.Duration `env:"BLACKJACK_CLIENT_TIMEOUT" envDefault:"30s"`
}

// Client configures the terminal client role.
type Client struct {
	Name string `env:"BLACKJACK_CLIENT_NAME" envDefault:"DragonLion"`

	// UDPPort is the discovery listen port.
	UDPPort int `env:"BLACKJACK_UDP_PORT" envDefault:"13122"`

	// DiscoveryTimeout bounds how long discovery waits for an offer.
	DiscoveryTimeout time.Duration `env:"BLACKJACK_DISCOVERY_TIMEOUT" envDefault:"5s"`

	// SessionTimeout bounds every read and write on the game connection.
	SessionTimeout time.Duration `env:"BLACKJACK_SESSION_TIMEOUT" envDefault:"30s"`
}

// Bridge configures the web bridge role.
type Bridge struct {
	// Addr is the HTTP listen address.
	Addr string `env:"BLACKJACK_BRIDGE_ADDR" envDefault:":8080"`

	// UDPPort is the discovery listen port for /api/discover.
	UDPPort int `env:"BLACKJACK_UDP_PORT" envDefault:"13122"`

	// DiscoveryTimeout bounds how long /api/discover waits for an offer.
	DiscoveryTimeout time.Duration `env:"BLACKJACK_DISCOVERY_TIMEOUT" envDefault:"5s"`

	// SessionTimeout bounds reads on a bridge session's game connection.
	// Long multi-round sessions spend most of it waiting on the player.
	SessionTimeout time.Duration `env:"BLACKJACK_BRIDGE_SESSION_TIMEOUT" envDefault:"120s"`
}

// LoadServer parses server configuration from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse server env: %w", err)
	}
	return cfg, nil
}

// LoadClient parses client configuration from the environment.
func LoadClient() (Client, error) {
	var cfg Client
	if err := env.Parse(&cfg); err != nil {
		return Client{}, fmt.Errorf("parse client env: %w", err)
	}
	return cfg, nil
}

// LoadBridge parses bridge configuration from the environment.
func LoadBridge() (Bridge, error) {
	var cfg Bridge
	if err := env.Parse(&cfg); err != nil {
		return Bridge{}, fmt.Errorf("parse bridge env: %w", err)
	}
	return cfg, nil
}
