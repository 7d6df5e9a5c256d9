package config

import (
	"testing"
	"time"
)

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer: %v", err)
	}
	if cfg.Name != DefaultName {
		t.Errorf("Name = %q, want %q", cfg.Name, DefaultName)
	}
	if cfg.TCPPort != 0 {
		t.Errorf("TCPPort = %d, want ephemeral default 0", cfg.TCPPort)
	}
	if cfg.UDPPort != DiscoveryPort {
		t.Errorf("UDPPort = %d, want %d", cfg.UDPPort, DiscoveryPort)
	}
	if cfg.BroadcastInterval != time.Second {
		t.Errorf("BroadcastInterval = %v, want 1s", cfg.BroadcastInterval)
	}
	if cfg.ClientTimeout != 30*time.Second {
		t.Errorf("ClientTimeout = %v, want 30s", cfg.ClientTimeout)
	}
}

func TestLoadServerOverrides(t *testing.T) {
	t.Setenv("BLACKJACK_SERVER_NAME", "TableOne")
	t.Setenv("BLACKJACK_TCP_PORT", "4500")
	t.Setenv("BLACKJACK_BROADCAST_INTERVAL", "250ms")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("LoadServer: %v", err)
	}
	if cfg.Name != "TableOne" || cfg.TCPPort != 4500 || cfg.BroadcastInterval != 250*time.Millisecond {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadServerRejectsBadDuration(t *testing.T) {
	t.Setenv("BLACKJACK_CLIENT_TIMEOUT", "soon")
	if _, err := LoadServer(); err == nil {
		t.Error("LoadServer accepted unparseable duration")
	}
}

func TestLoadClientDefaults(t *testing.T) {
	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("LoadClient: %v", err)
	}
	if cfg.UDPPort != DiscoveryPort || cfg.DiscoveryTimeout != 5*time.Second {
		t.Errorf("discovery defaults = %d/%v", cfg.UDPPort, cfg.DiscoveryTimeout)
	}
	if cfg.SessionTimeout != 30*time.Second {
		t.Errorf("SessionTimeout = %v, want 30s", cfg.SessionTimeout)
	}
}

func TestLoadBridgeDefaults(t *testing.T) {
	cfg, err := LoadBridge()
	if err != nil {
		t.Fatalf("LoadBridge: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.SessionTimeout != 120*time.Second {
		t.Errorf("SessionTimeout = %v, want 120s", cfg.SessionTimeout)
	}
}

func TestLoadBridgeOverrides(t *testing.T) {
	t.Setenv("BLACKJACK_BRIDGE_ADDR", "127.0.0.1:9000")
	t.Setenv("BLACKJACK_BRIDGE_SESSION_TIMEOUT", "1m")

	cfg, err := LoadBridge()
	if err != nil {
		t.Fatalf("LoadBridge: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" || cfg.SessionTimeout != time.Minute {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
