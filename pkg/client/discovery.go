// Package client implements the terminal blackjack client: UDP server
// discovery, the fixed hit/stand policy, and the client side of the
// round state machine.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/t-rays/Blackijecky/pkg/protocol"
)

// ErrNoOffer is returned when discovery times out without a valid offer.
var ErrNoOffer = errors.New("client: no offer received within timeout")

// ServerInfo describes a discovered server.
type ServerInfo struct {
	IP      net.IP
	TCPPort uint16
	Name    string
}

// Addr returns the server's TCP dial address.
func (si ServerInfo) Addr() string {
	return net.JoinHostPort(si.IP.String(), fmt.Sprintf("%d", si.TCPPort))
}

// Discover listens on the discovery port and returns the first
// structurally valid offer. Frames that fail to decode are ignored;
// only the timeout ends the wait. The server IP comes from the UDP
// source address, not the frame.
func Discover(ctx context.Context, udpPort int, timeout time.Duration) (ServerInfo, error) {
	conn, err := net.ListenPacket("udp4", fmt.Sprintf(":%d", udpPort))
	if err != nil {
		return ServerInfo{}, fmt.Errorf("listen discovery: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
	} else {
		conn.SetReadDeadline(time.Now().Add(timeout))
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	buf := make([]byte, 1024)
	for {
		n, addr, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return ServerInfo{}, ctx.Err()
			}
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				return ServerInfo{}, ErrNoOffer
			}
			return ServerInfo{}, fmt.Errorf("read offer: %w", err)
		}
		offer, err := protocol.DecodeOffer(buf[:n])
		if err != nil {
			continue
		}
		return ServerInfo{
			IP:      addr.(*net.UDPAddr).IP,
			TCPPort: offer.TCPPort,
			Name:    offer.Name,
		}, nil
	}
}
