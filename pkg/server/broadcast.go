package server

import (
	"fmt"
	"net"
	"time"

	"github.com/t-rays/Blackijecky/pkg/protocol"
)

// broadcastOffers sends an offer frame to the well-known discovery port
// on the broadcast address at a fixed interval until the server stops.
func (s *Server) broadcastOffers() {
	defer s.wg.Done()

	offer := protocol.EncodeOffer(protocol.Offer{
		TCPPort: uint16(s.Port()),
		Name:    s.cfg.Name,
	})
	dst := &net.UDPAddr{
		IP:   net.IPv4bcast,
		Port: s.cfg.UDPPort,
	}

	ticker := time.NewTicker(s.cfg.BroadcastInterval)
	defer ticker.Stop()
	for {
		if _, err := s.udp.WriteTo(offer, dst); err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			s.logger.Warn("broadcast failed", "error", err)
		}
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}
	}
}

// OfferAddr returns the broadcast destination, mostly for logging.
func (s *Server) OfferAddr() string {
	return fmt.Sprintf("%s:%d", net.IPv4bcast, s.cfg.UDPPort)
}
