package mcplay

import (
	"fmt"
	"net/netip"

	"github.com/gstoney/mcplay/packet"
)

// handleHandshake reads the Handshake packet and records where the client
// wants to go next.
func (c *Conn) handleHandshake() error {
	var hs packet.HandshakePacket
	if err := c.expect(&hs); err != nil {
		return err
	}

	if hs.ProtocolVersion < 0 || hs.ProtocolVersion > 0xFFFF {
		return fmt.Errorf("protocol version %d: %w", hs.ProtocolVersion, packet.ErrOutOfRange)
	}

	host := hs.ServerAddr
	if host == "localhost" {
		host = "127.0.0.1"
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, hs.ServerAddr)
	}

	var intent ConnectionState
	switch hs.NextState {
	case packet.IntentStatus:
		intent = StateStatus
	case packet.IntentLogin:
		intent = StateLogin
	default:
		return fmt.Errorf("%w: %d", ErrInvalidNextState, hs.NextState)
	}

	c.Session.ProtocolVersion = uint16(hs.ProtocolVersion)
	c.Session.ServerAddr = netip.AddrPortFrom(addr, hs.ServerPort)
	c.Session.Intent = intent

	c.log.Info().
		Uint16("protocol", c.Session.ProtocolVersion).
		Stringer("addr", c.Session.ServerAddr).
		Stringer("next", intent).
		Msg("handshake")

	return c.setState(StateHandshaking)
}

func (c *Conn) handleIntent() error {
	return c.setState(c.Session.Intent)
}
