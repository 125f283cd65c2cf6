package mcplay

import (
	"fmt"
	"net/netip"

	"github.com/google/uuid"

	"github.com/gstoney/mcplay/packet"
)

type ConnectionState byte

const (
	StateUnknown ConnectionState = iota
	StateHandshaking
	StateStatus
	StateLogin
	StatePlay
)

func (s ConnectionState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateHandshaking:
		return "handshaking"
	case StateStatus:
		return "status"
	case StateLogin:
		return "login"
	case StatePlay:
		return "play"
	default:
		return fmt.Sprintf("ConnectionState(%d)", byte(s))
	}
}

// transitions lists the states reachable from each state.
var transitions = map[ConnectionState][]ConnectionState{
	StateUnknown:     {StateHandshaking},
	StateHandshaking: {StateStatus, StateLogin},
	StateLogin:       {StatePlay},
}

func canTransition(from, to ConnectionState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// A Session stores what is known about the client on one connection.
// Fields are filled in as the handshake and login progress.
type Session struct {
	ConnectionID uint64

	ProtocolVersion uint16
	ServerAddr      netip.AddrPort
	Intent          ConnectionState // StateStatus or StateLogin

	Username    string
	PlayerUUID  uuid.UUID
	EntityID    int32
	Settings    packet.ClientSettings
	ClientBrand string
}
