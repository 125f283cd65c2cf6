//go:generate go run ../codegen/gen_packet_codec.go -- .
package packet

import (
	"io"
)

// Packet is a typed packet body. Encode writes the packet id followed by
// the fields; Decode reads the fields from a payload whose id has already
// been consumed by the framer.
type Packet interface {
	ID() int32
	Encode(w io.Writer) error
	Decode(r *FrameReader) error
}

// String limits shared by several packets.
const (
	MaxUsernameLen = 16
	MaxAddressLen  = 255
	MaxChannelLen  = 32767
	MaxTextLen     = 32767
)

// Handshake next_state values.
const (
	IntentStatus = 1
	IntentLogin  = 2
)

// @gen:r,w
type HandshakePacket struct {
	ProtocolVersion int32  `field:"VarInt"`
	ServerAddr      string `field:"String" max:"MaxAddressLen"`
	ServerPort      uint16 `field:"UnsignedShort"`
	NextState       int32  `field:"VarInt"`
}

func (p HandshakePacket) ID() int32 {
	return 0x00
}
