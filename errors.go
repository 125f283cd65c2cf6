package mcplay

import (
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcplay/packet"
)

var (
	ErrEmptyOrNegativeLength = errors.New("empty or negative frame length")
	ErrNegativeDataLength    = errors.New("packet id runs past frame length")
	ErrPacketTooBig          = errors.New("packet too big")

	ErrInvalidAddress    = errors.New("invalid server address")
	ErrInvalidNextState  = errors.New("invalid next state")
	ErrTeleportMismatch  = errors.New("teleport id mismatch")
	ErrIllegalTransition = errors.New("illegal state transition")

	// ErrUnexpectedPacket is a frame whose id the current state does not
	// accept. It matches packet.ErrInvalidData.
	ErrUnexpectedPacket = fmt.Errorf("unexpected packet: %w", packet.ErrInvalidData)
)

// ErrorKind returns a short label for err, used in logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, io.EOF):
		return "closed"
	case errors.Is(err, packet.ErrTruncated):
		return "truncated"
	case errors.Is(err, packet.ErrVarIntTooLong):
		return "overflow"
	case errors.Is(err, ErrUnexpectedPacket):
		return "unexpected_packet"
	case errors.Is(err, packet.ErrInvalidData):
		return "invalid_data"
	case errors.Is(err, packet.ErrTooLarge), errors.Is(err, ErrPacketTooBig):
		return "too_large"
	case errors.Is(err, packet.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, ErrInvalidNextState):
		return "invalid_next_state"
	case errors.Is(err, ErrTeleportMismatch):
		return "teleport_mismatch"
	case errors.Is(err, ErrEmptyOrNegativeLength), errors.Is(err, ErrNegativeDataLength),
		errors.Is(err, packet.ErrNegativeLength):
		return "framing"
	case errors.Is(err, ErrIllegalTransition):
		return "illegal_transition"
	default:
		return "other"
	}
}
