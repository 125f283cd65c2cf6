package packet

import (
	"errors"
	"io"
)

var (
	// ErrTruncated reports fewer bytes than a field declares or requires.
	ErrTruncated = io.ErrUnexpectedEOF

	ErrVarIntTooLong  = errors.New("VarInt is too long")
	ErrNegativeLength = errors.New("negative length")
	ErrInvalidData    = errors.New("invalid data")
	ErrTooLarge       = errors.New("value too large")
	ErrOutOfRange     = errors.New("value out of range")
)
