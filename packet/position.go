package packet

import (
	"fmt"
	"io"
)

const (
	minHorizontal = -1 << 25
	maxHorizontal = 1<<25 - 1
	minVertical   = -1 << 11
	maxVertical   = 1<<11 - 1
)

// Position's serialized form is one Long: X in the top 26 bits, then 12
// bits of Y, then 26 bits of Z.
type Position struct {
	X int32
	Y int16
	Z int32
}

func (v Position) Valid() bool {
	return v.X >= minHorizontal && v.X <= maxHorizontal &&
		v.Z >= minHorizontal && v.Z <= maxHorizontal &&
		v.Y >= minVertical && v.Y <= maxVertical
}

// Pack returns the wire word for v, or ErrOutOfRange when a coordinate
// does not fit its bit width.
func (v Position) Pack() (int64, error) {
	if !v.Valid() {
		return 0, fmt.Errorf("%w: position (%d, %d, %d)", ErrOutOfRange, v.X, v.Y, v.Z)
	}

	packed := (int64(v.X)&0x3FFFFFF)<<38 |
		(int64(v.Y)&0xFFF)<<26 |
		int64(v.Z)&0x3FFFFFF
	return packed, nil
}

// UnpackPosition sign-extends each field of a packed word.
func UnpackPosition(packed int64) Position {
	return Position{
		X: int32(packed >> 38),
		Y: int16(packed << 26 >> 52),
		Z: int32(packed << 38 >> 38),
	}
}

func WritePosition(w io.Writer, v Position) (err error) {
	packed, err := v.Pack()
	if err != nil {
		return
	}
	return WriteLong(w, packed)
}

func ReadPosition(r Reader) (v Position, err error) {
	packed, err := ReadLong(r)
	if err != nil {
		return
	}

	v = UnpackPosition(packed)
	if !v.Valid() {
		err = fmt.Errorf("%w: position (%d, %d, %d)", ErrOutOfRange, v.X, v.Y, v.Z)
	}
	return
}
