package mcplay

import (
	"errors"
	"io"

	"github.com/gstoney/mcplay/packet"
)

var ErrNotExhausted = errors.New("not exhausted")

// FrameReader wraps a source reader to provide bounded access to one frame at a time.
// It ensures packet frame alignment.
type FrameReader struct {
	src       byteReader
	remaining int32
}

func (f *FrameReader) Read(p []byte) (n int, err error) {
	if f.remaining <= 0 {
		return 0, io.EOF
	}
	if int32(len(p)) > f.remaining {
		p = p[0:f.remaining]
	}
	n, err = f.src.Read(p)
	f.remaining -= int32(n)

	if err == io.EOF && f.remaining > 0 {
		err = packet.ErrTruncated
	}
	return
}

// ReadByte reports io.EOF at the frame boundary and ErrTruncated when the
// source ends inside the frame.
func (f *FrameReader) ReadByte() (byte, error) {
	if f.remaining <= 0 {
		return 0, io.EOF
	}
	v, err := f.src.ReadByte()
	if err == nil {
		f.remaining--
	} else if err == io.EOF {
		err = packet.ErrTruncated
	}
	return v, err
}

// Next reads the length prefix of the next frame. The previous frame must
// have been consumed. A source that ends before the first length byte
// returns io.EOF.
func (f *FrameReader) Next() (length int32, err error) {
	if f.remaining > 0 {
		return f.remaining, ErrNotExhausted
	}

	length, err = packet.ReadVarInt(f.src)
	if err != nil {
		return 0, err
	}
	if length <= 0 {
		return length, ErrEmptyOrNegativeLength
	}
	f.remaining = length
	return length, nil
}

func (f *FrameReader) Remaining() int32 {
	return f.remaining
}
