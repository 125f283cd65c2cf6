package packet

import "io"

// Reader is a byte cursor over a packet payload. Read functions in this
// package consume from it progressively, in wire order.
type Reader interface {
	io.ByteReader
	ReadN(n int) ([]byte, error)
	Remaining() int
}

// FrameReader is a Reader over an in-memory payload.
type FrameReader struct {
	buf []byte
	off int
}

func NewFrameReader(buf []byte) FrameReader {
	return FrameReader{
		buf: buf,
		off: 0,
	}
}

func (r FrameReader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *FrameReader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, ErrTruncated
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// ReadN returns the next n bytes. The returned slice aliases the payload.
func (r *FrameReader) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if r.off+n > len(r.buf) {
		return nil, ErrTruncated
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Rest consumes and returns everything left in the payload.
func (r *FrameReader) Rest() []byte {
	b := r.buf[r.off:]
	r.off = len(r.buf)
	return b
}
