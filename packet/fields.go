package packet

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

func WriteBoolean(w io.Writer, v bool) (err error) {
	b := byte(0)
	if v {
		b = 1
	}

	_, err = w.Write([]byte{b})
	return
}

func ReadBoolean(r Reader) (v bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}

	if b == 0 {
		v = false
	} else if b == 1 {
		v = true
	} else {
		err = fmt.Errorf("%w: byte 0x%02x for Boolean field", ErrInvalidData, b)
	}

	return
}

func WriteByte(w io.Writer, v int8) (err error) {
	_, err = w.Write([]byte{byte(v)})
	return
}

func ReadByte(r Reader) (v int8, err error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func WriteUnsignedByte(w io.Writer, v uint8) (err error) {
	_, err = w.Write([]byte{v})
	return
}

func ReadUnsignedByte(r Reader) (v uint8, err error) {
	return r.ReadByte()
}

func WriteShort(w io.Writer, v int16) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadShort(r Reader) (v int16, err error) {
	b, err := r.ReadN(2)
	if err != nil {
		return
	}

	v = int16(binary.BigEndian.Uint16(b))
	return
}

func WriteUnsignedShort(w io.Writer, v uint16) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadUnsignedShort(r Reader) (v uint16, err error) {
	b, err := r.ReadN(2)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint16(b)
	return
}

func WriteInt(w io.Writer, v int32) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadInt(r Reader) (v int32, err error) {
	b, err := r.ReadN(4)
	if err != nil {
		return
	}

	v = int32(binary.BigEndian.Uint32(b))
	return
}

func WriteLong(w io.Writer, v int64) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadLong(r Reader) (v int64, err error) {
	b, err := r.ReadN(8)
	if err != nil {
		return
	}

	v = int64(binary.BigEndian.Uint64(b))
	return
}

func WriteFloat(w io.Writer, v float32) (err error) {
	return binary.Write(w, binary.BigEndian, math.Float32bits(v))
}

func ReadFloat(r Reader) (v float32, err error) {
	b, err := r.ReadN(4)
	if err != nil {
		return
	}

	v = math.Float32frombits(binary.BigEndian.Uint32(b))
	return
}

func WriteDouble(w io.Writer, v float64) (err error) {
	return binary.Write(w, binary.BigEndian, math.Float64bits(v))
}

func ReadDouble(r Reader) (v float64, err error) {
	b, err := r.ReadN(8)
	if err != nil {
		return
	}

	v = math.Float64frombits(binary.BigEndian.Uint64(b))
	return
}

func WriteVarInt(w io.Writer, v int32) error {
	var buf [5]byte
	_, err := w.Write(AppendVarInt(buf[:0], v))
	return err
}

// AppendVarInt appends the minimal encoding of v to dst. Negative values
// are encoded as their two's-complement uint32 and always take 5 bytes.
func AppendVarInt(dst []byte, v int32) []byte {
	uv := uint32(v)
	for {
		b := byte(uv & 0x7F)
		uv >>= 7

		if uv != 0 {
			b |= 0x80
		}
		dst = append(dst, b)

		if uv == 0 {
			return dst
		}
	}
}

// VarIntSize returns the byte length of the minimal encoding of v.
func VarIntSize(v int32) int {
	uv := uint32(v)
	size := 1
	for uv >= 0x80 {
		uv >>= 7
		size++
	}
	return size
}

// ReadVarInt reads one VarInt. io.EOF is returned untouched when the
// stream ends before the first group; running out later is ErrTruncated.
func ReadVarInt(r io.ByteReader) (int32, error) {
	var v uint32

	for n := 0; n < 5; n++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = ErrTruncated
			}
			return 0, err
		}

		v |= uint32(b&0x7F) << (7 * n)

		if (b & 0x80) == 0 {
			return int32(v), nil
		}
	}
	return 0, ErrVarIntTooLong
}

// DecodeVarInt decodes a VarInt at the start of b and reports how many
// bytes it occupied.
func DecodeVarInt(b []byte) (v int32, n int, err error) {
	r := NewFrameReader(b)
	v, err = ReadVarInt(&r)
	if err != nil {
		return 0, 0, err
	}
	return v, len(b) - r.Remaining(), nil
}

// WriteRest writes v as-is, without a length prefix. It is only valid as
// the last field of a packet.
func WriteRest(w io.Writer, v []byte) (err error) {
	_, err = w.Write(v)
	return
}

func ReadRest(r Reader) (v []byte, err error) {
	b, err := r.ReadN(r.Remaining())
	if err != nil {
		return
	}

	v = make([]byte, len(b))
	copy(v, b)
	return
}
