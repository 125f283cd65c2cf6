package packet

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

type TestCase[T any] struct {
	desc      string
	expectErr error
	v         T
	ser       []byte
}

var varintTc = []TestCase[int32]{
	{
		desc: "Zero",
		v:    0,
		ser:  []byte{0x00},
	},
	{
		desc: "One",
		v:    1,
		ser:  []byte{0x01},
	},
	{
		desc: "Max single byte (127)",
		v:    127,
		ser:  []byte{0x7f},
	},
	{
		desc: "Min two bytes (128)",
		v:    128,
		ser:  []byte{0x80, 0x01},
	},
	{
		desc: "Two bytes (255)",
		v:    255,
		ser:  []byte{0xff, 0x01},
	},
	{
		desc: "Small three bytes (25565)",
		v:    25565,
		ser:  []byte{0xdd, 0xc7, 0x01},
	},
	{
		desc: "Max three bytes (2097151)",
		v:    2097151,
		ser:  []byte{0xff, 0xff, 0x7f},
	},
	{
		desc: "Max positive int32 (2147483647)",
		v:    2147483647,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc: "Negative one (-1)",
		v:    -1,
		ser:  []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc: "Min negative int32 (-2147483648)",
		v:    -2147483648,
		ser:  []byte{0x80, 0x80, 0x80, 0x80, 0x08},
	},
	{
		desc:      "VarInt too long",
		expectErr: ErrVarIntTooLong,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x07},
	},
	{
		desc:      "Unexpected EOF",
		expectErr: ErrTruncated,
		ser:       []byte{0xff, 0xff, 0xff, 0xff},
	},
	{
		desc:      "Empty input",
		expectErr: ErrTruncated,
		ser:       []byte{},
	},
}

func TestWriteVarInt(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, 5))
	for _, tC := range varintTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteVarInt(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteVarInt failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteVarInt expected %x, got %x", tC.ser, buf.Bytes())
			}

			if size := VarIntSize(tC.v); size != len(tC.ser) {
				t.Errorf("VarIntSize expected %d, got %d", len(tC.ser), size)
			}
		})
		buf.Reset()
	}
}

func TestReadVarInt(t *testing.T) {
	for _, tC := range varintTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)

			got, err := ReadVarInt(&r)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadVarInt expected error %v, but succeeded and returned value %d", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadVarInt expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadVarInt failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadVarInt expected %d, got %d", tC.v, got)
			}

			// Ensure the reader consumed exactly all expected bytes (tC.ser)
			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

func TestReadVarIntFromStream(t *testing.T) {
	// A stream that ends before the first group is a clean EOF.
	if _, err := ReadVarInt(bytes.NewReader(nil)); err != io.EOF {
		t.Errorf("empty stream: got %v, want io.EOF", err)
	}

	if _, err := ReadVarInt(bytes.NewReader([]byte{0x80})); !errors.Is(err, ErrTruncated) {
		t.Errorf("cut stream: got %v, want ErrTruncated", err)
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []int32{math.MinInt32, -65536, -129, -1, 0, 1, 63, 64, 16383, 16384, 1 << 28, math.MaxInt32}
	for v := int32(-300); v <= 300; v++ {
		values = append(values, v)
	}

	for _, v := range values {
		enc := AppendVarInt(nil, v)
		got, n, err := DecodeVarInt(enc)
		if err != nil {
			t.Fatalf("DecodeVarInt(%x): %v", enc, err)
		}
		if got != v || n != len(enc) {
			t.Errorf("round trip of %d: got %d after %d bytes, want %d bytes", v, got, n, len(enc))
		}
	}
}

func TestDecodeVarIntConsumed(t *testing.T) {
	got, n, err := DecodeVarInt([]byte{0x80, 0x01, 0xaa, 0xbb})
	if err != nil {
		t.Fatalf("DecodeVarInt failed: %v", err)
	}
	if got != 128 || n != 2 {
		t.Errorf("DecodeVarInt expected (128, 2), got (%d, %d)", got, n)
	}
}

var stringTc = []TestCase[string]{
	{
		desc: "Empty string",
		v:    "",
		ser:  []byte{0x00},
	},
	{
		desc: "ASCII string",
		v:    "localhost",
		ser:  []byte{9, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't'},
	},
	{
		desc: "Latin-1 string is one byte per character",
		v:    "café",
		ser:  []byte{0x04, 'c', 'a', 'f', 0xe9},
	},
	{
		desc: "Multi byte length (128 bytes)",
		v:    string(bytes.Repeat([]byte{'a'}, 128)),
		ser:  append([]byte{0x80, 0x01}, bytes.Repeat([]byte{'a'}, 128)...),
	},
	{
		desc:      "Read fail: EOF on length VarInt",
		expectErr: ErrTruncated,
		ser:       []byte{0x80},
	},
	{
		desc:      "Read fail: EOF reading string content",
		expectErr: ErrTruncated,
		ser:       []byte{0x05, 0x48, 0x65, 0x6c},
	},
	{
		desc:      "Read fail: Negative length prefix",
		expectErr: ErrNegativeLength,
		ser:       []byte{0xff, 0xff, 0xff, 0xff, 0x0f},
	},
	{
		desc:      "Read fail: Length prefix exceeds max",
		expectErr: ErrTooLarge,
		ser:       []byte{111, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't'},
	},
}

func TestWriteString(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0))
	for _, tC := range stringTc {
		if tC.expectErr != nil {
			continue
		}

		t.Run(tC.desc, func(t *testing.T) {
			err := WriteString(buf, tC.v)
			if err != nil {
				t.Fatalf("WriteString failed: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), tC.ser) {
				t.Errorf("WriteString expected %x, got %x", tC.ser, buf.Bytes())
			}
		})
		buf.Reset()
	}
}

func TestReadString(t *testing.T) {
	for _, tC := range stringTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)

			maxLen := len(tC.v)
			if tC.expectErr != nil {
				maxLen = 9
			}
			got, err := ReadString(&r, maxLen)

			if tC.expectErr != nil {
				if err == nil {
					t.Fatalf("ReadString expected error %v, but succeeded and returned value %s", tC.expectErr, got)
				}
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadString expected error %v, but got error %v", tC.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadString failed: %v", err)
			}

			if got != tC.v {
				t.Errorf("ReadString expected %s, got %s", tC.v, got)
			}

			if r.Remaining() != 0 {
				t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
			}
		})
	}
}

func TestWriteStringOutsideLatin1(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteString(&buf, "Go 🎉"); err != nil {
		t.Fatalf("WriteString failed: %v", err)
	}

	want := []byte{0x04, 'G', 'o', ' ', 0x1a}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteString expected %x, got %x", want, buf.Bytes())
	}
}

var booleanTc = []TestCase[bool]{
	{
		desc: "True",
		v:    true,
		ser:  []byte{0x01},
	},
	{
		desc: "False",
		v:    false,
		ser:  []byte{0x00},
	},
	{
		desc:      "Read fail: byte outside 0/1",
		expectErr: ErrInvalidData,
		ser:       []byte{0x02},
	},
	{
		desc:      "Read fail: empty",
		expectErr: ErrTruncated,
		ser:       []byte{},
	},
}

func TestReadBoolean(t *testing.T) {
	for _, tC := range booleanTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)

			got, err := ReadBoolean(&r)

			if tC.expectErr != nil {
				if !errors.Is(err, tC.expectErr) {
					t.Errorf("ReadBoolean expected error %v, but got %v (value %t)", tC.expectErr, err, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadBoolean failed: %v", err)
			}
			if got != tC.v {
				t.Errorf("ReadBoolean expected %t, got %t", tC.v, got)
			}
		})
	}
}

func TestFixedWidthBigEndian(t *testing.T) {
	var buf bytes.Buffer
	WriteByte(&buf, -2)
	WriteUnsignedByte(&buf, 0xfe)
	WriteShort(&buf, -2)
	WriteUnsignedShort(&buf, 25565)
	WriteInt(&buf, -2)
	WriteLong(&buf, 0x0102030405060708)
	WriteFloat(&buf, 0.05)
	WriteDouble(&buf, -1.5)

	want := []byte{
		0xfe,
		0xfe,
		0xff, 0xfe,
		0x63, 0xdd,
		0xff, 0xff, 0xff, 0xfe,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x3d, 0x4c, 0xcc, 0xcd,
		0xbf, 0xf8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("expected %x, got %x", want, buf.Bytes())
	}

	r := NewFrameReader(buf.Bytes())
	if v, _ := ReadByte(&r); v != -2 {
		t.Errorf("ReadByte got %d", v)
	}
	if v, _ := ReadUnsignedByte(&r); v != 0xfe {
		t.Errorf("ReadUnsignedByte got %d", v)
	}
	if v, _ := ReadShort(&r); v != -2 {
		t.Errorf("ReadShort got %d", v)
	}
	if v, _ := ReadUnsignedShort(&r); v != 25565 {
		t.Errorf("ReadUnsignedShort got %d", v)
	}
	if v, _ := ReadInt(&r); v != -2 {
		t.Errorf("ReadInt got %d", v)
	}
	if v, _ := ReadLong(&r); v != 0x0102030405060708 {
		t.Errorf("ReadLong got %x", v)
	}
	if v, _ := ReadFloat(&r); v != 0.05 {
		t.Errorf("ReadFloat got %v", v)
	}
	if v, _ := ReadDouble(&r); v != -1.5 {
		t.Errorf("ReadDouble got %v", v)
	}
	if r.Remaining() != 0 {
		t.Errorf("Reader did not consume all bytes. %d bytes remaining.", r.Remaining())
	}
}

// Every fixed-width reader must fail on short input instead of returning
// partial data.
func TestFixedWidthTruncated(t *testing.T) {
	readers := []struct {
		name  string
		width int
		read  func(Reader) error
	}{
		{"Byte", 1, func(r Reader) error { _, err := ReadByte(r); return err }},
		{"UnsignedByte", 1, func(r Reader) error { _, err := ReadUnsignedByte(r); return err }},
		{"Boolean", 1, func(r Reader) error { _, err := ReadBoolean(r); return err }},
		{"Short", 2, func(r Reader) error { _, err := ReadShort(r); return err }},
		{"UnsignedShort", 2, func(r Reader) error { _, err := ReadUnsignedShort(r); return err }},
		{"Int", 4, func(r Reader) error { _, err := ReadInt(r); return err }},
		{"Float", 4, func(r Reader) error { _, err := ReadFloat(r); return err }},
		{"Long", 8, func(r Reader) error { _, err := ReadLong(r); return err }},
		{"Double", 8, func(r Reader) error { _, err := ReadDouble(r); return err }},
		{"Position", 8, func(r Reader) error { _, err := ReadPosition(r); return err }},
	}

	for _, rd := range readers {
		t.Run(rd.name, func(t *testing.T) {
			for n := 0; n < rd.width; n++ {
				r := NewFrameReader(make([]byte, n))
				if err := rd.read(&r); !errors.Is(err, ErrTruncated) {
					t.Errorf("%d of %d bytes: got %v, want ErrTruncated", n, rd.width, err)
				}
			}
		})
	}
}

func TestReadRest(t *testing.T) {
	r := NewFrameReader([]byte{0x01, 0x02, 0x03})
	if _, err := ReadByte(&r); err != nil {
		t.Fatal(err)
	}

	got, err := ReadRest(&r)
	if err != nil {
		t.Fatalf("ReadRest failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0x02, 0x03}) {
		t.Errorf("ReadRest expected 0203, got %x", got)
	}
	if r.Remaining() != 0 {
		t.Errorf("ReadRest left %d bytes", r.Remaining())
	}
}
