package packet

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Strings travel as one byte per character. Code points above U+00FF have
// no single-byte form and are written as the charmap's substitution byte.
// Encoders and decoders carry state, so each call gets its own.
func encodeChars(v string) ([]byte, error) {
	return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).Bytes([]byte(v))
}

func decodeChars(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(out), err
}

func WriteString(w io.Writer, v string) (err error) {
	b, err := encodeChars(v)
	if err != nil {
		return
	}

	err = WriteVarInt(w, int32(len(b)))
	if err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

// ReadString reads a length-prefixed string whose declared length may not
// exceed maxLen bytes.
func ReadString(r Reader, maxLen int) (v string, err error) {
	length := int32(0)
	length, err = ReadVarInt(r)
	if err != nil {
		return
	}

	if length < 0 {
		err = ErrNegativeLength
		return
	}
	if int(length) > maxLen {
		err = fmt.Errorf("%w: string of %d bytes exceeds %d", ErrTooLarge, length, maxLen)
		return
	}

	buf, err := r.ReadN(int(length))
	if err != nil {
		return
	}

	return decodeChars(buf)
}
