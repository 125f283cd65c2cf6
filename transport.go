package mcplay

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcplay/packet"
)

type TransportConfig struct {
	MaxPacketLen int32
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Frame is one received packet: its id and the payload that follows it.
type Frame struct {
	ID      int32
	Payload []byte
}

// Reader returns a cursor over the payload for the packet decoders.
func (f Frame) Reader() packet.FrameReader {
	return packet.NewFrameReader(f.Payload)
}

// Decode decodes the payload into p. It does not check the id.
func (f Frame) Decode(p packet.Packet) (rest int, err error) {
	r := f.Reader()
	if err = p.Decode(&r); err != nil {
		return 0, err
	}
	return r.Remaining(), nil
}

// Transport provides read and write access to a framed stream.
// Frames are `VarInt(length) VarInt(id) payload`, uncompressed and
// unencrypted. Transport does not deserialize packets.
type Transport struct {
	writer  io.Writer
	fReader FrameReader

	cfg TransportConfig
}

// NewTransport creates a Transport.
//
// For readers that perform syscalls (e.g. net.Conn), buffering is required.
// Indicate buffered input by implementing io.ByteReader; otherwise the
// reader is wrapped with bufio. Every frame is handed to w in a single
// Write call.
func NewTransport(r io.Reader, w io.Writer, cfg TransportConfig) Transport {
	var br byteReader

	if b, ok := r.(byteReader); ok {
		br = b
	} else if r != nil {
		br = bufio.NewReader(r)
	}

	return Transport{
		writer:  w,
		fReader: FrameReader{br, 0},
		cfg:     cfg,
	}
}

// Recv reads one whole frame. A peer that closes cleanly between frames
// yields io.EOF.
func (t *Transport) Recv() (Frame, error) {
	frameLength, err := t.fReader.Next()
	if err != nil {
		return Frame{}, err
	}

	if frameLength > t.cfg.MaxPacketLen {
		return Frame{}, fmt.Errorf("%w: %d > %d", ErrPacketTooBig, frameLength, t.cfg.MaxPacketLen)
	}

	id, err := packet.ReadVarInt(&t.fReader)
	if err != nil {
		if errors.Is(err, packet.ErrTruncated) && t.fReader.Remaining() == 0 {
			return Frame{}, ErrNegativeDataLength
		}
		return Frame{}, fmt.Errorf("packet id: %w", err)
	}

	payload := make([]byte, t.fReader.Remaining())
	if _, err := io.ReadFull(&t.fReader, payload); err != nil {
		if err == io.EOF {
			err = packet.ErrTruncated
		}
		return Frame{}, fmt.Errorf("payload: %w", err)
	}

	return Frame{ID: id, Payload: payload}, nil
}

// SendRaw frames an already encoded payload under id.
func (t *Transport) SendRaw(id int32, payload []byte) error {
	length := packet.VarIntSize(id) + len(payload)

	b := make([]byte, 0, packet.VarIntSize(int32(length))+length)
	b = packet.AppendVarInt(b, int32(length))
	b = packet.AppendVarInt(b, id)
	b = append(b, payload...)

	return t.write(b)
}

// Send encodes p, id first, and frames it.
func (t *Transport) Send(p packet.Packet) error {
	var body bytes.Buffer
	if err := p.Encode(&body); err != nil {
		return fmt.Errorf("encode packet 0x%02X: %w", p.ID(), err)
	}

	b := make([]byte, 0, packet.VarIntSize(int32(body.Len()))+body.Len())
	b = packet.AppendVarInt(b, int32(body.Len()))
	b = append(b, body.Bytes()...)

	return t.write(b)
}

func (t *Transport) write(b []byte) error {
	_, err := t.writer.Write(b)
	if err != nil {
		return err
	}

	if bw, ok := t.writer.(*bufio.Writer); ok {
		err = bw.Flush()
	}
	return err
}
