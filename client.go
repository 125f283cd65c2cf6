package mcplay

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gstoney/mcplay/packet"
)

// PingResult is what a server list ping learned about a server.
type PingResult struct {
	Status  StatusResponse
	Raw     string
	Latency time.Duration
}

// Ping performs a server list ping against addr (host:port), announcing
// protocol version proto.
func Ping(ctx context.Context, addr string, proto int32) (PingResult, error) {
	host, portstr, err := net.SplitHostPort(addr)
	if err != nil {
		return PingResult{}, err
	}
	port, err := strconv.ParseUint(portstr, 10, 16)
	if err != nil {
		return PingResult{}, fmt.Errorf("port %q: %w", portstr, err)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return PingResult{}, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	t := NewTransport(conn, conn, TransportConfig{MaxPacketLen: 1 << 21})

	if err := t.Send(&packet.HandshakePacket{
		ProtocolVersion: proto,
		ServerAddr:      host,
		ServerPort:      uint16(port),
		NextState:       packet.IntentStatus,
	}); err != nil {
		return PingResult{}, err
	}
	if err := t.Send(&packet.StatusReqPacket{}); err != nil {
		return PingResult{}, err
	}

	var resp packet.StatusRespPacket
	if err := recvPacket(&t, &resp); err != nil {
		return PingResult{}, fmt.Errorf("status response: %w", err)
	}

	res := PingResult{Raw: resp.Response}
	if err := json.Unmarshal([]byte(resp.Response), &res.Status); err != nil {
		return PingResult{}, fmt.Errorf("status response: %w", err)
	}

	sent := time.Now()
	if err := t.Send(&packet.PingReqPacket{Payload: sent.UnixMilli()}); err != nil {
		return PingResult{}, err
	}

	var pong packet.PongRespPacket
	if err := recvPacket(&t, &pong); err != nil {
		return PingResult{}, fmt.Errorf("pong: %w", err)
	}
	res.Latency = time.Since(sent)

	if pong.Payload != sent.UnixMilli() {
		return PingResult{}, fmt.Errorf("pong: %w: payload %d", packet.ErrInvalidData, pong.Payload)
	}
	return res, nil
}

func recvPacket(t *Transport, p packet.Packet) error {
	f, err := t.Recv()
	if err != nil {
		return err
	}
	if f.ID != p.ID() {
		return fmt.Errorf("%w: got 0x%02X, want 0x%02X", ErrUnexpectedPacket, f.ID, p.ID())
	}
	_, err = f.Decode(p)
	return err
}
