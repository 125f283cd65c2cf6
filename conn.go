package mcplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gstoney/mcplay/config"
	"github.com/gstoney/mcplay/metrics"
	"github.com/gstoney/mcplay/packet"
)

// Options is shared by every connection of a server.
type Options struct {
	Transport  TransportConfig
	Status     config.StatusConfig
	World      World
	Brand      string
	PlayerUUID uuid.UUID

	Counters *Counters
	Metrics  *metrics.Metrics // may be nil
	Logger   zerolog.Logger

	// online counts connections in the play state.
	online atomic.Int32
}

// NewOptions builds connection options from a validated configuration.
func NewOptions(cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) (*Options, error) {
	world, err := NewWorld(cfg.World)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(cfg.Login.PlayerUUID)
	if err != nil {
		return nil, fmt.Errorf("login.player_uuid: %w", err)
	}

	return &Options{
		Transport:  TransportConfig{MaxPacketLen: cfg.Server.MaxPacketLen},
		Status:     cfg.Status,
		World:      world,
		Brand:      cfg.Server.Brand,
		PlayerUUID: id,
		Counters:   NewCounters(),
		Metrics:    m,
		Logger:     log,
	}, nil
}

// Online reports how many connections are currently in the play state.
func (o *Options) Online() int {
	return int(o.online.Load())
}

type stateHandler func(c *Conn) error

// handlers holds the handler run for each state. A handler either moves
// the connection to another state or finishes it.
var handlers = map[ConnectionState]stateHandler{
	StateUnknown:     (*Conn).handleHandshake,
	StateHandshaking: (*Conn).handleIntent,
	StateStatus:      (*Conn).handleStatus,
	StateLogin:       (*Conn).handleLogin,
	StatePlay:        (*Conn).handlePlay,
}

// Conn drives one client connection through the protocol states.
// It is not safe for concurrent use.
type Conn struct {
	Session Session

	ctx   context.Context
	state ConnectionState
	t     Transport
	opts  *Options
	log   zerolog.Logger
}

// NewConn wraps rw, typically a net.Conn. remote is only used for logging.
func NewConn(ctx context.Context, rw io.ReadWriter, remote string, opts *Options) *Conn {
	id := opts.Counters.NextConnectionID()
	return &Conn{
		Session: Session{ConnectionID: id},
		ctx:     ctx,
		state:   StateUnknown,
		t:       NewTransport(rw, rw, opts.Transport),
		opts:    opts,
		log: opts.Logger.With().
			Uint64("conn", id).
			Str("remote", remote).
			Logger(),
	}
}

func (c *Conn) State() ConnectionState {
	return c.state
}

// Step runs the handler of the current state once and reports whether
// the state changed.
func (c *Conn) Step() (changed bool, err error) {
	h, ok := handlers[c.state]
	if !ok {
		return false, fmt.Errorf("no handler for state %s", c.state)
	}

	before := c.state
	if err := h(c); err != nil {
		return c.state != before, fmt.Errorf("%s: %w", before, err)
	}
	return c.state != before, nil
}

// Run steps the connection until a handler leaves the state unchanged or
// fails. The caller closes the underlying connection.
func (c *Conn) Run() error {
	defer func() {
		if c.state == StatePlay {
			c.opts.online.Add(-1)
			c.opts.Metrics.PlayerLeft()
		}
	}()

	for {
		changed, err := c.Step()
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}

func (c *Conn) setState(s ConnectionState) error {
	if !canTransition(c.state, s) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, c.state, s)
	}

	c.log.Debug().Stringer("from", c.state).Stringer("to", s).Msg("state change")
	c.state = s
	c.opts.Metrics.StateReached(s.String())

	if s == StatePlay {
		c.opts.online.Add(1)
		c.opts.Metrics.PlayerJoined()
	}
	return nil
}

func (c *Conn) recv() (Frame, error) {
	f, err := c.t.Recv()
	if err != nil {
		return Frame{}, err
	}
	c.opts.Metrics.PacketReceived(c.state.String())
	c.log.Debug().
		Int32("id", f.ID).
		Int("len", len(f.Payload)).
		Msg("received packet")
	return f, nil
}

// expect reads the next frame and decodes it into p. Any other packet id
// is ErrUnexpectedPacket.
func (c *Conn) expect(p packet.Packet) error {
	f, err := c.recv()
	if err != nil {
		return err
	}
	if f.ID != p.ID() {
		return fmt.Errorf("%w: got 0x%02X, want 0x%02X", ErrUnexpectedPacket, f.ID, p.ID())
	}

	rest, err := f.Decode(p)
	if err != nil {
		return fmt.Errorf("decode %T: %w", p, err)
	}
	if rest > 0 {
		c.log.Warn().
			Int32("id", f.ID).
			Int("bytes", rest).
			Msg("ignoring trailing bytes after packet")
	}
	return nil
}

func (c *Conn) send(p packet.Packet) error {
	if err := c.t.Send(p); err != nil {
		return fmt.Errorf("send %T: %w", p, err)
	}
	c.opts.Metrics.PacketSent(c.state.String())
	c.log.Debug().Int32("id", p.ID()).Msg("sent packet")
	return nil
}

// handlePlay discards frames until the peer leaves or the server stops.
func (c *Conn) handlePlay() error {
	for {
		f, err := c.recv()
		if err != nil {
			if errors.Is(err, io.EOF) || c.ctx.Err() != nil {
				return nil
			}
			return err
		}
		c.log.Debug().Int32("id", f.ID).Msg("discarding play packet")
	}
}
