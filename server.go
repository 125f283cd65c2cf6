package mcplay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

// A Server defines parameters for running a Minecraft server.
type Server struct {
	Addr    string
	Options *Options
}

// ListenAndServe listens on s.Addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Addr, err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts incoming connections on the Listener l,
// creating a new goroutine for each.
// The goroutines read the handshake and either answer a status
// request or log the player in and keep it in the play state.
// Serve closes l and every open connection when ctx is cancelled, and
// returns once they have all finished.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	log := s.Options.Logger
	defer l.Close()

	go func() {
		<-ctx.Done()
		l.Close()
	}()

	log.Info().Stringer("addr", l.Addr()).Msg("server started")

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		c, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("server shutting down")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Error().Err(err).Msg("accept connection")
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.serveConn(ctx, c)
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, nc net.Conn) {
	defer nc.Close()
	stop := context.AfterFunc(ctx, func() { nc.Close() })
	defer stop()

	m := s.Options.Metrics
	m.ConnectionOpened()
	defer m.ConnectionClosed()

	start := time.Now()
	c := NewConn(ctx, nc, nc.RemoteAddr().String(), s.Options)
	c.log.Info().Msg("new connection")

	err := c.Run()
	switch {
	case err == nil, ctx.Err() != nil:
	case errors.Is(err, io.EOF):
		c.log.Debug().Stringer("state", c.State()).Msg("client closed connection early")
	default:
		kind := ErrorKind(err)
		m.ConnectionFailed(kind)
		c.log.Error().Err(err).Str("kind", kind).Msg("connection aborted")
	}

	c.log.Info().
		Dur("duration", time.Since(start)).
		Stringer("state", c.State()).
		Msg("connection terminated")
}
