// Package tcp implements the newline-delimited TCP transport: it
// accepts connections and bridges each one to a core.Client.
package tcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/linechat-server/internal/config"
	"github.com/vovakirdan/linechat-server/internal/core"
)

// Server owns the listening socket and one session per accepted
// connection.
type Server struct {
	cfg config.Config
	hub *core.Hub
	log zerolog.Logger

	ln net.Listener
	wg sync.WaitGroup
}

// NewServer builds a TCP server for the given hub.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *Server {
	lg := zerolog.Nop()
	if logger != nil {
		lg = *logger
	}
	return &Server{
		cfg: cfg,
		hub: hub,
		log: lg,
	}
}

// Listen binds the configured address. Callers treat an error here as
// fatal: nothing can run without the listening socket.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	s.ln = ln
	return nil
}

// Addr reports the bound address, useful when listening on port 0.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve accepts connections until ctx is cancelled, spawning an
// independent session per connection. Transient accept errors are
// logged and do not stop the loop. On cancellation the listener is
// closed and Serve waits for active sessions up to the shutdown
// timeout.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	go func() {
		<-ctx.Done()
		_ = s.ln.Close()
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return s.waitSessions()
			}
			s.log.Warn().Err(err).Msg("accept failed")
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(conn)
		}()
	}
}

func (s *Server) waitSessions() error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(s.cfg.ShutdownTimeout):
		return fmt.Errorf("shutdown timed out after %s", s.cfg.ShutdownTimeout)
	}
}
