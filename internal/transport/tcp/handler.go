package tcp

import (
	"bufio"
	"errors"
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/linechat-server/internal/config"
	"github.com/vovakirdan/linechat-server/internal/core"
	"github.com/vovakirdan/linechat-server/internal/proto"
)

// maxLineBytes caps a single inbound line so a terminator-less peer
// cannot grow the read buffer without bound.
const maxLineBytes = 64 * 1024

// sessionState drives the per-connection loop: lines are handled as a
// username until the handshake completes, as chat input while in a
// room, and not at all once the session is disconnecting.
type sessionState int

const (
	stateAwaitingUsername sessionState = iota
	stateInRoom
	stateDisconnected
)

// session drives one connection: username handshake, then a read loop
// feeding parsed commands to the hub while a writer goroutine drains
// hub events back onto the wire.
type session struct {
	hub *core.Hub
	cfg config.Config
	log zerolog.Logger

	conn    net.Conn
	writer  *lineWriter
	scanner *bufio.Scanner

	state      sessionState
	client     *core.Client
	writerDone chan struct{}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	lg := s.log.With().Str("addr", conn.RemoteAddr().String()).Logger()
	sess := &session{
		hub:    s.hub,
		cfg:    s.cfg,
		log:    lg,
		conn:   conn,
		writer: newLineWriter(conn),
		state:  stateAwaitingUsername,
	}
	sess.run()
}

func (sess *session) run() {
	sess.scanner = bufio.NewScanner(sess.conn)
	sess.scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	if err := sess.writer.WriteLine(proto.LinePrompt); err != nil {
		sess.state = stateDisconnected
		return
	}

	for sess.state != stateDisconnected && sess.scanner.Scan() {
		// Scanner strips the \n; also accept \r\n terminators.
		line := strings.TrimSuffix(sess.scanner.Text(), "\r")

		switch sess.state {
		case stateAwaitingUsername:
			sess.handleUsername(line)
		case stateInRoom:
			sess.handleLine(line)
		}
	}

	if sess.client == nil {
		sess.state = stateDisconnected
		sess.log.Debug().Msg("connection closed before handshake")
		return
	}

	if err := sess.scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		sess.log.Warn().Err(err).Str("client_id", sess.client.ID).Msg("read failed")
	}
	sess.teardown()
}

// handleUsername consumes one handshake line. Empty input is
// re-prompted; a valid name registers the client and moves the session
// into its room.
func (sess *session) handleUsername(line string) {
	name := strings.TrimSpace(line)
	if name == "" {
		if sess.writer.WriteLine(proto.LineEmptyName) != nil || sess.writer.WriteLine(proto.LinePrompt) != nil {
			sess.state = stateDisconnected
		}
		return
	}

	client := core.NewClient(uuid.NewString(), name, sess.cfg.ClientBuffer)
	if !sess.hub.RegisterClient(client) {
		// The hub is gone; nothing can route this session.
		_ = sess.writer.WriteLine(proto.LineShutdown)
		sess.state = stateDisconnected
		return
	}
	sess.client = client
	sess.state = stateInRoom

	sess.writerDone = make(chan struct{})
	go sess.writeLoop()

	_ = sess.writer.WriteLine(proto.FormatWelcome(name, sess.cfg.DefaultRoom))
	sess.log.Info().Str("client_id", client.ID).Str("user", name).Msg("session started")
}

// handleLine dispatches one in-room line: commands answered locally by
// the session, everything else handed to the hub.
func (sess *session) handleLine(line string) {
	act := proto.Parse(line)
	switch act.Kind {
	case proto.ActionQuit:
		_ = sess.writer.WriteLine(proto.LineGoodbye)
		sess.state = stateDisconnected
	case proto.ActionUnknown:
		if sess.writer.WriteLine(proto.FormatUnknown(act.Word)) != nil {
			sess.state = stateDisconnected
		}
	case proto.ActionInvalid:
		if sess.writer.WriteLine(proto.FormatError(act.Err)) != nil {
			sess.state = stateDisconnected
		}
	default:
		cmd, ok := commandFromAction(act)
		if !ok {
			return
		}
		select {
		case sess.client.Commands <- cmd:
		case <-sess.writerDone:
			// Hub is gone; nothing will drain commands anymore.
			sess.state = stateDisconnected
		}
	}
}

// writeLoop relays hub events onto the wire until the hub closes the
// Events channel. A write failure closes the connection, which unblocks
// the read loop so membership gets reclaimed.
func (sess *session) writeLoop() {
	defer close(sess.writerDone)

	for ev := range sess.client.Events {
		line, ok := lineFromEvent(ev)
		if !ok {
			continue
		}
		if err := sess.writer.WriteLine(line); err != nil {
			sess.log.Warn().Err(err).Str("client_id", sess.client.ID).Msg("write failed")
			_ = sess.conn.Close()
			for range sess.client.Events {
				// Discard until the hub detaches us.
			}
			return
		}
	}

	// Events closed: either our own teardown or hub shutdown. Closing
	// the conn unblocks a read loop that is still waiting for input.
	_ = sess.conn.Close()
}

func (sess *session) teardown() {
	sess.state = stateDisconnected
	sess.hub.UnregisterClient(sess.client)
	close(sess.client.Commands)
	<-sess.writerDone
	sess.log.Info().Str("client_id", sess.client.ID).Str("user", sess.client.Name).Msg("session closed")
}
