package tcp

import (
	"io"
	"net"
	"sync"
	"time"
)

// writeTimeout bounds how long one line write may block, so a dead peer
// cannot pin a session forever.
const writeTimeout = 10 * time.Second

// lineWriter serializes writes from the session's read loop (error
// replies) and write loop (hub events) onto one connection, appending
// the line terminator.
type lineWriter struct {
	mu   sync.Mutex
	conn net.Conn
}

func newLineWriter(conn net.Conn) *lineWriter {
	return &lineWriter{conn: conn}
}

func (w *lineWriter) WriteLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	_, err := io.WriteString(w.conn, line+"\n")
	return err
}
