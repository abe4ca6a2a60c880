package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeConn records every event pushed to it. Tests run single-threaded,
// mirroring the engine's serialized dispatch, so no locking is needed.
type fakeConn struct {
	addr   string
	events []Event
	closed bool
}

func (c *fakeConn) Push(ev Event)      { c.events = append(c.events, ev) }
func (c *fakeConn) Close()             { c.closed = true }
func (c *fakeConn) RemoteAddr() string { return c.addr }

func (c *fakeConn) chatMessages() []ChatMessage {
	var out []ChatMessage
	for _, ev := range c.events {
		if m, ok := ev.(ChatMessage); ok {
			out = append(out, m)
		}
	}
	return out
}

func (c *fakeConn) reset() { c.events = nil }

func strptr(s string) *string { return &s }

// joinSession connects and authenticates a session, then discards the
// handshake events so tests only see what happens afterwards.
func joinSession(t *testing.T, e *Engine, username, room string) (*Session, *fakeConn) {
	t.Helper()
	conn := &fakeConn{addr: "203.0.113.7:52100"}
	s := e.Connect(conn)
	s.Join(username, &room)
	require.False(t, conn.closed, "join should not close the connection")
	for sess := range e.conns {
		if fc, ok := sess.conn.(*fakeConn); ok {
			fc.reset()
		}
	}
	return s, conn
}
