package main

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosuda/teachat/chat"
)

// stubConn records pushed events; the refresh test reads concurrently
// with the delayed engine push, so access is guarded.
type stubConn struct {
	mu     sync.Mutex
	events []chat.Event
}

func (c *stubConn) Push(ev chat.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *stubConn) Close()             {}
func (c *stubConn) RemoteAddr() string { return "203.0.113.20:7000" }

func (c *stubConn) snapshot() []chat.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]chat.Event(nil), c.events...)
}

func TestConsoleSay(t *testing.T) {
	engine := chat.NewEngine()
	a, b := &stubConn{}, &stubConn{}
	engine.Connect(a)
	engine.Connect(b)

	newConsole(engine).handleLine("say maintenance in five minutes")

	want := chat.ChatMessage{HTML: `<b style="color: red">[SERVER]: maintenance in five minutes</b>`, Quiet: false}
	for _, conn := range []*stubConn{a, b} {
		events := conn.snapshot()
		require.Len(t, events, 1)
		assert.Equal(t, want, events[0])
	}
}

func TestConsoleRefresh(t *testing.T) {
	engine := chat.NewEngine()
	conn := &stubConn{}
	engine.Connect(conn)

	c := newConsole(engine)
	c.refreshDelay = time.Millisecond
	c.handleLine("refresh")

	events := conn.snapshot()
	require.NotEmpty(t, events)
	announce, ok := events[0].(chat.ChatMessage)
	require.True(t, ok)
	assert.Contains(t, announce.HTML, "The server has issued a refresh")

	require.Eventually(t, func() bool {
		for _, ev := range conn.snapshot() {
			if _, ok := ev.(chat.Refresh); ok {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond, "refresh directive follows the announcement")
}

func TestConsoleQuietCommands(t *testing.T) {
	engine := chat.NewEngine()
	conn := &stubConn{}
	engine.Connect(conn)

	c := newConsole(engine)
	for _, line := range []string{"help", "rooms", "bogus", "", "   "} {
		c.handleLine(line)
	}
	assert.Empty(t, conn.snapshot(), "log-only commands never reach clients")
}

func TestConsoleRunReadsLines(t *testing.T) {
	engine := chat.NewEngine()
	conn := &stubConn{}
	engine.Connect(conn)

	newConsole(engine).run(strings.NewReader("say one\nsay two\n"))

	events := conn.snapshot()
	require.Len(t, events, 2)
}
