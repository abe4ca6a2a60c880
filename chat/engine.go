// Package chat implements the room, session and message-routing engine of
// the TeaChat server: sanitization of untrusted names, the room registry,
// the per-connection session state machine, chat and image routing, the
// slash-command interpreter, and the audience-scoped broadcast gateway.
//
// The engine owns no I/O. Transports hand it a Conn per connection and
// deliver inbound events through the Session methods; every outbound
// message leaves through the gateway as a typed Event.
package chat

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Conn is the transport half of one connected client. Push must not
// block; Close force-closes the underlying connection.
type Conn interface {
	Push(Event)
	Close()
	RemoteAddr() string
}

// Engine coordinates all sessions, the room registry and the broadcast
// gateway. One mutex serializes every inbound event run-to-completion, so
// join/leave/switch sequences are atomic with respect to other clients.
type Engine struct {
	mu    sync.Mutex
	reg   *registry
	gw    *Gateway
	conns map[*Session]struct{}
}

func NewEngine() *Engine {
	e := &Engine{
		reg:   newRegistry(),
		conns: make(map[*Session]struct{}),
	}
	e.gw = &Gateway{reg: e.reg, conns: e.conns}
	return e
}

// Connect registers a fresh, unauthenticated session for conn.
func (e *Engine) Connect(conn Conn) *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := &Session{
		id:     uuid.New(),
		conn:   conn,
		engine: e,
	}
	e.conns[s] = struct{}{}
	log.Debug().Stringer("session", s.id).Str("addr", conn.RemoteAddr()).Msg("client connected")
	return s
}

// emit dispatches through the gateway. The enumerated arguments come from
// within this package, so a dispatch error is a defect worth shouting
// about rather than propagating.
func (e *Engine) emit(from *Session, aud Audience, kind Kind, body string) {
	if err := e.gw.Send(from, aud, kind, body); err != nil {
		log.Error().Err(err).Msg("broadcast dispatch")
	}
}

// BroadcastAll sends a decorated message to every connected session. It is
// the entry point for operator-issued traffic (server say, shutdown and
// refresh notices).
func (e *Engine) BroadcastAll(kind Kind, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.emit(nil, AudienceAll, kind, body)
}

// RefreshAll pushes a reload directive to every connected session.
func (e *Engine) RefreshAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gw.Refresh()
}

// Rooms returns the names of all rooms that currently have members.
func (e *Engine) Rooms() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.roomNames()
}
