package chat

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type sessionState int

const (
	stateConnected sessionState = iota
	stateAuthenticated
	stateDisconnected
)

// Session is the server-side state of one live connection. It is created
// unauthenticated, becomes authenticated through a successful join
// exchange, and dies with its connection; nothing persists.
type Session struct {
	id       uuid.UUID
	conn     Conn
	engine   *Engine
	username string
	roomID   string
	state    sessionState
}

// Join handles the credentials sent as the first event on a connection.
// A nil roomID means the client never supplied one. An unusable username
// or missing room id refuses authentication and force-closes the
// connection; otherwise the session joins its (sanitized) room and the
// rest of that room is quietly told about it.
func (s *Session) Join(username string, roomID *string) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.state != stateConnected {
		return
	}

	cleaned := Clean(username)
	if cleaned == "" {
		s.conn.Push(Authenticated{OK: false})
		log.Warn().Str("addr", s.conn.RemoteAddr()).Msg("refused authentication (invalid username)")
		s.conn.Close()
		return
	}
	if roomID == nil {
		s.conn.Push(Authenticated{OK: false})
		log.Warn().Str("addr", s.conn.RemoteAddr()).Msg("refused authentication (unspecified room)")
		s.conn.Close()
		return
	}

	s.username = cleaned
	s.roomID = Clean(*roomID)
	s.state = stateAuthenticated
	e.reg.join(s, s.roomID)
	s.conn.Push(RoomChange{RoomID: s.roomID})
	s.conn.Push(Authenticated{OK: true, Username: s.username})
	log.Info().Str("user", s.username).Str("addr", s.conn.RemoteAddr()).Msg("authenticated")
	e.emit(s, AudienceRoomOthers, KindSubtle, s.username+" has joined the room...")
}

// Disconnect finalizes the session. Sessions that authenticated announce
// their departure to the rest of their room; ones that never did just go.
func (s *Session) Disconnect() {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.state == stateDisconnected {
		return
	}
	wasAuthenticated := s.state == stateAuthenticated
	s.state = stateDisconnected
	delete(e.conns, s)
	if !wasAuthenticated {
		return
	}
	log.Info().Str("user", s.username).Str("addr", s.conn.RemoteAddr()).Msg("disconnected")
	e.emit(s, AudienceRoomOthers, KindSubtle, s.username+" has left the room...")
	e.reg.leave(s)
}
