package chat

import "errors"

// Audience is the scope a broadcast is delivered to.
type Audience int

const (
	// AudienceSelf targets only the acting session's connection.
	AudienceSelf Audience = iota
	// AudienceRoomOthers targets every other member of the acting
	// session's current room.
	AudienceRoomOthers
	// AudienceRoom targets all members of the acting session's current
	// room, the sender included.
	AudienceRoom
	// AudienceAll targets every connected session server-wide,
	// authenticated or not, regardless of room.
	AudienceAll
)

// Kind selects the decoration applied to a message body before dispatch.
type Kind int

const (
	// KindPlain leaves the body unchanged.
	KindPlain Kind = iota
	// KindSubtle wraps the body in muted italics and marks it quiet.
	KindSubtle
	// KindWarning prefixes the body with a warning glyph.
	KindWarning
	// KindUrgent wraps the body in bold red.
	KindUrgent
)

// ErrInvalidAudience reports a broadcast with an audience outside the
// enumerated set. It indicates a defect in the caller, not bad input.
var ErrInvalidAudience = errors.New("chat: invalid broadcast audience")

// Gateway fans outbound messages out to their audience. All outbound
// traffic flows through it; callers hold the engine mutex.
type Gateway struct {
	reg   *registry
	conns map[*Session]struct{}
}

func decorate(kind Kind, body string) (html string, quiet bool) {
	switch kind {
	case KindSubtle:
		return `<i style="color: grey;">` + body + `</i>`, true
	case KindWarning:
		return "⚠️ " + body, false
	case KindUrgent:
		return `<b style="color: red">` + body + `</b>`, false
	default:
		return body, false
	}
}

// Send decorates body according to kind and delivers it to the audience
// scoped around from. from may be nil only for AudienceAll.
func (g *Gateway) Send(from *Session, aud Audience, kind Kind, body string) error {
	html, quiet := decorate(kind, body)
	ev := ChatMessage{HTML: html, Quiet: quiet}
	switch aud {
	case AudienceSelf:
		from.conn.Push(ev)
	case AudienceRoomOthers:
		for _, m := range g.reg.members(from.roomID) {
			if m != from {
				m.conn.Push(ev)
			}
		}
	case AudienceRoom:
		for _, m := range g.reg.members(from.roomID) {
			m.conn.Push(ev)
		}
	case AudienceAll:
		for s := range g.conns {
			s.conn.Push(ev)
		}
	default:
		return ErrInvalidAudience
	}
	return nil
}

// Refresh pushes a reload directive to every connected session.
func (g *Gateway) Refresh() {
	for s := range g.conns {
		s.conn.Push(Refresh{})
	}
}
