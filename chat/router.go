package chat

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Chat routes an inbound text message. Events from sessions that never
// authenticated are dropped without a trace; everything else either earns
// the sender a warning, runs as a slash-command, or is rendered and
// broadcast to the sender's room.
func (s *Session) Chat(message string) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.state != stateAuthenticated {
		return
	}
	switch {
	case utf8.RuneCountInString(message) > MaxMessageLength:
		e.emit(s, AudienceSelf, KindWarning, "Message is too long!")
	case strings.TrimSpace(message) == "":
		e.emit(s, AudienceSelf, KindWarning, "Empty messages won't be submitted!")
	case strings.HasPrefix(message, "/"):
		e.runCommand(s, message)
	default:
		e.chatLine(s, RenderMessage(message))
	}
}

// Image routes an inbound image payload. Valid base64 data URIs are
// wrapped in an image element and broadcast as a chat line; anything else
// earns the sender a warning. A panic inside validation is treated as the
// oversized-image case and never escapes.
func (s *Session) Image(payload string) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.state != stateAuthenticated {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("cause", r).Str("user", s.username).Msg("image validation failed")
			e.emit(s, AudienceSelf, KindWarning, "Images larger than a few megabytes are not supported!")
		}
	}()
	if !validImagePayload(payload) {
		e.emit(s, AudienceSelf, KindWarning, "Invalid image!")
		return
	}
	// onload hook makes the receiving client scroll once the image is in.
	e.chatLine(s, `<p><img onload="scrollDown()" class="chatImage" src="`+payload+`" alt="[Invalid Image]" /></p>`)
}

// chatLine broadcasts body to the sender's whole room as if the sender
// typed it, prefixed with their name in bold.
func (e *Engine) chatLine(s *Session, body string) {
	e.emit(s, AudienceRoom, KindPlain, "<strong>"+s.username+"</strong>: "+body)
}
