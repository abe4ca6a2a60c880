package chat

import (
	"strings"

	"github.com/rs/zerolog/log"
)

type command int

const (
	cmdUnknown command = iota
	cmdCommands
	cmdHelp
	cmdJoin
	cmdRoom
	cmdEmotes
	cmdLenny
	cmdShrug
	cmdTableflip
	cmdLod
)

func parseCommand(word string) command {
	switch strings.ToLower(word) {
	case "/commands":
		return cmdCommands
	case "/help":
		return cmdHelp
	case "/join":
		return cmdJoin
	case "/room":
		return cmdRoom
	case "/emotes":
		return cmdEmotes
	case "/lenny":
		return cmdLenny
	case "/shrug":
		return cmdShrug
	case "/tableflip":
		return cmdTableflip
	case "/lod":
		return cmdLod
	default:
		return cmdUnknown
	}
}

const (
	commandsText = "<u>Commands:</u><br/>/commands - Show a list of commands<br/>/help - Show some help<br/>/join [Room Name] - Connect to the specified room. Leave room name blank to return to the main lobby<br/>/room - Show the current room name<br/>/emotes - Show a list of emoticons<br/>"
	helpText     = "Welcome to TeaChat, a simple chatroom web app. Type /commands for a list of commands."
	emotesText   = "/shrug - ¯\\_(ツ)_/¯<br/>/tableflip - (╯°□°）╯︵ ┻━┻<br/>/lenny  - ( ͡° ͜ʖ ͡°)<br>/lod - ಠ_ಠ"
	unknownText  = "Unknown command - Type /commands for a list of valid commands."
)

// runCommand interprets a slash-prefixed message: tokenize on spaces, the
// lower-cased first token names the command, the rest are arguments.
func (e *Engine) runCommand(s *Session, message string) {
	words := strings.Split(message, " ")
	switch parseCommand(words[0]) {
	case cmdCommands:
		e.emit(s, AudienceSelf, KindPlain, commandsText)
	case cmdHelp:
		e.emit(s, AudienceSelf, KindPlain, helpText)
	case cmdJoin:
		e.switchRoom(s, Clean(strings.Join(words[1:], " ")))
	case cmdRoom:
		if s.roomID == "" {
			e.emit(s, AudienceSelf, KindPlain, "You are in the main lobby")
		} else {
			e.emit(s, AudienceSelf, KindPlain, "You are in the room: "+s.roomID)
		}
	case cmdEmotes:
		e.emit(s, AudienceSelf, KindPlain, emotesText)
	case cmdLenny:
		e.chatLine(s, "( ͡° ͜ʖ ͡°)")
	case cmdShrug:
		e.chatLine(s, "¯\\_(ツ)_/¯")
	case cmdTableflip:
		e.chatLine(s, "(╯°□°）╯︵ ┻━┻")
	case cmdLod:
		e.chatLine(s, "ಠ_ಠ")
	default:
		e.emit(s, AudienceSelf, KindPlain, unknownText)
	}
}

// switchRoom moves s from its current room to target. The old room sees
// the leave before the membership changes and the new room sees the join
// after it, all under one lock, so no other client ever observes s in
// both rooms or in neither.
func (e *Engine) switchRoom(s *Session, target string) {
	if target == s.roomID {
		if target == "" {
			e.emit(s, AudienceSelf, KindWarning, "You are already in the main lobby")
		} else {
			e.emit(s, AudienceSelf, KindWarning, "You are already in this room")
		}
		return
	}
	e.emit(s, AudienceRoomOthers, KindSubtle, s.username+" has left the room...")
	e.reg.leave(s)
	s.roomID = target
	e.reg.join(s, target)
	e.emit(s, AudienceRoomOthers, KindSubtle, s.username+" has joined the room...")
	s.conn.Push(RoomChange{RoomID: s.roomID})
	if s.roomID == "" {
		e.emit(s, AudienceSelf, KindSubtle, "You have joined the main lobby")
		log.Info().Str("user", s.username).Msg("joined the main lobby")
	} else {
		e.emit(s, AudienceSelf, KindSubtle, "You have joined the room: "+s.roomID)
		log.Info().Str("user", s.username).Str("room", s.roomID).Msg("joined room")
	}
}
