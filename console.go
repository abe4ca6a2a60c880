package main

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gosuda/teachat/chat"
)

const consoleHelp = "*Commands List*\nhelp - Show a list of commands\nsay [message] - Say a message to the server\nrooms - Show a list of rooms\nrefresh - Refresh all connected clients"

// console is the operator's line-based command interface on stdin. It
// only ever reaches clients through the engine's server-wide broadcast.
type console struct {
	engine *chat.Engine
	// refreshDelay gives browsers time to show the announcement before
	// the reload directive lands.
	refreshDelay time.Duration
}

func newConsole(engine *chat.Engine) *console {
	return &console{engine: engine, refreshDelay: 3 * time.Second}
}

func (c *console) run(in io.Reader) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		c.handleLine(sc.Text())
	}
}

func (c *console) handleLine(line string) {
	words := strings.Split(strings.TrimSpace(line), " ")
	switch words[0] {
	case "":
	case "help":
		log.Info().Msg(consoleHelp)
	case "say":
		c.engine.BroadcastAll(chat.KindUrgent, "[SERVER]: "+strings.Join(words[1:], " "))
	case "rooms":
		log.Info().Strs("rooms", c.engine.Rooms()).Msg("active rooms")
	case "refresh":
		log.Info().Msg("announcing the refresh")
		c.engine.BroadcastAll(chat.KindUrgent, "⚠️ The server has issued a refresh. Your browser will refresh in a few seconds.")
		time.AfterFunc(c.refreshDelay, func() {
			c.engine.RefreshAll()
			log.Info().Msg("clients have been refreshed")
		})
	default:
		log.Info().Msg("Unknown command - Type help for a list of valid commands.")
	}
}
