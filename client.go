package main

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/gosuda/teachat/chat"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second
	// Mobile clients tend to drop the connection when pings are spaced
	// more than ~5 seconds apart.
	pingInterval = 2500 * time.Millisecond
	// Transport-level ceiling; the engine enforces its own, far smaller,
	// message limits.
	maxInboundBytes = 16 * 1000 * 1000
	sendBufferSize  = 64
)

// clientEnvelope is the JSON envelope received from browsers. RoomID is a
// pointer so the engine can tell an absent room id from an empty one.
type clientEnvelope struct {
	Event    string  `json:"event"`
	Username string  `json:"username,omitempty"`
	RoomID   *string `json:"roomID,omitempty"`
	Message  string  `json:"message,omitempty"`
	Data     string  `json:"data,omitempty"`
}

// client owns one websocket connection and bridges it to a chat.Session.
type client struct {
	conn    *websocket.Conn
	send    chan chat.Event
	session *chat.Session
	closed  atomic.Bool
}

func newClient(conn *websocket.Conn, engine *chat.Engine) *client {
	c := &client{
		conn: conn,
		send: make(chan chat.Event, sendBufferSize),
	}
	c.session = engine.Connect(c)
	return c
}

// Push queues an outbound event, dropping the oldest queued event instead
// of blocking the engine when the buffer is full.
func (c *client) Push(ev chat.Event) {
	if c.closed.Load() {
		return
	}
	select {
	case c.send <- ev:
	default:
		select {
		case <-c.send:
		default:
		}
		select {
		case c.send <- ev:
		default:
		}
	}
}

// Close force-closes the websocket; the read pump then winds the session
// down through its usual exit path.
func (c *client) Close() {
	_ = c.conn.Close()
}

func (c *client) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *client) shutdown() {
	if c.closed.Swap(true) {
		return
	}
	c.session.Disconnect()
	close(c.send)
	_ = c.conn.Close()
}

func (c *client) readLoop() {
	defer c.shutdown()
	c.conn.SetReadLimit(maxInboundBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("addr", c.RemoteAddr()).Msg("read message")
			return
		}
		var msg clientEnvelope
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Debug().Err(err).Str("addr", c.RemoteAddr()).Msg("malformed envelope")
			continue
		}
		switch msg.Event {
		case "join":
			c.session.Join(msg.Username, msg.RoomID)
		case "chat_message":
			c.session.Chat(msg.Message)
		case "image":
			c.session.Image(msg.Data)
		default:
			log.Debug().Str("event", msg.Event).Str("addr", c.RemoteAddr()).Msg("unknown inbound event")
		}
	}
}

func (c *client) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case ev, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(encodeEvent(ev)); err != nil {
				log.Debug().Err(err).Str("addr", c.RemoteAddr()).Msg("write json")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// encodeEvent flattens a typed engine event onto its wire envelope.
func encodeEvent(ev chat.Event) any {
	switch ev := ev.(type) {
	case chat.Authenticated:
		return struct {
			Event    string `json:"event"`
			OK       bool   `json:"ok"`
			Username string `json:"username,omitempty"`
		}{ev.EventName(), ev.OK, ev.Username}
	case chat.RoomChange:
		return struct {
			Event  string `json:"event"`
			RoomID string `json:"roomID"`
		}{ev.EventName(), ev.RoomID}
	case chat.ChatMessage:
		return struct {
			Event string `json:"event"`
			HTML  string `json:"html"`
			Quiet bool   `json:"quiet"`
		}{ev.EventName(), ev.HTML, ev.Quiet}
	default:
		return struct {
			Event string `json:"event"`
		}{ev.EventName()}
	}
}
