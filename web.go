package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/gosuda/teachat/chat"
)

// webServer wires HTTP routes to the chat engine.
type webServer struct {
	engine   *chat.Engine
	upgrader websocket.Upgrader
}

func newWebServer(engine *chat.Engine) *webServer {
	return &webServer{
		engine: engine,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *webServer) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/ws", s.handleWebSocket)
	return r
}

func (s *webServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("upgrade websocket")
		return
	}
	c := newClient(conn, s.engine)
	go c.writeLoop()
	c.readLoop()
}
