package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/openpad/gamepad/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // local tool, any origin may connect
	},
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := hub.NewClient(s.hub, conn, s.log)
	s.hub.Register(client)

	// New clients start with the current full state of their player.
	s.broadcaster.SendInitialState(client)

	go client.WritePump()
	go client.ReadPump(s.ctrl)
}
