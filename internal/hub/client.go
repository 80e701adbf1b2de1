package hub

import (
	"encoding/json"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Controller is the input-side contract the websocket clients steer:
// switching the listened player slot and requesting vibration.
type Controller interface {
	SelectPlayer(player int) bool
	Rumble(player int, left, right float64) bool
}

// Client represents one connected WebSocket client.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	// player is the 1-based player index this client is listening to.
	// ReadPump writes it while broadcast goroutines read it, so access
	// goes through Player/setPlayer.
	player atomic.Int32
	log    zerolog.Logger
}

// NewClient creates a client attached to the hub, listening to player 1.
func NewClient(hub *Hub, conn *websocket.Conn, log zerolog.Logger) *Client {
	c := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
		log:  log.With().Str("component", "client").Logger(),
	}
	c.player.Store(1)
	return c
}

// Player reports the 1-based player index this client is listening to.
func (c *Client) Player() int {
	return int(c.player.Load())
}

func (c *Client) setPlayer(player int) {
	c.player.Store(int32(player))
}

// WritePump drains the send channel into the WebSocket connection.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// ReadPump reads client commands until the connection drops.
func (c *Client) ReadPump(ctrl Controller) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.log.Warn().Err(err).Msg("bad client message")
			continue
		}

		switch msg.Type {
		case "select_player":
			if !ctrl.SelectPlayer(msg.Player) {
				c.log.Warn().Int("player", msg.Player).Msg("invalid player index")
				continue
			}
			c.setPlayer(msg.Player)
			c.reply(NewPlayerSelectedMessage(msg.Player))
			c.log.Debug().Int("player", msg.Player).Msg("client switched player")

		case "rumble":
			ok := ctrl.Rumble(msg.Player, msg.Left, msg.Right)
			c.reply(NewRumbleResultMessage(msg.Player, ok))
		}
	}
}

func (c *Client) reply(msg *WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
