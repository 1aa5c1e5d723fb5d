package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	model "bid-sniper/internal/models"
	"bid-sniper/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans scheduler events out to every connected websocket subscriber.
// It implements the scheduler's event sink, so the scheduler never knows
// websockets exist.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]bool
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*client]bool),
	}
}

// Run owns the subscriber set until ctx is cancelled. Must run in its own
// goroutine before the first Emit.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			go c.writePump()
			utils.Info("hub: subscriber connected", map[string]any{"client_id": c.id})

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				utils.Info("hub: subscriber disconnected", map[string]any{"client_id": c.id})
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// A full send buffer means a stalled client; drop it so
					// it cannot hold up the others.
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	c.conn.Close()
}

// Emit queues one event for broadcast. Never blocks; when the buffer is full
// the event is dropped from the live feed (the audit trail still has it).
func (h *Hub) Emit(ev model.SniperEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		utils.Warn("hub: failed to marshal event", map[string]any{"event": ev.Event, "error": err.Error()})
		return
	}
	select {
	case h.broadcast <- b:
	default:
		utils.Warn("hub: broadcast buffer full, event dropped", map[string]any{"event": ev.Event})
	}
}

// ServeWS handles GET /events/ws by upgrading the connection and registering
// the subscriber.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("hub: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	cl := &client{
		id:   utils.GenerateID(),
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- cl
	go cl.readPump(h.unregister)
}

// writePump drains the client's send channel to the socket and keeps the
// connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client input; the feed is one-way. It exists to notice
// disconnects and answer pongs.
func (c *client) readPump(unregister chan *client) {
	defer func() {
		unregister <- c
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
