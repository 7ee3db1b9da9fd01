package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	sendQueueSize  = 32
)

// Client is one live websocket connection. UserID stays empty until the peer
// sends a valid register event.
type Client struct {
	SessionID string

	mu     sync.Mutex
	userID string

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Serve registers conn with the hub and runs its pumps. The read pump runs on
// the calling goroutine and returns when the connection drops.
func (h *Hub) Serve(conn *websocket.Conn) {
	c := &Client{
		SessionID: uuid.NewString(),
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, sendQueueSize),
	}
	h.add(c)
	go c.writePump()
	c.readPump()
}

func (c *Client) setUserID(id string) {
	c.mu.Lock()
	c.userID = id
	c.mu.Unlock()
}

// UserID returns the verified identity, or "" before registration.
func (c *Client) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug().Err(err).Str("session", c.SessionID).Msg("read error")
			}
			return
		}

		var ev InboundEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			c.hub.log.Debug().Err(err).Str("session", c.SessionID).Msg("malformed event")
			continue
		}
		c.hub.handleEvent(context.Background(), c, ev)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
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
