package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// IdentityVerifier turns the token carried by a register event into a
// verified userID. Implemented by the auth service.
type IdentityVerifier interface {
	VerifyToken(token string) (string, error)
}

// Hub owns every live websocket client, keyed by session id, and implements
// Sender for the relay.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	presence PresenceStore
	verifier IdentityVerifier
	relay    *Relay
	log      zerolog.Logger
}

func NewHub(presence PresenceStore, verifier IdentityVerifier, log zerolog.Logger) *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		presence: presence,
		verifier: verifier,
		log:      log.With().Str("component", "hub").Logger(),
	}
}

// AttachRelay wires the relay in after construction; the relay itself needs
// the hub as its Sender.
func (h *Hub) AttachRelay(r *Relay) { h.relay = r }

func (h *Hub) add(c *Client) {
	h.mu.Lock()
	h.clients[c.SessionID] = c
	h.mu.Unlock()
	h.log.Debug().Str("session", c.SessionID).Msg("client connected")
}

// remove drops the client and clears its presence entry. Safe to call twice.
func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	cur, ok := h.clients[c.SessionID]
	if ok && cur == c {
		delete(h.clients, c.SessionID)
		close(c.send)
	}
	h.mu.Unlock()
	if !ok {
		return
	}

	if err := h.presence.Unregister(context.Background(), c.SessionID); err != nil {
		h.log.Error().Err(err).Str("session", c.SessionID).Msg("presence unregister failed")
	}
	h.log.Debug().Str("session", c.SessionID).Str("user", c.UserID()).Msg("client disconnected")
}

// SendTo queues ev for exactly one session. Returns an error when the session
// is unknown or its outbound queue is full.
func (h *Hub) SendTo(sessionID string, ev Event) error {
	frame, err := marshalNotification(ev)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	// The read lock is held across the send: remove closes c.send under the
	// write lock, so a send can never race the close.
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[sessionID]
	if !ok {
		return fmt.Errorf("no client for session %s", sessionID)
	}

	select {
	case c.send <- frame:
		return nil
	default:
		return fmt.Errorf("session %s send queue full", sessionID)
	}
}

// Broadcast queues ev for every connected session. Slow clients are skipped
// rather than blocking the hub.
func (h *Hub) Broadcast(ev Event) {
	frame, err := marshalNotification(ev)
	if err != nil {
		h.log.Error().Err(err).Msg("marshal notification")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- frame:
		default:
			h.log.Warn().Str("session", c.SessionID).Msg("send queue full, frame skipped")
		}
	}
}

func (h *Hub) handleEvent(ctx context.Context, c *Client, ev InboundEvent) {
	switch ev.Type {
	case EventRegister:
		userID, err := h.verifier.VerifyToken(ev.Token)
		if err != nil {
			h.log.Warn().Err(err).Str("session", c.SessionID).Msg("register rejected")
			return
		}
		if err := h.presence.Register(ctx, userID, c.SessionID); err != nil {
			h.log.Error().Err(err).Str("user", userID).Msg("presence register failed")
			return
		}
		c.setUserID(userID)
		h.log.Info().Str("user", userID).Str("session", c.SessionID).Msg("user registered")

	case EventNotify:
		h.relay.Relay(ctx, Event{To: ev.To, Message: ev.Message})

	default:
		h.log.Debug().Str("type", ev.Type).Msg("unknown event ignored")
	}
}
