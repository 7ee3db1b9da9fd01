package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier accepts tokens of the form "ok:<userID>".
type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (string, error) {
	const prefix = "ok:"
	if len(token) > len(prefix) && token[:len(prefix)] == prefix {
		return token[len(prefix):], nil
	}
	return "", errors.New("bad token")
}

func newTestHub(t *testing.T) (*Hub, PresenceStore) {
	t.Helper()
	p := NewMemoryPresence()
	h := NewHub(p, stubVerifier{}, zerolog.Nop())
	h.AttachRelay(NewRelay(p, h, DropOffline, zerolog.Nop()))
	return h, p
}

func addClient(h *Hub, sessionID string) *Client {
	c := &Client{
		SessionID: sessionID,
		hub:       h,
		send:      make(chan []byte, sendQueueSize),
	}
	h.add(c)
	return c
}

func drain(c *Client) [][]byte {
	var frames [][]byte
	for {
		select {
		case f := <-c.send:
			frames = append(frames, f)
		default:
			return frames
		}
	}
}

func TestHub_RegisterBindsVerifiedIdentity(t *testing.T) {
	h, p := newTestHub(t)
	c := addClient(h, "s1")

	h.handleEvent(context.Background(), c, InboundEvent{Type: EventRegister, Token: "ok:42"})

	sid, online, err := p.Lookup(context.Background(), "42")
	require.NoError(t, err)
	require.True(t, online)
	assert.Equal(t, "s1", sid)
	assert.Equal(t, "42", c.UserID())
}

func TestHub_RegisterRejectsInvalidToken(t *testing.T) {
	h, p := newTestHub(t)
	c := addClient(h, "s1")

	h.handleEvent(context.Background(), c, InboundEvent{Type: EventRegister, Token: "forged"})

	_, online, err := p.Lookup(context.Background(), "forged")
	require.NoError(t, err)
	assert.False(t, online)
	assert.Empty(t, c.UserID())
}

func TestHub_NotifyDeliversToExactlyOneSession(t *testing.T) {
	h, _ := newTestHub(t)
	target := addClient(h, "s1")
	other := addClient(h, "s2")

	h.handleEvent(context.Background(), target, InboundEvent{Type: EventRegister, Token: "ok:u1"})
	h.handleEvent(context.Background(), other, InboundEvent{Type: EventRegister, Token: "ok:u2"})

	h.handleEvent(context.Background(), other, InboundEvent{
		Type:    EventNotify,
		To:      "u1",
		Message: json.RawMessage(`"you got mail"`),
	})

	frames := drain(target)
	require.Len(t, frames, 1)

	var ev outboundEvent
	require.NoError(t, json.Unmarshal(frames[0], &ev))
	assert.Equal(t, EventNotification, ev.Type)
	assert.Equal(t, "u1", ev.To)

	assert.Empty(t, drain(other))
}

func TestHub_NotifyWithoutTargetReachesEveryone(t *testing.T) {
	h, _ := newTestHub(t)
	a := addClient(h, "s1")
	b := addClient(h, "s2")

	h.handleEvent(context.Background(), a, InboundEvent{
		Type:    EventNotify,
		Message: json.RawMessage(`"announcement"`),
	})

	assert.Len(t, drain(a), 1)
	assert.Len(t, drain(b), 1)
}

func TestHub_RemoveClearsPresence(t *testing.T) {
	h, p := newTestHub(t)
	c := addClient(h, "s1")
	h.handleEvent(context.Background(), c, InboundEvent{Type: EventRegister, Token: "ok:u1"})

	h.remove(c)

	_, online, err := p.Lookup(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, online)

	// Second remove of the same client must not panic or double-close.
	h.remove(c)
}

func TestHub_SendToRacingDisconnectDoesNotPanic(t *testing.T) {
	h, _ := newTestHub(t)
	ev := Event{Message: json.RawMessage(`"x"`)}

	// A disconnect closes the client's send channel while senders are still
	// in flight; the hub must serialize the close against every send.
	for i := 0; i < 200; i++ {
		c := addClient(h, "racy")

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					_ = h.SendTo("racy", ev)
				}
			}()
		}
		h.remove(c)
		wg.Wait()

		// Once removed, the session is gone for good.
		assert.Error(t, h.SendTo("racy", ev))
	}
}

func TestHub_SendToUnknownSessionErrors(t *testing.T) {
	h, _ := newTestHub(t)
	err := h.SendTo("missing", Event{Message: json.RawMessage(`"x"`)})
	assert.Error(t, err)
}
