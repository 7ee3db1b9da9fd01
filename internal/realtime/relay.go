package realtime

import (
	"context"

	"github.com/rs/zerolog"
)

// Sender delivers already-marshaled notification frames to live sessions.
// The hub implements it; tests substitute a recorder.
type Sender interface {
	SendTo(sessionID string, ev Event) error
	Broadcast(ev Event)
}

// DeliveryStrategy decides what happens to a targeted notification whose
// target has no live session.
type DeliveryStrategy int

const (
	// DropOffline drops targeted notifications for offline users and logs
	// them. Untargeted events still broadcast.
	DropOffline DeliveryStrategy = iota
	// FallbackBroadcast mirrors the legacy behavior: a targeted notification
	// for an offline user is broadcast to every connected session. That leaks
	// the payload to unrelated users, so it is opt-in.
	FallbackBroadcast
)

// Relay routes one notification event to its audience. Delivery is
// fire-and-forget: no retries, no acks, no queuing for offline targets.
type Relay struct {
	presence PresenceStore
	sender   Sender
	strategy DeliveryStrategy
	log      zerolog.Logger
}

func NewRelay(presence PresenceStore, sender Sender, strategy DeliveryStrategy, log zerolog.Logger) *Relay {
	return &Relay{
		presence: presence,
		sender:   sender,
		strategy: strategy,
		log:      log.With().Str("component", "relay").Logger(),
	}
}

// Relay delivers ev directly when the target is online, otherwise applies the
// configured offline strategy. Events without a target always broadcast.
func (r *Relay) Relay(ctx context.Context, ev Event) {
	if ev.To != "" {
		sid, online, err := r.presence.Lookup(ctx, ev.To)
		if err != nil {
			r.log.Error().Err(err).Str("to", ev.To).Msg("presence lookup failed")
		} else if online {
			if err := r.sender.SendTo(sid, ev); err == nil {
				return
			}
			// Session vanished between lookup and send; treat as offline.
		}
		if r.strategy == DropOffline {
			r.log.Debug().Str("to", ev.To).Msg("target offline, notification dropped")
			return
		}
	}
	r.sender.Broadcast(ev)
}
