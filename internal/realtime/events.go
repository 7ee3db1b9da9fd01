package realtime

import "encoding/json"

// Inbound event types a connected client may send.
const (
	EventRegister = "register"
	EventNotify   = "notify"
)

// EventNotification is the only server-pushed event type.
const EventNotification = "notification"

// InboundEvent is the wire frame read from a client socket.
type InboundEvent struct {
	Type string `json:"type"`
	// Token carries the signed identity token on a register event. The
	// server derives the user from the verified claims; a raw client-supplied
	// user id is never trusted.
	Token string `json:"token,omitempty"`
	// To and Message form a notify request.
	To      string          `json:"to,omitempty"`
	Message json.RawMessage `json:"message,omitempty"`
}

// Event is one notification to relay. To is the target userID; empty means
// broadcast. Message is opaque to the relay.
type Event struct {
	To      string          `json:"to,omitempty"`
	Message json.RawMessage `json:"message"`
}

type outboundEvent struct {
	Type    string          `json:"type"`
	To      string          `json:"to,omitempty"`
	Message json.RawMessage `json:"message"`
}

func marshalNotification(ev Event) ([]byte, error) {
	return json.Marshal(outboundEvent{Type: EventNotification, To: ev.To, Message: ev.Message})
}
