package handlers

import (
	"net/http"

	"github.com/careerconnect/careerconnect/internal/realtime"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WSHandler upgrades GET /ws connections and hands them to the hub.
type WSHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewWSHandler(hub *realtime.Hub, allowedOrigins []string, log zerolog.Logger) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// Non-browser clients send no Origin header.
				return origin == "" || allowed[origin]
			},
		},
		log: log.With().Str("component", "ws").Logger(),
	}
}

func (h *WSHandler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	h.hub.Serve(conn)
}
