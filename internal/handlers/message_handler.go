package handlers

import (
	"net/http"
	"strconv"

	"github.com/careerconnect/careerconnect/internal/dtos"
	"github.com/careerconnect/careerconnect/internal/services"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	Messages *services.MessageService
}

func NewMessageHandler(msgs *services.MessageService) *MessageHandler {
	return &MessageHandler{Messages: msgs}
}

// Send is POST /api/messages/send.
func (h *MessageHandler) Send(c *gin.Context) {
	var req dtos.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields")
		return
	}

	msg, err := h.Messages.Send(c.Request.Context(), req.SenderID, req.ReceiverID, req.JobID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": msg})
}

// Conversation is GET /api/messages/conversation?user1=&user2=&jobId=.
// Clients poll this on a short interval while a chat view is open; nothing is
// pushed for message history.
func (h *MessageHandler) Conversation(c *gin.Context) {
	user1, ok1 := parseUserParam(c.Query("user1"))
	user2, ok2 := parseUserParam(c.Query("user2"))
	if !ok1 || !ok2 {
		badRequest(c, "Invalid or missing user IDs")
		return
	}

	var jobID *uint
	if raw := c.Query("jobId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			badRequest(c, "Invalid jobId")
			return
		}
		v := uint(id)
		jobID = &v
	}

	msgs, err := h.Messages.Conversation(c.Request.Context(), user1, user2, jobID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// MarkRead is POST /api/messages/read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	var req dtos.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Missing required fields")
		return
	}

	if err := h.Messages.MarkRead(c.Request.Context(), req.SenderID, req.ReceiverID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseUserParam rejects absent ids and the literal "undefined" a broken
// client sends when its local state is empty.
func parseUserParam(raw string) (uint, bool) {
	if raw == "" || raw == "undefined" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
