package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/careerconnect/careerconnect/internal/models"
	"github.com/careerconnect/careerconnect/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	msgs []models.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *models.Message) error {
	msg.ID = uint(len(f.msgs) + 1)
	msg.CreatedAt = time.Unix(int64(len(f.msgs)), 0)
	f.msgs = append(f.msgs, *msg)
	return nil
}

func (f *fakeMessageRepo) Conversation(_ context.Context, userA, userB uint, jobID *uint) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.msgs {
		pair := (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA)
		if !pair {
			continue
		}
		if jobID != nil && (m.JobID == nil || *m.JobID != *jobID) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMessageRepo) MarkRead(_ context.Context, senderID, receiverID uint) error {
	for i := range f.msgs {
		if f.msgs[i].SenderID == senderID && f.msgs[i].ReceiverID == receiverID {
			f.msgs[i].Read = true
		}
	}
	return nil
}

func newMessageRouter(repo services.MessageRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMessageHandler(services.NewMessageService(repo))

	r := gin.New()
	r.POST("/api/messages/send", h.Send)
	r.GET("/api/messages/conversation", h.Conversation)
	r.POST("/api/messages/read", h.MarkRead)
	return r
}

func TestMessageHandler_SendCreated(t *testing.T) {
	repo := &fakeMessageRepo{}
	r := newMessageRouter(repo)

	body := `{"senderId":1,"receiverId":2,"jobId":7,"content":"hello"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/messages/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.msgs, 1)
	assert.Equal(t, uint(1), repo.msgs[0].SenderID)
	require.NotNil(t, repo.msgs[0].JobID)
	assert.Equal(t, uint(7), *repo.msgs[0].JobID)
}

func TestMessageHandler_SendMissingFields(t *testing.T) {
	repo := &fakeMessageRepo{}
	r := newMessageRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/messages/send",
		strings.NewReader(`{"receiverId":2,"content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.msgs)
}

func TestMessageHandler_ConversationRejectsUndefinedIDs(t *testing.T) {
	r := newMessageRouter(&fakeMessageRepo{})

	for _, target := range []string{
		"/api/messages/conversation?user1=undefined&user2=2",
		"/api/messages/conversation?user2=2",
		"/api/messages/conversation?user1=1&user2=abc",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestMessageHandler_ConversationReturnsMessages(t *testing.T) {
	repo := &fakeMessageRepo{}
	jobID := uint(9)
	require.NoError(t, repo.Create(context.Background(), &models.Message{SenderID: 1, ReceiverID: 2, Content: "a"}))
	require.NoError(t, repo.Create(context.Background(), &models.Message{SenderID: 2, ReceiverID: 1, Content: "b", JobID: &jobID}))

	r := newMessageRouter(repo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/messages/conversation?user1=1&user2=2", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var msgs []models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
	assert.Len(t, msgs, 2)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/messages/conversation?user1=1&user2=2&jobId=9", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msgs))
	assert.Len(t, msgs, 1)
}

func TestMessageHandler_MarkRead(t *testing.T) {
	repo := &fakeMessageRepo{}
	require.NoError(t, repo.Create(context.Background(), &models.Message{SenderID: 1, ReceiverID: 2, Content: "a"}))

	r := newMessageRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/messages/read",
		strings.NewReader(`{"senderId":1,"receiverId":2}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.msgs[0].Read)
}
