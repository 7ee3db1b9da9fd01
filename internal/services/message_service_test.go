package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/careerconnect/careerconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memMessageRepo implements MessageRepo in memory with the same conversation
// semantics as the gorm implementation.
type memMessageRepo struct {
	msgs   []models.Message
	nextID uint
	clock  time.Time
}

func newMemMessageRepo() *memMessageRepo {
	return &memMessageRepo{nextID: 1, clock: time.Unix(1000, 0)}
}

func (m *memMessageRepo) Create(_ context.Context, msg *models.Message) error {
	msg.ID = m.nextID
	m.nextID++
	m.clock = m.clock.Add(time.Second)
	msg.CreatedAt = m.clock
	m.msgs = append(m.msgs, *msg)
	return nil
}

func (m *memMessageRepo) Conversation(_ context.Context, userA, userB uint, jobID *uint) ([]models.Message, error) {
	var out []models.Message
	for _, msg := range m.msgs {
		pair := (msg.SenderID == userA && msg.ReceiverID == userB) ||
			(msg.SenderID == userB && msg.ReceiverID == userA)
		if !pair {
			continue
		}
		if jobID != nil && (msg.JobID == nil || *msg.JobID != *jobID) {
			continue
		}
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memMessageRepo) MarkRead(_ context.Context, senderID, receiverID uint) error {
	for i := range m.msgs {
		if m.msgs[i].SenderID == senderID && m.msgs[i].ReceiverID == receiverID && !m.msgs[i].Read {
			m.msgs[i].Read = true
		}
	}
	return nil
}

func TestMessageService_SendCreatesUnreadMessage(t *testing.T) {
	ctx := context.Background()
	repo := newMemMessageRepo()
	svc := NewMessageService(repo)

	msg, err := svc.Send(ctx, 1, 2, nil, "hi")
	require.NoError(t, err)
	assert.False(t, msg.Read)
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestMessageService_SendValidation(t *testing.T) {
	ctx := context.Background()
	repo := newMemMessageRepo()
	svc := NewMessageService(repo)

	cases := []struct {
		name     string
		sender   uint
		receiver uint
		content  string
	}{
		{"missing sender", 0, 2, "hi"},
		{"missing receiver", 1, 0, "hi"},
		{"missing content", 1, 2, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Send(ctx, tc.sender, tc.receiver, nil, tc.content)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Empty(t, repo.msgs, "validation failures must create no records")
}

func TestMessageService_ConversationOrderingAndSymmetry(t *testing.T) {
	ctx := context.Background()
	repo := newMemMessageRepo()
	svc := NewMessageService(repo)

	jobID := uint(7)
	m1, err := svc.Send(ctx, 1, 2, nil, "first")
	require.NoError(t, err)
	m2, err := svc.Send(ctx, 2, 1, nil, "second")
	require.NoError(t, err)
	m3, err := svc.Send(ctx, 1, 2, &jobID, "third, job scoped")
	require.NoError(t, err)
	// Unrelated pair must never appear.
	_, err = svc.Send(ctx, 1, 3, nil, "other thread")
	require.NoError(t, err)

	msgs, err := svc.Conversation(ctx, 1, 2, nil)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, []uint{m1.ID, m2.ID, m3.ID}, []uint{msgs[0].ID, msgs[1].ID, msgs[2].ID})

	// Same result with the parties swapped.
	swapped, err := svc.Conversation(ctx, 2, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, msgs, swapped)

	scoped, err := svc.Conversation(ctx, 1, 2, &jobID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, m3.ID, scoped[0].ID)
}

func TestMessageService_ConversationValidation(t *testing.T) {
	svc := NewMessageService(newMemMessageRepo())

	_, err := svc.Conversation(context.Background(), 0, 2, nil)
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.Conversation(context.Background(), 1, 0, nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestMessageService_MarkReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemMessageRepo()
	svc := NewMessageService(repo)

	_, err := svc.Send(ctx, 1, 2, nil, "a")
	require.NoError(t, err)
	_, err = svc.Send(ctx, 1, 2, nil, "b")
	require.NoError(t, err)
	_, err = svc.Send(ctx, 2, 1, nil, "reply")
	require.NoError(t, err)

	readState := func() []bool {
		msgs, err := svc.Conversation(ctx, 1, 2, nil)
		require.NoError(t, err)
		out := make([]bool, len(msgs))
		for i, m := range msgs {
			out[i] = m.Read
		}
		return out
	}

	require.NoError(t, svc.MarkRead(ctx, 1, 2))
	first := readState()
	assert.Equal(t, []bool{true, true, false}, first, "only sender->receiver direction is marked")

	require.NoError(t, svc.MarkRead(ctx, 1, 2))
	assert.Equal(t, first, readState())
}
