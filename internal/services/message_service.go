package services

import (
	"context"
	"fmt"

	"github.com/careerconnect/careerconnect/internal/models"
	"gorm.io/gorm"
)

// MessageRepo is the persistence boundary for conversations. The gorm
// implementation is the default; tests substitute an in-memory one, and a
// push-based store could be dropped in without touching the service contract.
type MessageRepo interface {
	Create(ctx context.Context, msg *models.Message) error
	// Conversation returns every message between the two users in either
	// direction, optionally restricted to one job, ascending by created_at.
	Conversation(ctx context.Context, userA, userB uint, jobID *uint) ([]models.Message, error)
	// MarkRead bulk-sets read=true on unread messages from sender to receiver.
	MarkRead(ctx context.Context, senderID, receiverID uint) error
}

type gormMessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &gormMessageRepo{db: db}
}

func (r *gormMessageRepo) Create(ctx context.Context, msg *models.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *gormMessageRepo) Conversation(ctx context.Context, userA, userB uint, jobID *uint) ([]models.Message, error) {
	q := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA)
	if jobID != nil {
		q = q.Where("job_id = ?", *jobID)
	}

	var msgs []models.Message
	if err := q.Order("created_at ASC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *gormMessageRepo) MarkRead(ctx context.Context, senderID, receiverID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = ?", senderID, receiverID, false).
		Update("read", true).Error
}

// MessageService validates and executes the conversation operations. History
// is pull-only: clients poll Conversation on a short interval; only presence
// notifications ride the websocket.
type MessageService struct {
	repo MessageRepo
}

func NewMessageService(repo MessageRepo) *MessageService {
	return &MessageService{repo: repo}
}

// Send appends one message to a conversation. Sender, receiver and content
// are required; the record starts unread with a server-assigned timestamp.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID uint, jobID *uint, content string) (*models.Message, error) {
	if senderID == 0 || receiverID == 0 || content == "" {
		return nil, fmt.Errorf("%w: senderId, receiverId and content are required", ErrValidation)
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		JobID:      jobID,
		Content:    content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

// Conversation returns the full ordered history between two users.
func (s *MessageService) Conversation(ctx context.Context, userA, userB uint, jobID *uint) ([]models.Message, error) {
	if userA == 0 || userB == 0 {
		return nil, fmt.Errorf("%w: both user ids are required", ErrValidation)
	}
	msgs, err := s.repo.Conversation(ctx, userA, userB, jobID)
	if err != nil {
		return nil, fmt.Errorf("fetch conversation: %w", err)
	}
	return msgs, nil
}

// MarkRead is idempotent; marking an already-read conversation changes nothing.
func (s *MessageService) MarkRead(ctx context.Context, senderID, receiverID uint) error {
	if senderID == 0 || receiverID == 0 {
		return fmt.Errorf("%w: senderId and receiverId are required", ErrValidation)
	}
	if err := s.repo.MarkRead(ctx, senderID, receiverID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}
