package dtos

type SendMessageRequest struct {
	SenderID   uint   `json:"senderId" binding:"required"`
	ReceiverID uint   `json:"receiverId" binding:"required"`
	JobID      *uint  `json:"jobId"`
	Content    string `json:"content" binding:"required"`
}

type MarkReadRequest struct {
	SenderID   uint `json:"senderId" binding:"required"`
	ReceiverID uint `json:"receiverId" binding:"required"`
}
