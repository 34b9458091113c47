package dto

// CreateMessageRequest represents a direct-message creation request.
// ChatID is optional; without it the chat for the sender/receiver pair is
// found or created.
type CreateMessageRequest struct {
	ChatID        *int64  `json:"chatId"`
	ReceiverID    int64   `json:"receiverId" binding:"required" example:"5"`
	Text          string  `json:"text" binding:"required,min=1"`
	AttachmentIDs []int64 `json:"attachmentIds"`
	ReplyTo       *int64  `json:"replyTo"`
}
