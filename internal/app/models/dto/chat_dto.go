package dto

import "github.com/eduverse/eduverse/internal/app/models"

// CreateChatRequest represents a chat creation request
type CreateChatRequest struct {
	User2ID int64 `json:"user2Id" binding:"required" example:"5"`
}

// ChatListResponse is the chat list of the requesting user, most recently
// active first
type ChatListResponse struct {
	Chats []*models.Chat `json:"chats"`
	Count int            `json:"count"`
}
