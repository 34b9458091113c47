package models

import "time"

// Chat defines the chat model based on the 'chats' table.
// Each participant slot holds a denormalized identity snapshot. A generated
// (pair_low, pair_high) unique key guarantees at most one chat per unordered
// pair of participants.
type Chat struct {
	ID          int64     `json:"id" db:"id"`
	User1       Sender    `json:"user1"`
	User2       Sender    `json:"user2"`
	LastMessage string    `json:"lastMessage" db:"last_message"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// OtherParticipant returns the participant slot that is not userID.
func (c *Chat) OtherParticipant(userID int64) Sender {
	if c.User1.ID == userID {
		return c.User2
	}
	return c.User1
}

// HasParticipant reports whether userID occupies either participant slot.
func (c *Chat) HasParticipant(userID int64) bool {
	return c.User1.ID == userID || c.User2.ID == userID
}
