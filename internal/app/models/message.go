package models

import "time"

// Message defines the message model based on the 'messages' table.
// Messages are not tied to a chat id; the chat relationship is inferred by
// matching the sender/receiver pair at read time. Messages carry no name
// snapshot, so rendering always resolves sender identity separately.
type Message struct {
	ID            int64     `json:"id" db:"id"`
	SenderID      int64     `json:"senderId" db:"sender_id"`
	ReceiverID    int64     `json:"receiverId" db:"receiver_id"`
	Text          string    `json:"text" db:"text"`
	AttachmentIDs []int64   `json:"attachmentIds" db:"attachment_ids"`
	ReplyTo       *int64    `json:"replyTo,omitempty" db:"reply_to"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
