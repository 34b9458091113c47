package models

import "time"

// Reaction defines the reaction model based on the 'reactions' table.
// At most one reaction exists per (post, sender) pair; the table carries a
// unique constraint and writes go through an atomic upsert.
type Reaction struct {
	ID        int64        `json:"id" db:"id"`
	PostID    int64        `json:"postId" db:"post_id"`
	SenderID  int64        `json:"senderId" db:"sender_id"`
	Type      ReactionType `json:"type" db:"type" example:"like"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
}
