package models

import "time"

// Comment defines the comment model based on the 'comments' table
type Comment struct {
	ID              int64     `json:"id" db:"id"`
	PostID          int64     `json:"postId" db:"post_id"`
	ParentCommentID *int64    `json:"parentCommentId,omitempty" db:"parent_comment_id"`
	Sender          Sender    `json:"sender"`
	Body            string    `json:"body" db:"body"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
