package dto

// CreateCommentRequest represents a comment creation request
type CreateCommentRequest struct {
	PostID          int64  `json:"postId" binding:"required" example:"7"`
	Body            string `json:"body" binding:"required,min=1"`
	ParentCommentID *int64 `json:"parentCommentId"`
}
