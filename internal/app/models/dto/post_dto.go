package dto

import (
	"time"

	"github.com/eduverse/eduverse/internal/app/models"
)

// CreatePostRequest represents a post creation request
type CreatePostRequest struct {
	CourseID      string     `json:"courseId" binding:"required" example:"CS101"`
	Title         string     `json:"title" binding:"required,min=1,max=300"`
	Body          string     `json:"body" binding:"required"`
	Type          string     `json:"type" binding:"omitempty,oneof=question announcement discussion event" example:"question"`
	AttachmentIDs []int64    `json:"attachmentIds"`
	Deadline      *time.Time `json:"deadline"`
	EventDate     *time.Time `json:"eventDate"`
	EventLocation *string    `json:"eventLocation"`
}

// UpdatePostRequest represents a post update request
type UpdatePostRequest struct {
	Title *string `json:"title" binding:"omitempty,min=1,max=300"`
	Body  *string `json:"body"`
}

// PostFilter carries the query filters for the post list
type PostFilter struct {
	CourseID string
	Type     string
	Limit    int
	Skip     int
}

// PostDetailResponse bundles a post with its comments and reaction summary
type PostDetailResponse struct {
	Post         *models.Post      `json:"post"`
	Comments     []*models.Comment `json:"comments"`
	Reactions    map[string]int64  `json:"reactions"`
	UserReaction *string           `json:"userReaction"`
}
