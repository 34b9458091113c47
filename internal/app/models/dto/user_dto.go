package dto

import "github.com/eduverse/eduverse/internal/app/models"

// UpdateProfileRequest represents a profile update. All fields are optional;
// a name or photo change triggers the snapshot fan-out update.
type UpdateProfileRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email              *string `json:"email" binding:"omitempty,email"`
	Level              *string `json:"level" binding:"omitempty,max=50"`
	ProfilePhotoFileID *int64  `json:"profilePhotoFileId"`
	Password           *string `json:"password" binding:"omitempty,min=8"`
}

// Changed reports whether the request carries any update at all.
func (r *UpdateProfileRequest) Changed() bool {
	return r.Name != nil || r.Email != nil || r.Level != nil ||
		r.ProfilePhotoFileID != nil || r.Password != nil
}

// UserStatsResponse represents a user's activity counters
type UserStatsResponse struct {
	Posts           int64 `json:"posts" example:"12"`
	Comments        int64 `json:"comments" example:"30"`
	Reactions       int64 `json:"reactions" example:"45"`
	EnrolledCourses int64 `json:"enrolledCourses" example:"4"`
}

// UserSearchResult is the public subset of a user returned by search
type UserSearchResult struct {
	ID                 int64       `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Role               models.Role `json:"role"`
	Level              string      `json:"level,omitempty"`
	ProfilePhotoFileID *int64      `json:"profilePhotoFileId,omitempty"`
}

// UserPostsResponse is the post list of a single author, newest first
type UserPostsResponse struct {
	Posts []*models.Post `json:"posts"`
	Count int            `json:"count"`
}
