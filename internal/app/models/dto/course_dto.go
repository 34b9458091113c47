package dto

// CreateCourseRequest represents a course creation request.
// The id is the caller-chosen course code, e.g. "CS101".
type CreateCourseRequest struct {
	ID          string `json:"id" binding:"required,coursecode" example:"CS101"`
	Name        string `json:"name" binding:"required,min=2,max=200" example:"Introduction to Computer Science"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	CreditHours int    `json:"creditHours" binding:"required,min=1,max=12" example:"3"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1" example:"80"`
}

// UpdateCourseRequest represents a course update request
type UpdateCourseRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	CreditHours *int    `json:"creditHours" binding:"omitempty,min=1,max=12"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
}
