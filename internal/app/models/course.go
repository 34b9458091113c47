package models

import "time"

// Course defines the course model based on the 'courses' table.
// The ID is a human-chosen course code such as "CS101".
// Enrolled is a denormalized counter; it is kept equal to the number of
// enrollment rows for the course by updating both in one transaction.
type Course struct {
	ID          string `json:"id" db:"id" example:"CS101"`
	Name        string `json:"name" db:"name" example:"Introduction to Computer Science"`
	Description string `json:"description" db:"description"`
	CreditHours int    `json:"creditHours" db:"credit_hours" example:"3"`
	Capacity    int    `json:"capacity" db:"capacity" example:"80"`
	Enrolled    int    `json:"enrolled" db:"enrolled" example:"42"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Instructors is populated by list/detail queries, no db tag
	Instructors []CourseInstructor `json:"instructors,omitempty"`
}

// CourseInstructor is the instructor info attached to course responses
type CourseInstructor struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Enrollment is one row of a user's enrollment set based on the 'enrollments' table
type Enrollment struct {
	UserID   int64  `json:"userId" db:"user_id"`
	CourseID string `json:"courseId" db:"course_id"`
}
