package models

import "time"

// Post defines the post model based on the 'posts' table
type Post struct {
	ID            int64      `json:"id" db:"id"`
	Sender        Sender     `json:"sender"`
	CourseID      string     `json:"courseId" db:"course_id" example:"CS101"`
	Title         string     `json:"title" db:"title"`
	Body          string     `json:"body" db:"body"`
	Type          PostType   `json:"type" db:"type" example:"question"`
	AttachmentIDs []int64    `json:"attachmentIds" db:"attachment_ids"`
	Deadline      *time.Time `json:"deadline,omitempty" db:"deadline"`
	EventDate     *time.Time `json:"eventDate,omitempty" db:"event_date"`
	EventLocation *string    `json:"eventLocation,omitempty" db:"event_location"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}
