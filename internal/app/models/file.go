package models

import "time"

// File defines the file model based on the 'files' table.
// The binary payload is stored inline in the database.
type File struct {
	ID        int64     `json:"id" db:"id"`
	FileName  string    `json:"fileName" db:"file_name"`
	FileType  FileType  `json:"fileType" db:"file_type" example:"pdf"`
	FileData  []byte    `json:"-" db:"file_data"`
	CourseID  *string   `json:"courseId,omitempty" db:"course_id"`
	PostID    *int64    `json:"postId,omitempty" db:"post_id"`
	MessageID *int64    `json:"messageId,omitempty" db:"message_id"`
	FileSize  int64     `json:"size" db:"file_size"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
