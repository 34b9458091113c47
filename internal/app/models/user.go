package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// This is the authoritative identity record; Post, Comment and Chat rows carry
// denormalized copies of the display fields (see Sender).
type User struct {
	ID                   int64      `json:"id" db:"id" example:"1"`
	Name                 string     `json:"name" db:"name" example:"Jane Doe"`
	Email                string     `json:"email" db:"email" example:"jane@university.edu"`
	Password             string     `json:"-" db:"password"`
	Role                 Role       `json:"role" db:"role" example:"student"`
	Level                string     `json:"level,omitempty" db:"level" example:"Sophomore"`
	ProfilePhotoFileID   *int64     `json:"profilePhotoFileId,omitempty" db:"profile_photo_file_id"`
	ResetPasswordToken   *string    `json:"-" db:"reset_password_token"`
	ResetPasswordExpires *time.Time `json:"-" db:"reset_password_expires"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}

// Sender is the denormalized identity snapshot embedded in posts, comments and
// chat participant slots. It is written at creation time and rewritten by the
// profile fan-out update.
type Sender struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhotoFileID *int64 `json:"photoFileId,omitempty"`
}
