package dto

import "github.com/eduverse/eduverse/internal/app/models"

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@university.edu"`
	Password string `json:"password" binding:"required,min=8" example:"s3cret-pass"`
	Role     string `json:"role" binding:"omitempty,oneof=student instructor" example:"student"`
	Level    string `json:"level" binding:"omitempty,max=50" example:"Sophomore"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@university.edu"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// AuthResponse carries the issued token together with the user record
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"3600"`
	User      *models.User `json:"user"`
}

// ForgotPasswordRequest represents a password reset initiation request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@university.edu"`
}

// ResetPasswordRequest represents a password reset completion request
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
