package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
	"github.com/eduverse/eduverse/internal/pkg/auth"
	"github.com/eduverse/eduverse/internal/pkg/email"
)

const resetTokenValidity = time.Hour

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(ctx context.Context, emailAddress string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authServiceImpl struct {
	userRepo     repositories.IUserRepository
	jwtService   *auth.JWTService
	emailService email.EmailService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:     userRepo,
		jwtService:   jwtService,
		emailService: emailService,
		logger:       logger,
	}
}

// Register creates a new account and issues a token for it
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.RoleStudent
	if req.Role != "" {
		role = models.Role(req.Role)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashed,
		Role:     role,
		Level:    req.Level,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("User registered")

	return s.buildAuthResponse(user)
}

// Login verifies credentials and issues a token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// Hide whether the account exists.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *authServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      user,
	}, nil
}

// ForgotPassword issues a reset token and mails it to the account holder.
// It succeeds silently for unknown addresses so callers cannot probe for
// registered emails.
func (s *authServiceImpl) ForgotPassword(ctx context.Context, emailAddress string) error {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(emailAddress)))
	if err != nil {
		s.logger.Debug().Str("email", emailAddress).Msg("Password reset requested for unknown email")
		return nil
	}

	token := uuid.NewString()
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenValidity)); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Failed to send password reset email")
		return err
	}

	return nil
}

// ResetPassword completes a reset started by ForgotPassword. The token is
// single use; a successful reset clears it.
func (s *authServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Password reset completed")
	return nil
}
