package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/auth"
)

// UserService defines the interface for user operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error)
	GetUserPosts(ctx context.Context, userID int64) ([]*models.Post, error)
	GetUserCourses(ctx context.Context, userID int64) ([]*models.Course, error)
	GetUserStats(ctx context.Context, userID int64) (*dto.UserStatsResponse, error)
	Search(ctx context.Context, requesterID int64, query, role string, limit int) ([]dto.UserSearchResult, error)
}

type userServiceImpl struct {
	userRepo   repositories.IUserRepository
	postRepo   repositories.IPostRepository
	courseRepo repositories.ICourseRepository
	reconciler *Reconciler
	logger     zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	postRepo repositories.IPostRepository,
	courseRepo repositories.ICourseRepository,
	reconciler *Reconciler,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		postRepo:   postRepo,
		courseRepo: courseRepo,
		reconciler: reconciler,
		logger:     logger,
	}
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies a profile update. When the display name or photo
// changes, every denormalized snapshot of this user is rewritten in the same
// transaction as the identity row itself.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fanOut := false
	if req.Name != nil && *req.Name != user.Name {
		user.Name = strings.TrimSpace(*req.Name)
		fanOut = true
	}
	if req.ProfilePhotoFileID != nil {
		user.ProfilePhotoFileID = req.ProfilePhotoFileID
		fanOut = true
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Level != nil {
		user.Level = *req.Level
	}

	if err := s.userRepo.UpdateProfile(ctx, user, fanOut); err != nil {
		return nil, err
	}

	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
			return nil, err
		}
	}

	if fanOut {
		s.logger.Info().Int64("userId", userID).Msg("Profile snapshots propagated")
	}

	return user, nil
}

// GetUserPosts retrieves a user's posts with refreshed sender snapshots
func (s *userServiceImpl) GetUserPosts(ctx context.Context, userID int64) ([]*models.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListBySender(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.reconciler.ReconcilePosts(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetUserCourses returns the courses a user teaches when they are an
// instructor, otherwise the courses they are enrolled in
func (s *userServiceImpl) GetUserCourses(ctx context.Context, userID int64) ([]*models.Course, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleInstructor {
		return s.courseRepo.ListTaught(ctx, userID)
	}
	return s.courseRepo.ListEnrolled(ctx, userID)
}

// GetUserStats retrieves a user's activity counters
func (s *userServiceImpl) GetUserStats(ctx context.Context, userID int64) (*dto.UserStatsResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	posts, comments, reactions, enrolled, err := s.userRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserStatsResponse{
		Posts:           posts,
		Comments:        comments,
		Reactions:       reactions,
		EnrolledCourses: enrolled,
	}, nil
}

// Search finds users by name or email fragment, excluding the requester
func (s *userServiceImpl) Search(ctx context.Context, requesterID int64, query, role string, limit int) ([]dto.UserSearchResult, error) {
	users, err := s.userRepo.Search(ctx, requesterID, strings.TrimSpace(query), role, limit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.UserSearchResult, 0, len(users))
	for _, user := range users {
		results = append(results, dto.UserSearchResult{
			ID:                 user.ID,
			Name:               user.Name,
			Email:              user.Email,
			Role:               user.Role,
			Level:              user.Level,
			ProfilePhotoFileID: user.ProfilePhotoFileID,
		})
	}
	return results, nil
}
