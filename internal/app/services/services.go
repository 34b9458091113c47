package services

import (
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/auth"
	"github.com/eduverse/eduverse/internal/pkg/email"
)

// Services bundles every application service
type Services struct {
	AuthService     AuthService
	UserService     UserService
	CourseService   CourseService
	PostService     PostService
	CommentService  CommentService
	ReactionService ReactionService
	ChatService     ChatService
	MessageService  MessageService
	FileService     FileService
	ReportService   ReportService
}

// NewServices initializes all services over the repository layer
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	logger zerolog.Logger,
) *Services {
	reconciler := NewReconciler(repos.UserRepository, logger)

	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, jwtService, emailService, logger),
		UserService:     NewUserService(repos.UserRepository, repos.PostRepository, repos.CourseRepository, reconciler, logger),
		CourseService:   NewCourseService(repos.CourseRepository, logger),
		PostService:     NewPostService(repos.PostRepository, repos.CommentRepository, repos.ReactionRepository, reconciler, logger),
		CommentService:  NewCommentService(repos.CommentRepository, repos.PostRepository, reconciler, logger),
		ReactionService: NewReactionService(repos.ReactionRepository, repos.PostRepository, logger),
		ChatService:     NewChatService(repos.ChatRepository, repos.UserRepository, reconciler, logger),
		MessageService:  NewMessageService(repos.MessageRepository, repos.ChatRepository, repos.UserRepository, logger),
		FileService:     NewFileService(repos.FileRepository, logger),
		ReportService:   NewReportService(repos.ReportRepository, logger),
	}
}
