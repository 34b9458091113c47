package repositories

import (
	"github.com/eduverse/eduverse/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	CourseRepository   *CourseRepository
	PostRepository     *PostRepository
	CommentRepository  *CommentRepository
	ReactionRepository *ReactionRepository
	ChatRepository     *ChatRepository
	MessageRepository  *MessageRepository
	FileRepository     *FileRepository
	ReportRepository   *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(database),
		CourseRepository:   NewCourseRepository(database),
		PostRepository:     NewPostRepository(database),
		CommentRepository:  NewCommentRepository(database),
		ReactionRepository: NewReactionRepository(database),
		ChatRepository:     NewChatRepository(database),
		MessageRepository:  NewMessageRepository(database),
		FileRepository:     NewFileRepository(database),
		ReportRepository:   NewReportRepository(database),
	}
}
