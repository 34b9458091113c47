package services

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/repositories"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

// MaxFileSize is the upload size ceiling in bytes.
const MaxFileSize = 10 << 20

// ClassifyMimeType maps an upload's declared content type onto the stored
// file type. Unknown types are rejected.
func ClassifyMimeType(mimeType string) (models.FileType, error) {
	switch mimeType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return models.FileTypeImage, nil
	case "application/pdf":
		return models.FileTypePDF, nil
	case "application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return models.FileTypeWord, nil
	default:
		return "", apperrors.ErrUnsupportedFileType
	}
}

// FileService defines the interface for file operations
type FileService interface {
	Upload(ctx context.Context, header *multipart.FileHeader, courseID *string, postID, messageID *int64) (*models.File, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
	ListByCourse(ctx context.Context, courseID string) ([]*models.File, error)
	Delete(ctx context.Context, caller *models.User, id int64) error
}

type fileServiceImpl struct {
	fileRepo repositories.IFileRepository
	logger   zerolog.Logger
}

// NewFileService creates a new FileService
func NewFileService(fileRepo repositories.IFileRepository, logger zerolog.Logger) FileService {
	return &fileServiceImpl{fileRepo: fileRepo, logger: logger}
}

// Upload validates and stores an uploaded file inline in the database
func (s *fileServiceImpl) Upload(ctx context.Context, header *multipart.FileHeader, courseID *string, postID, messageID *int64) (*models.File, error) {
	if header.Size > MaxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	fileType, err := ClassifyMimeType(header.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("could not read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, apperrors.NewBadRequestError("could not read uploaded file")
	}
	if len(data) > MaxFileSize {
		return nil, apperrors.ErrFileTooLarge
	}

	file := &models.File{
		FileName:  header.Filename,
		FileType:  fileType,
		FileData:  data,
		CourseID:  courseID,
		PostID:    postID,
		MessageID: messageID,
		FileSize:  int64(len(data)),
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("fileId", file.ID).
		Str("fileType", string(file.FileType)).
		Int64("size", file.FileSize).
		Msg("File uploaded")
	return file, nil
}

// GetByID retrieves a file including its payload
func (s *fileServiceImpl) GetByID(ctx context.Context, id int64) (*models.File, error) {
	return s.fileRepo.GetByID(ctx, id)
}

// ListByCourse retrieves a course's file metadata, payloads excluded
func (s *fileServiceImpl) ListByCourse(ctx context.Context, courseID string) ([]*models.File, error) {
	return s.fileRepo.ListByCourse(ctx, courseID)
}

// Delete removes a file, restricted to instructors and admins
func (s *fileServiceImpl) Delete(ctx context.Context, caller *models.User, id int64) error {
	if caller.Role != models.RoleInstructor && caller.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	return s.fileRepo.Delete(ctx, id)
}
