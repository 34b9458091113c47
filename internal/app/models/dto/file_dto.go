package dto

import (
	"time"

	"github.com/eduverse/eduverse/internal/app/models"
)

// FileUploadResponse is the metadata returned after a successful upload
type FileUploadResponse struct {
	ID        int64           `json:"id"`
	FileName  string          `json:"fileName" example:"lecture_slides.pdf"`
	FileType  models.FileType `json:"fileType" example:"pdf"`
	Size      int64           `json:"size" example:"1048576"`
	CreatedAt time.Time       `json:"createdAt"`
}

// FileInfo is the payload-free file metadata used in list responses
type FileInfo struct {
	ID        int64           `json:"id"`
	FileName  string          `json:"fileName"`
	FileType  models.FileType `json:"fileType"`
	Size      int64           `json:"size"`
	CreatedAt time.Time       `json:"createdAt"`
}
