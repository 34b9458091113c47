package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
)

func makeFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	partHeader.Set("Content-Type", contentType)

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestClassifyMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     models.FileType
		wantErr  bool
	}{
		{"image/jpeg", models.FileTypeImage, false},
		{"image/png", models.FileTypeImage, false},
		{"image/gif", models.FileTypeImage, false},
		{"image/webp", models.FileTypeImage, false},
		{"application/pdf", models.FileTypePDF, false},
		{"application/msword", models.FileTypeWord, false},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", models.FileTypeWord, false},
		{"application/zip", "", true},
		{"image/svg+xml", "", true},
		{"text/plain", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ClassifyMimeType(tt.mimeType)
		if tt.wantErr {
			assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType, tt.mimeType)
		} else {
			require.NoError(t, err, tt.mimeType)
			assert.Equal(t, tt.want, got, tt.mimeType)
		}
	}
}

func TestFileUploadStoresPayload(t *testing.T) {
	repo := newFakeFileRepo()
	svc := NewFileService(repo, zerolog.Nop())

	header := makeFileHeader(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	courseID := "CS101"

	file, err := svc.Upload(context.Background(), header, &courseID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "notes.pdf", file.FileName)
	assert.Equal(t, models.FileTypePDF, file.FileType)
	assert.Equal(t, int64(len("%PDF-1.4 fake")), file.FileSize)

	stored, err := repo.GetByID(context.Background(), file.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), stored.FileData)
}

func TestFileUploadRejectsUnsupportedTypeWithoutRecord(t *testing.T) {
	repo := newFakeFileRepo()
	svc := NewFileService(repo, zerolog.Nop())

	header := makeFileHeader(t, "archive.zip", "application/zip", []byte("PK"))

	_, err := svc.Upload(context.Background(), header, nil, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
	assert.Empty(t, repo.files)
}

func TestFileUploadRejectsOversize(t *testing.T) {
	repo := newFakeFileRepo()
	svc := NewFileService(repo, zerolog.Nop())

	header := makeFileHeader(t, "big.pdf", "application/pdf", []byte("x"))
	header.Size = MaxFileSize + 1

	_, err := svc.Upload(context.Background(), header, nil, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	assert.Empty(t, repo.files)
}

func TestFileDeleteRoleRestricted(t *testing.T) {
	repo := newFakeFileRepo()
	require.NoError(t, repo.Create(context.Background(), &models.File{FileName: "a.pdf"}))
	svc := NewFileService(repo, zerolog.Nop())

	student := &models.User{ID: 1, Role: models.RoleStudent}
	assert.ErrorIs(t, svc.Delete(context.Background(), student, 1), apperrors.ErrPermissionDenied)

	instructor := &models.User{ID: 2, Role: models.RoleInstructor}
	require.NoError(t, svc.Delete(context.Background(), instructor, 1))
}
