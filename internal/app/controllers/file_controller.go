package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// FileController handles inline file storage operations
type FileController struct {
	callerLoader
	fileService services.FileService
	logger      zerolog.Logger
}

// NewFileController creates a new FileController
func NewFileController(fileService services.FileService, userService services.UserService, logger zerolog.Logger) *FileController {
	return &FileController{
		callerLoader: callerLoader{userService: userService},
		fileService:  fileService,
		logger:       logger,
	}
}

// Upload stores an uploaded file
// @Summary Upload a file
// @Description Accepts images, PDF and Word documents up to 10MB. The file
// may be attached to a course, a post or a message.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "The file"
// @Param courseId formData string false "Course to attach to"
// @Param postId formData int false "Post to attach to"
// @Param messageId formData int false "Message to attach to"
// @Success 201 {object} dto.APIResponse{data=dto.FileUploadResponse}
// @Failure 413 {object} dto.ErrorResponse "File exceeds 10MB"
// @Failure 415 {object} dto.ErrorResponse "Unsupported file type"
// @Router /files [post]
func (c *FileController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Missing file field").WithField("file")))
		return
	}

	var courseID *string
	if v := ctx.PostForm("courseId"); v != "" {
		courseID = &v
	}
	postID, ok := optionalFormID(ctx, "postId")
	if !ok {
		return
	}
	messageID, ok := optionalFormID(ctx, "messageId")
	if !ok {
		return
	}

	file, err := c.fileService.Upload(ctx.Request.Context(), header, courseID, postID, messageID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("fileId", file.ID).Str("fileName", file.FileName).Int64("size", file.FileSize).Msg("file uploaded")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FileUploadResponse{
		ID:        file.ID,
		FileName:  file.FileName,
		FileType:  file.FileType,
		Size:      file.FileSize,
		CreatedAt: file.CreatedAt,
	}))
}

// Download serves a file's payload
// @Summary Download a file
// @Tags files
// @Produce octet-stream
// @Param id path int true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id} [get]
func (c *FileController) Download(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	file, err := c.fileService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+file.FileName+`"`)
	ctx.Data(http.StatusOK, http.DetectContentType(file.FileData), file.FileData)
}

// ListByCourse returns a course's file metadata
// @Summary List files of a course
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=[]dto.FileInfo}
// @Router /files/course/{courseId} [get]
func (c *FileController) ListByCourse(ctx *gin.Context) {
	files, err := c.fileService.ListByCourse(ctx.Request.Context(), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	infos := make([]dto.FileInfo, 0, len(files))
	for _, f := range files {
		infos = append(infos, dto.FileInfo{
			ID:        f.ID,
			FileName:  f.FileName,
			FileType:  f.FileType,
			Size:      f.FileSize,
			CreatedAt: f.CreatedAt,
		})
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(infos))
}

// Delete deletes a file
// @Summary Delete a file
// @Description Only instructors and admins may delete stored files.
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path int true "File ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{id} [delete]
func (c *FileController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	if err := c.fileService.Delete(ctx.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("File deleted"))
}

// optionalFormID parses an optional numeric form field. The bool is false
// only when the request was answered with a 400.
func optionalFormID(ctx *gin.Context, name string) (*int64, bool) {
	v := ctx.PostForm(name)
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+name+" field").WithField(name)))
		return nil, false
	}
	return &id, true
}
