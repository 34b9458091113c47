package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/pkg/apperrors"
	"github.com/eduverse/eduverse/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	detail, status := classifyError(err)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			detail.Message = custom.Message
		}
		if custom.Details != nil {
			detail = detail.WithDetails(custom.Details)
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (*dto.ErrorDetail, int) {
	switch {
	// 400
	case errors.Is(err, apperrors.ErrValidationFailed):
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"), http.StatusBadRequest
	case errors.Is(err, apperrors.ErrBadRequest):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request"), http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidPasswordResetToken):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid or expired password reset token"), http.StatusBadRequest

	// 401
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"), http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrTokenExpired):
		return dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"), http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		return dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"), http.StatusUnauthorized

	// 403
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"), http.StatusForbidden

	// 404
	case errors.Is(err, apperrors.ErrUserNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrPostNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Post not found"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrCommentNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Comment not found"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrReactionNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Reaction not found"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrChatNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Chat not found"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrMessageNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Message not found"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrFileNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "File not found"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrNotEnrolled):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Not enrolled in this course"), http.StatusNotFound
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"), http.StatusNotFound

	// 409
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists"), http.StatusConflict
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Course with this code already exists"), http.StatusConflict
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		return dto.NewErrorDetail(dto.ErrorCodeConflict, "Already enrolled in this course"), http.StatusConflict
	case errors.Is(err, apperrors.ErrCourseFull):
		return dto.NewErrorDetail(dto.ErrorCodeConflict, "Course is full"), http.StatusConflict
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"), http.StatusConflict
	case errors.Is(err, apperrors.ErrConflict):
		return dto.NewErrorDetail(dto.ErrorCodeConflict, "Conflict"), http.StatusConflict

	// Uploads
	case errors.Is(err, apperrors.ErrFileTooLarge):
		return dto.NewErrorDetail(dto.ErrorCodePayloadTooLarge, "File size exceeds limit"), http.StatusRequestEntityTooLarge
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		return dto.NewErrorDetail(dto.ErrorCodeUnsupportedMediaType, "Unsupported file type"), http.StatusUnsupportedMediaType

	default:
		return dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"), http.StatusInternalServerError
	}
}
