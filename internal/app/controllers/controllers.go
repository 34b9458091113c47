// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eduverse/eduverse/internal/app/models"
	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// callerLoader resolves the authenticated caller to a full user record for
// handlers whose services need the identity snapshot or role.
type callerLoader struct {
	userService services.UserService
}

// caller loads the authenticated user, answering the error itself on failure.
func (l callerLoader) caller(c *gin.Context) (*models.User, bool) {
	user, err := l.userService.GetUserByID(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return nil, false
	}
	return user, true
}

// bindJSON binds the request body and writes the validation response on
// failure. Returns false when the request was already answered.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

// pathID parses a numeric path parameter, answering 400 on garbage input.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+name+" parameter").WithField(name)))
		return 0, false
	}
	return id, true
}

// queryID parses a required numeric query parameter.
func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Missing or invalid "+name+" parameter").WithField(name)))
		return 0, false
	}
	return id, true
}
