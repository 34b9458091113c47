package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// CourseController handles course and enrollment operations
type CourseController struct {
	callerLoader
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, userService services.UserService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		callerLoader:  callerLoader{userService: userService},
		courseService: courseService,
		logger:        logger,
	}
}

// Create creates a course
// @Summary Create a course
// @Description Creates a course with the caller as its first instructor.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 403 {object} dto.ErrorResponse "Caller is not an instructor"
// @Failure 409 {object} dto.ErrorResponse "Course code already exists"
// @Router /courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("courseId", course.ID).Int64("instructorId", caller.ID).Msg("course created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// List returns all courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.courseService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// ListEnrolled returns the caller's enrolled courses
// @Summary List enrolled courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses/enrolled [get]
func (c *CourseController) ListEnrolled(ctx *gin.Context) {
	courses, err := c.courseService.ListEnrolled(ctx.Request.Context(), middleware.CallerID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetByID returns one course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetByID(ctx *gin.Context) {
	course, err := c.courseService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// Update updates a course
// @Summary Update a course
// @Description Only an instructor of the course (or an admin) may update it.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course code"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), caller, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// Delete deletes a course
// @Summary Delete a course
// @Description Removes the course and its enrollment rows. Posts and files
// referencing the course are kept.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course code"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	caller, ok := c.caller(ctx)
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx.Request.Context(), caller, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("courseId", ctx.Param("id")).Int64("userId", caller.ID).Msg("course deleted")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted"))
}

// Enroll enrolls the caller in a course
// @Summary Enroll in a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled or course full"
// @Router /courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	course, err := c.courseService.Enroll(ctx.Request.Context(), middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// Unenroll removes the caller's enrollment
// @Summary Unenroll from a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse "Course not found or not enrolled"
// @Router /courses/{id}/unenroll [post]
func (c *CourseController) Unenroll(ctx *gin.Context) {
	course, err := c.courseService.Unenroll(ctx.Request.Context(), middleware.CallerID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}
