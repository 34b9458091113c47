package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/app/services"
	"github.com/eduverse/eduverse/internal/middleware"
)

// ReportController handles instructor analytics reports
type ReportController struct {
	reportService services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// TopContributors returns the contribution leaderboard
// @Summary Top contributors report
// @Description Ranks users by contribution score (posts x5, comments x3,
// reactions given x1) and returns the top ten.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ContributorEntry}
// @Failure 403 {object} dto.ErrorResponse "Caller is not an instructor"
// @Router /users/report [get]
func (c *ReportController) TopContributors(ctx *gin.Context) {
	entries, err := c.reportService.TopContributors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// CourseEngagement returns the per-course engagement report
// @Summary Course engagement report
// @Description Aggregates activity per course. Posts whose course was deleted
// are grouped under the General/Unknown bucket.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseEngagementEntry}
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/report2 [get]
func (c *ReportController) CourseEngagement(ctx *gin.Context) {
	entries, err := c.reportService.CourseEngagement(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}

// ReactionDistribution returns the reaction distribution report
// @Summary Reaction distribution report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ReactionDistributionReport}
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/report3 [get]
func (c *ReportController) ReactionDistribution(ctx *gin.Context) {
	report, err := c.reportService.ReactionDistribution(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}

// CoursePerformance returns the course performance report
// @Summary Course performance report
// @Description Per-course enrollment rate, instructor roster and activity
// breakdown, busiest courses first.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CoursePerformanceEntry}
// @Failure 403 {object} dto.ErrorResponse
// @Router /users/report4 [get]
func (c *ReportController) CoursePerformance(ctx *gin.Context) {
	entries, err := c.reportService.CoursePerformance(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(entries))
}
