package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/app/models/dto"
	"github.com/eduverse/eduverse/internal/pkg/metrics"
)

// heapWarnMB is the heap usage above which the health check reports degraded.
const heapWarnMB = 512

// MetricsController exposes the in-process request metrics
type MetricsController struct {
	recorder *metrics.Recorder
	logger   zerolog.Logger
}

// NewMetricsController creates a new MetricsController
func NewMetricsController(recorder *metrics.Recorder, logger zerolog.Logger) *MetricsController {
	return &MetricsController{recorder: recorder, logger: logger}
}

// Get returns the metrics snapshot
// @Summary Get request metrics
// @Description Aggregated request counts, per-endpoint latency, recent slow
// requests, memory usage and uptime.
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=metrics.Snapshot}
// @Router /metrics [get]
func (c *MetricsController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.recorder.Snapshot()))
}

// Reset discards all recorded samples
// @Summary Reset request metrics
// @Tags metrics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /metrics [delete]
func (c *MetricsController) Reset(ctx *gin.Context) {
	c.recorder.Reset()
	c.logger.Info().Msg("metrics reset")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Metrics reset"))
}

// Health returns a liveness summary
// @Summary Health check
// @Description Public liveness endpoint. Status degrades when heap usage is
// unusually high.
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /metrics/health [get]
func (c *MetricsController) Health(ctx *gin.Context) {
	snap := c.recorder.Snapshot()

	status := "ok"
	if snap.Memory.HeapUsedMB > heapWarnMB {
		status = "degraded"
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"status": status,
		"uptime": snap.Summary.UptimeSeconds,
		"memory": snap.Memory,
	}))
}
