package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shopsim/backend/internal/infrastructure/simulation"
)

// SystemHandler handles the health probe and the log ingestion sink.
type SystemHandler struct {
	BaseHandler
	latency *simulation.Latency
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(latency *simulation.Latency) *SystemHandler {
	return &SystemHandler{latency: latency}
}

// RegisterRoutes mounts the system routes on the API group.
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/logs", h.IngestLog)
}

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health responds immediately with no simulated latency so probes stay
// cheap under load.
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// LogIngestResponse acknowledges an ingested log entry.
type LogIngestResponse struct {
	Logged bool `json:"logged"`
}

// IngestLog accepts any JSON object and discards it. Load generators use
// this as a write-heavy endpoint with no state behind it.
func (h *SystemHandler) IngestLog(c *gin.Context) {
	var entry map[string]any
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileLogIngest); err != nil {
		c.Abort()
		return
	}

	h.Created(c, LogIngestResponse{Logged: true})
}
