package handler

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/shopsim/backend/internal/infrastructure/simulation"
)

// heavyIterations is how many square roots the CPU-bound endpoint sums.
const heavyIterations = 1_000_000

// SimulationHandler serves the endpoints whose sole purpose is to stress
// clients: CPU-bound work, long sleeps, and random failures.
type SimulationHandler struct {
	BaseHandler
	latency  *simulation.Latency
	injector *simulation.FailureInjector
}

// NewSimulationHandler creates a new SimulationHandler
func NewSimulationHandler(latency *simulation.Latency, injector *simulation.FailureInjector) *SimulationHandler {
	return &SimulationHandler{latency: latency, injector: injector}
}

// RegisterRoutes mounts the simulation routes on the API group.
func (h *SimulationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/heavy", h.Heavy)
	rg.GET("/slow", h.Slow)
	rg.GET("/error", h.Error)
}

// HeavyResponse carries the result of the CPU-bound computation.
type HeavyResponse struct {
	Result   float64 `json:"result"`
	Computed bool    `json:"computed"`
}

// Heavy burns CPU summing square roots after the usual simulated delay.
func (h *SimulationHandler) Heavy(c *gin.Context) {
	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileHeavy); err != nil {
		c.Abort()
		return
	}

	var sum float64
	for i := 0; i < heavyIterations; i++ {
		sum += math.Sqrt(float64(i))
	}

	h.Success(c, HeavyResponse{Result: sum, Computed: true})
}

// Slow sleeps for a long, noisy interval before answering.
func (h *SimulationHandler) Slow(c *gin.Context) {
	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileSlow); err != nil {
		c.Abort()
		return
	}

	h.Success(c, gin.H{"message": "This endpoint is intentionally slow"})
}

// Error answers 500, 503, or 200 at the injector's configured rates.
func (h *SimulationHandler) Error(c *gin.Context) {
	switch h.injector.ErrorOutcome() {
	case simulation.OutcomeInternalError:
		h.InternalError(c, "Internal server error")
	case simulation.OutcomeUnavailable:
		h.ServiceUnavailable(c, "Service unavailable")
	default:
		h.Success(c, gin.H{"message": "Success"})
	}
}
