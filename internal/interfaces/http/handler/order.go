package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shopsim/backend/internal/infrastructure/simulation"
	"github.com/shopsim/backend/internal/infrastructure/store"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	BaseHandler
	store    *store.Store
	latency  *simulation.Latency
	injector *simulation.FailureInjector
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(st *store.Store, latency *simulation.Latency, injector *simulation.FailureInjector) *OrderHandler {
	return &OrderHandler{store: st, latency: latency, injector: injector}
}

// RegisterRoutes mounts the order routes on the API group.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Create)
	rg.GET("/orders/:id", h.GetByID)
}

// CreateOrderRequest is the request body for placing an order. The three
// reference fields are all optional; whichever the client sends is echoed
// back on the order.
type CreateOrderRequest struct {
	UserID        *int   `json:"userId"`
	ProductID     *int   `json:"productId"`
	CartID        *int   `json:"cartId"`
	Quantity      int    `json:"quantity" binding:"omitempty,min=1"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// Create places an order. Payment is simulated and fails a configurable
// fraction of the time; a failed payment never consumes an order ID.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileCreateOrder); err != nil {
		c.Abort()
		return
	}

	if h.injector.PaymentFails() {
		h.PaymentRequired(c, "Payment processing failed")
		return
	}

	order := h.store.CreateOrder(store.OrderInput{
		UserID:        req.UserID,
		ProductID:     req.ProductID,
		CartID:        req.CartID,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
	})
	h.Created(c, order)
}

// GetByID returns a previously placed order or 404.
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileGetOrder); err != nil {
		c.Abort()
		return
	}

	order, err := h.store.GetOrder(id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}
