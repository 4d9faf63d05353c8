package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shopsim/backend/internal/domain/shop"
	"github.com/shopsim/backend/internal/infrastructure/simulation"
	"github.com/shopsim/backend/internal/infrastructure/store"
)

// CartHandler handles shopping cart endpoints.
type CartHandler struct {
	BaseHandler
	store   *store.Store
	latency *simulation.Latency
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(st *store.Store, latency *simulation.Latency) *CartHandler {
	return &CartHandler{store: st, latency: latency}
}

// RegisterRoutes mounts the cart routes on the API group.
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cart", h.Create)
	rg.POST("/cart/add", h.Add)
	rg.GET("/cart/:id", h.Get)
}

// CreateCartRequest is the request body for creating a cart.
type CreateCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"omitempty,min=1"`
}

// Create builds a one-line cart for the given product. The product must
// exist and be in stock.
func (h *CartHandler) Create(c *gin.Context) {
	var req CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileCreateCart); err != nil {
		c.Abort()
		return
	}

	product, err := h.store.GetProduct(req.ProductID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if !product.InStock {
		h.Conflict(c, "Product out of stock")
		return
	}

	cart := shop.NewCart(h.store.NextCartID(), product, req.Quantity)
	h.Created(c, cart)
}

// AddToCartRequest is the request body for adding an item to a cart.
type AddToCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"omitempty,min=1"`
}

// AddToCartResponse acknowledges an add-to-cart call. Carts are not
// persisted, so the echo is all the client gets.
type AddToCartResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Add acknowledges adding an item without persisting anything.
func (h *CartHandler) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileAddToCart); err != nil {
		c.Abort()
		return
	}

	h.Success(c, AddToCartResponse{
		Success:   true,
		Message:   "Item added to cart",
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
}

// Get returns an empty cart for any ID. Cart contents are never stored,
// so every lookup sees a fresh empty cart.
func (h *CartHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileGetCart); err != nil {
		c.Abort()
		return
	}

	h.Success(c, shop.EmptyCart(id))
}
