package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/shopsim/backend/internal/domain/shop"
	"github.com/shopsim/backend/internal/infrastructure/simulation"
	"github.com/shopsim/backend/internal/infrastructure/store"
	"github.com/shopsim/backend/internal/interfaces/http/dto"
)

// flashSaleSize is the number of catalog-order products in the flash sale.
const flashSaleSize = 5

// reviewCount is the number of synthetic reviews returned per product.
const reviewCount = 5

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	BaseHandler
	store   *store.Store
	latency *simulation.Latency
	rnd     simulation.Rand
}

// NewProductHandler creates a new ProductHandler. The rand source drives
// synthetic review content.
func NewProductHandler(st *store.Store, latency *simulation.Latency, rnd simulation.Rand) *ProductHandler {
	return &ProductHandler{store: st, latency: latency, rnd: rnd}
}

// RegisterRoutes mounts the catalog routes on the API group.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.List)
	rg.GET("/products/flash-sale", h.FlashSale)
	rg.GET("/products/:id", h.GetByID)
	rg.GET("/products/:id/reviews", h.Reviews)
}

// ListProductsQuery carries the list endpoint's query parameters.
type ListProductsQuery struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
}

// ProductPage is the paginated product listing.
type ProductPage struct {
	Data       []shop.Product `json:"data"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
}

// List returns a filtered, sorted, paginated view of the catalog.
func (h *ProductHandler) List(c *gin.Context) {
	var q ListProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileListProducts); err != nil {
		c.Abort()
		return
	}

	result := h.store.ListProducts(q.Search, q.Sort)
	start, end := dto.Window(len(result), q.Page, q.Limit)

	h.Success(c, ProductPage{
		Data:       result[start:end],
		Total:      len(result),
		Page:       q.Page,
		TotalPages: dto.TotalPages(len(result), q.Limit),
	})
}

// FlashSale returns the first products of the catalog with the sale
// discount applied. Original prices are preserved alongside.
func (h *ProductHandler) FlashSale(c *gin.Context) {
	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileFlashSale); err != nil {
		c.Abort()
		return
	}

	products := h.store.Products()
	n := flashSaleSize
	if n > len(products) {
		n = len(products)
	}

	sale := make([]shop.FlashSaleProduct, 0, n)
	for _, p := range products[:n] {
		sale = append(sale, shop.ApplyFlashSale(p))
	}

	h.Success(c, sale)
}

// GetByID returns a single product or 404.
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileGetProduct); err != nil {
		c.Abort()
		return
	}

	product, err := h.store.GetProduct(id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Reviews returns synthetic reviews for a product. The product is not
// looked up: reviews exist for any ID, like the backend this simulates.
func (h *ProductHandler) Reviews(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileReviews); err != nil {
		c.Abort()
		return
	}

	reviews := make([]shop.Review, reviewCount)
	for i := range reviews {
		reviews[i] = shop.Review{
			ID:      i + 1,
			Rating:  1 + h.rnd.Intn(5),
			Comment: fmt.Sprintf("Review %d for product %d", i+1, id),
			Author:  fmt.Sprintf("User %d", 1+h.rnd.Intn(100)),
		}
	}

	h.Success(c, reviews)
}
