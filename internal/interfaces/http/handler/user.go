package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shopsim/backend/internal/domain/shop"
	"github.com/shopsim/backend/internal/infrastructure/simulation"
	"github.com/shopsim/backend/internal/infrastructure/store"
	"github.com/shopsim/backend/internal/interfaces/http/dto"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	BaseHandler
	store   *store.Store
	latency *simulation.Latency
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(st *store.Store, latency *simulation.Latency) *UserHandler {
	return &UserHandler{store: st, latency: latency}
}

// RegisterRoutes mounts the user routes on the API group.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.GET("/users/:id", h.GetByID)
	rg.POST("/users", h.Create)
}

// ListUsersQuery carries the list endpoint's query parameters.
type ListUsersQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=50" binding:"min=1,max=100"`
}

// UserPage is the paginated user listing. Unlike the product listing it
// carries no page count; clients page until data comes back short.
type UserPage struct {
	Data  []shop.User `json:"data"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
}

// List returns a page of users in creation order.
func (h *UserHandler) List(c *gin.Context) {
	var q ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileListUsers); err != nil {
		c.Abort()
		return
	}

	users := h.store.ListUsers()
	start, end := dto.Window(len(users), q.Page, q.Limit)

	h.Success(c, UserPage{
		Data:  users[start:end],
		Total: len(users),
		Page:  q.Page,
	})
}

// GetByID returns a single user or 404.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileGetUser); err != nil {
		c.Abort()
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// CreateUserRequest is the request body for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Create appends a new user and returns it with its assigned ID.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.latency.Delay(c.Request.Context(), simulation.ProfileCreateUser); err != nil {
		c.Abort()
		return
	}

	user := h.store.CreateUser(req.Name, req.Email)
	h.Created(c, user)
}
