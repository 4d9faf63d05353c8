// Package handler contains the Gin handlers composing store lookups with
// latency and failure injection.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopsim/backend/internal/domain/shared"
	"github.com/shopsim/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// pathID parses an integer path parameter.
func pathID(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Param(name))
}

// Success sends a 200 response with the payload as-is. Responses carry no
// envelope: the wire format is fixed by the clients load testing against
// this server.
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func (h *BaseHandler) Conflict(c *gin.Context, message string) {
	h.Error(c, http.StatusConflict, message)
}

// PaymentRequired sends a 402 payment required response
func (h *BaseHandler) PaymentRequired(c *gin.Context, message string) {
	h.Error(c, http.StatusPaymentRequired, message)
}

// ServiceUnavailable sends a 503 service unavailable response
func (h *BaseHandler) ServiceUnavailable(c *gin.Context, message string) {
	h.Error(c, http.StatusServiceUnavailable, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, message)
}

// HandleDomainError converts domain errors to HTTP responses
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Message)
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
