package dto

import "net/http"

// ErrorResponse is the wire shape of every error this server produces:
// a status code plus a short human-readable message. Load test clients
// parse exactly this shape, so it must not grow an envelope.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// Domain error codes carried by shared.DomainError.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeOutOfStock         = "OUT_OF_STOCK"
	CodePaymentFailed      = "PAYMENT_FAILED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	CodeNotFound:           http.StatusNotFound,
	CodeOutOfStock:         http.StatusConflict,
	CodePaymentFailed:      http.StatusPaymentRequired,
	CodeServiceUnavailable: http.StatusServiceUnavailable,
	CodeInternal:           http.StatusInternalServerError,
	CodeBadRequest:         http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
