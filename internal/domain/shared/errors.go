package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors. NotFound and OutOfStock are deterministic outcomes
// of store lookups; PaymentFailed, ServiceUnavailable and Internal are
// raised by the failure injector independent of request content.
var (
	ErrProductNotFound    = NewDomainError("NOT_FOUND", "Product not found")
	ErrUserNotFound       = NewDomainError("NOT_FOUND", "User not found")
	ErrOrderNotFound      = NewDomainError("NOT_FOUND", "Order not found")
	ErrOutOfStock         = NewDomainError("OUT_OF_STOCK", "Product out of stock")
	ErrPaymentFailed      = NewDomainError("PAYMENT_FAILED", "Payment processing failed")
	ErrServiceUnavailable = NewDomainError("SERVICE_UNAVAILABLE", "Service unavailable")
	ErrInternal           = NewDomainError("INTERNAL_ERROR", "Internal server error")
)
