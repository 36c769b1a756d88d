package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidName       = "INVALID_NAME"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeEmptyLineItems    = "EMPTY_LINE_ITEMS"
	ErrCodePriceExceedsSum   = "PRICE_EXCEEDS_SUM"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeMenuNotFound      = "MENU_NOT_FOUND"
	ErrCodeMenuGroupNotFound = "MENU_GROUP_NOT_FOUND"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a terminal business-rule failure surfaced directly to the
// caller. Domain errors are never retried internally.
type DomainError struct {
	Code    string
	Message string
}

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

// Common domain errors
var (
	ErrInvalidName       = NewDomainError(ErrCodeInvalidName, "Name must be non-blank and free of profanity")
	ErrInvalidPrice      = NewDomainError(ErrCodeInvalidPrice, "Price must be a non-negative decimal")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrEmptyLineItems    = NewDomainError(ErrCodeEmptyLineItems, "Menu must contain at least one line item")
	ErrPriceExceedsSum   = NewDomainError(ErrCodePriceExceedsSum, "Menu price must not exceed the sum of its line items")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrMenuNotFound      = NewDomainError(ErrCodeMenuNotFound, "Menu not found")
	ErrMenuGroupNotFound = NewDomainError(ErrCodeMenuGroupNotFound, "Menu group not found")
)
