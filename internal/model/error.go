package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeMissingField  = "MISSING_FIELD"
	ErrCodeInvalidPrice  = "INVALID_PRICE"
	ErrCodeFoodNotFound  = "FOOD_NOT_FOUND"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Domain errors for business logic
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
	ErrFoodNotFound    = NewDomainError(ErrCodeFoodNotFound, "Food not found")
	ErrMissingName     = NewDomainError(ErrCodeMissingField, "Food name is required")
	ErrMissingFoodID   = NewDomainError(ErrCodeMissingField, "Food ID is required")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrInvalidFoodJSON = NewDomainError(ErrCodeInvalidJSON, "Request body is not a valid food")
)
