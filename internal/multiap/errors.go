package multiap

import "fmt"

// ErrorType represents the category of a rejected access point
type ErrorType int

const (
	// ErrTypeValidation indicates the SSID or password is not acceptable
	ErrTypeValidation ErrorType = iota
	// ErrTypeCapacity indicates the manager is already full
	ErrTypeCapacity
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeCapacity:
		return "Capacity Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APError describes why an access point was not added
type APError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	SSID    string    // SSID of the rejected entry (for context)
}

// Error implements the error interface
func (e *APError) Error() string {
	if e.SSID != "" {
		return fmt.Sprintf("%s: %s (ssid %q)", e.Type, e.Message, e.SSID)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a validation error
func NewValidationError(ssid, message string) *APError {
	return &APError{
		Type:    ErrTypeValidation,
		Message: message,
		SSID:    ssid,
	}
}

// NewCapacityError creates a capacity error
func NewCapacityError(ssid string, capacity int) *APError {
	return &APError{
		Type:    ErrTypeCapacity,
		Message: fmt.Sprintf("access point list full (max %d)", capacity),
		SSID:    ssid,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	if apErr, ok := err.(*APError); ok {
		return apErr.Type == ErrTypeValidation
	}
	return false
}

// IsCapacityError checks if an error is a capacity error
func IsCapacityError(err error) bool {
	if apErr, ok := err.(*APError); ok {
		return apErr.Type == ErrTypeCapacity
	}
	return false
}
