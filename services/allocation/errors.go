package allocation

import "fmt"

// ValidationError reports a request the caller must fix. Maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AllocationError is a typed failure raised by the allocation pipeline itself.
type AllocationError struct {
	Code    string
	Message string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAllocationError(code, msg string) error {
	return &AllocationError{
		Code:    code,
		Message: msg,
	}
}
