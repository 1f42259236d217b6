package serverutils

import "fmt"

// Error kinds surfaced to callers. Component-local faults (LLM
// unavailable, cache degraded) are recovered internally and never map
// to one of these.
const (
	KindSessionNotFound = "session_not_found"
	KindInvalidInput    = "invalid_input"
	KindNotFound        = "not_found"
	KindInternalError   = "internal_error"
)

// AppError is a service-level error with an HTTP mapping.
type AppError struct {
	Code    int
	Kind    string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewSessionNotFound(sessionID string) *AppError {
	return &AppError{Code: 404, Kind: KindSessionNotFound, Message: fmt.Sprintf("session %s not found", sessionID)}
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Code: 400, Kind: KindInvalidInput, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: 404, Kind: KindNotFound, Message: message}
}
