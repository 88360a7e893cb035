package errors

import "fmt"

// HTTPError is an application error carrying a stable error code for
// API consumers. The code namespaces errors per domain (e.g. 2xxxx relay).
type HTTPError struct {
	Code    int    `json:"error_code"`
	Message string `json:"message"`
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("error %d: %s", e.Code, e.Message)
}
