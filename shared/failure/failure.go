package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []Detail `json:"details,omitempty"`
}

// Detail describes a single violated field rule inside a validation failure.
type Detail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	}
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a new Failure carrying one detail record per violated field rule.
func Validation(details []Detail) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Details: details,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// RouteNotFound returns a new Failure echoing the unmatched method and path.
func RouteNotFound(method, path string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("Route not found: %s %s", method, path),
	}
}

// InternalFromString returns a new Failure with code for internal error with message set from string.
// The message must be a safe, client-facing one; the underlying cause belongs in the log.
func InternalFromString(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetDetails returns the detail records of an error interface, if it carries any.
func GetDetails(err error) []Detail {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}
