package types

import (
	"errors"
	"net/http"
)

// APIError pairs an error message with the HTTP status it should surface
// as. Services return these; handlers only translate them.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewInvalidInput(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func NewNotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

func NewServiceUnavailable(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message}
}

func NewInternalError(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message}
}

// AsAPIError normalizes any error to an APIError, defaulting to a 500.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{Status: http.StatusInternalServerError, Message: err.Error()}
}
