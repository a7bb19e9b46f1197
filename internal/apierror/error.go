package apierror

import "net/http"

type (
	// An APIError represents the error format rendered by the management API.
	APIError struct {
		HTTPCode   int    `json:"-"`
		StatusCode int    `json:"statusCode"`
		Err        string `json:"error"`
		Message    string `json:"message"`
		ErrorCode  string `json:"errorCode,omitempty"`
	}
)

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if apierr, ok := err.(*APIError); ok {
		return apierr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new internal server APIError with the given message.
func New(message string) *APIError {
	return NewWithCode(http.StatusInternalServerError, "", message)
}

// NewWithCode returns a new APIError with the given HTTP code, error code and message.
func NewWithCode(code int, errorCode, message string) *APIError {
	return &APIError{
		HTTPCode:   code,
		StatusCode: code,
		Err:        http.StatusText(code),
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// Error implements error interface.
func (e *APIError) Error() string {
	return e.Message
}
