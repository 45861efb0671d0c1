package core

import "github.com/pkg/errors"

// FieldError attaches an input error to a specific field, keyed by the
// field's JSON tag name.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries user-input errors through the service layer; the
// API error handler flattens Fields into the field -> message map clients
// receive. Either Err or Fields may be empty, not both.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown signals that the API server can no longer serve requests and
// should stop gracefully.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown checks err, unwrapped, for the shutdown signal.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
