package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// Status maps an error to the HTTP status code it should surface as.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case KindValidation:
			return http.StatusBadRequest
		case KindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err carries the not-found kind.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}
