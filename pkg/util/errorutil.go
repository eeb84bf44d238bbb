package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// ServiceError standardizes application errors. Token is a stable
// machine-readable identifier surfaced to API clients unchanged.
type ServiceError struct {
	Token      string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Token, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Token, e.Message)
	}
	return e.Token
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewValidationError(token, message string) error {
	return &ServiceError{Token: token, Message: message, HTTPStatus: http.StatusBadRequest}
}

func NewNotFound(token, message string) error {
	return &ServiceError{Token: token, Message: message, HTTPStatus: http.StatusNotFound}
}

func NewUnauthorized(message string) error {
	return &ServiceError{Token: "UNAUTHORIZED", Message: message, HTTPStatus: http.StatusUnauthorized}
}

func NewForbidden(token, message string) error {
	return &ServiceError{Token: token, Message: message, HTTPStatus: http.StatusForbidden}
}

func NewPreconditionFailed(token, message string) error {
	return &ServiceError{Token: token, Message: message, HTTPStatus: http.StatusPreconditionFailed}
}

func NewInternalError(err error) error {
	return &ServiceError{
		Token:      "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToServiceError converts generic errors to ServiceError.
func ToServiceError(err error) *ServiceError {
	if err == nil {
		return nil
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &ServiceError{Token: "NOT_FOUND", Message: "resource not found", HTTPStatus: http.StatusNotFound, Err: err}
	}
	return &ServiceError{
		Token:      "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToServiceError(err)
}
