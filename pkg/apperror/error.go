package apperror

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

func Unavailable(message string, err error) *AppError {
	return New(http.StatusServiceUnavailable, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Validation carries per-field messages rendered inline next to each form field.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Please correct the highlighted fields",
		Fields:  fields,
	}
}

// Write wraps a rejected insert/upsert. The store's own message is shown verbatim;
// anything that did not come from the store gets the fallback text.
func Write(err error, fallback string) *AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := http.StatusBadGateway
		switch pgErr.Code {
		case "23505":
			code = http.StatusConflict
		case "23503", "23502", "23514", "22P02", "22007", "22008":
			code = http.StatusUnprocessableEntity
		}
		return New(code, pgErr.Message, err)
	}
	return New(http.StatusBadGateway, fallback, err)
}
