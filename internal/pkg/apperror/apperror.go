package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies failures so the HTTP boundary can map them to a status
// code without inspecting error strings.
type Kind int

const (
	KindStoreError Kind = iota
	KindInvalidInput
	KindUnauthorized
	KindNotFound
	KindUpstreamUnavailable
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidInput(message string) error {
	return &AppError{Kind: KindInvalidInput, Message: message}
}

func Unauthorized(message string) error {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) error {
	return &AppError{Kind: KindNotFound, Message: message}
}

// UpstreamUnavailable wraps a provider failure. The message is user-safe;
// the underlying error stays server-side for logging only.
func UpstreamUnavailable(message string, err error) error {
	return &AppError{Kind: KindUpstreamUnavailable, Message: message, Err: err}
}

func Store(err error) error {
	return &AppError{Kind: KindStoreError, Message: "Server error", Err: err}
}

// KindOf extracts the Kind from an error chain, defaulting to StoreError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStoreError
}

// StatusCode maps an error to the HTTP status the envelope carries.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindInvalidInput:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
