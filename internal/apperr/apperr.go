// Package apperr defines the closed error taxonomy every failure path of
// the generation pipeline maps into, and the classification of upstream
// OpenAI failures into that taxonomy.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/openai/openai-go/v3"
)

// Code is a stable machine-readable error code carried on the wire.
type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeOpenAI     Code = "OPENAI_ERROR"
	CodeRateLimit  Code = "OPENAI_RATE_LIMIT"
	CodeInvalidKey Code = "OPENAI_INVALID_KEY"
	CodeTimeout    Code = "OPENAI_TIMEOUT"
	CodeParse      Code = "PARSE_ERROR"
	CodeInternal   Code = "INTERNAL_ERROR"
)

// Error is the typed failure that crosses the handler boundary. Details
// is included in the JSON response when non-nil (validation carries the
// field/message list there).
type Error struct {
	Code    Code
	Status  int
	Message string
	Details any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds an Error without an underlying cause.
func New(code Code, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Validation builds the 400 response for a failed request validation.
func Validation(details any) *Error {
	return &Error{
		Code:    CodeValidation,
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Details: details,
	}
}

// Parse wraps a response-parse failure. Unlike research extraction this
// is a hard error: the completion reply was unusable.
func Parse(cause error) *Error {
	return &Error{
		Code:    CodeParse,
		Status:  http.StatusBadGateway,
		Message: "Failed to parse the generated response",
		cause:   cause,
	}
}

// Classify maps an error from the completion call into the taxonomy.
// Already-classified errors pass through unchanged; anything
// unrecognized becomes an internal error so a raw failure never reaches
// the caller.
func Classify(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return &Error{
				Code:    CodeRateLimit,
				Status:  http.StatusTooManyRequests,
				Message: "OpenAI rate limit exceeded, please try again shortly",
				cause:   err,
			}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{
				Code:    CodeInvalidKey,
				Status:  http.StatusInternalServerError,
				Message: "OpenAI API key is not configured correctly",
				cause:   err,
			}
		default:
			return &Error{
				Code:    CodeOpenAI,
				Status:  http.StatusBadGateway,
				Message: "OpenAI request failed",
				cause:   err,
			}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &Error{
			Code:    CodeTimeout,
			Status:  http.StatusGatewayTimeout,
			Message: "OpenAI request timed out",
			cause:   err,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Status:  http.StatusInternalServerError,
		Message: "An unexpected error occurred",
		cause:   err,
	}
}
