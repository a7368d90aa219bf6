package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
)

// apiError builds an SDK error the way the transport would, with the
// request/response its Error() method formats.
func apiError(status int) *openai.Error {
	return &openai.Error{
		StatusCode: status,
		Request:    httptest.NewRequest(http.MethodPost, "/v1/chat/completions", nil),
		Response:   &http.Response{StatusCode: status},
	}
}

func TestClassifyAPIErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantCode   Code
		wantStatus int
	}{
		{"rate limit", http.StatusTooManyRequests, CodeRateLimit, http.StatusTooManyRequests},
		{"unauthorized", http.StatusUnauthorized, CodeInvalidKey, http.StatusInternalServerError},
		{"forbidden", http.StatusForbidden, CodeInvalidKey, http.StatusInternalServerError},
		{"server error", http.StatusInternalServerError, CodeOpenAI, http.StatusBadGateway},
		{"bad request upstream", http.StatusBadRequest, CodeOpenAI, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("completion failed: %w", apiError(tt.statusCode))

			classified := Classify(err)
			assert.Equal(t, tt.wantCode, classified.Code)
			assert.Equal(t, tt.wantStatus, classified.Status)
		})
	}
}

func TestClassifyTimeout(t *testing.T) {
	classified := Classify(fmt.Errorf("completion failed: %w", context.DeadlineExceeded))
	assert.Equal(t, CodeTimeout, classified.Code)
	assert.Equal(t, http.StatusGatewayTimeout, classified.Status)
}

func TestClassifyUnknownError(t *testing.T) {
	classified := Classify(errors.New("something odd"))
	assert.Equal(t, CodeInternal, classified.Code)
	assert.Equal(t, http.StatusInternalServerError, classified.Status)
}

func TestClassifyPassesThroughClassified(t *testing.T) {
	parseErr := Parse(errors.New("unexpected end of JSON input"))
	assert.Same(t, parseErr, Classify(parseErr))
	assert.Equal(t, CodeParse, parseErr.Code)
	assert.Equal(t, http.StatusBadGateway, parseErr.Status)
}

func TestValidationError(t *testing.T) {
	details := []map[string]string{{"field": "name", "message": "Product name is required"}}

	err := Validation(details)
	assert.Equal(t, CodeValidation, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Validation failed", err.Message)
	assert.Equal(t, details, err.Details)
}
