package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorconsulting/diagnosis-engine/internal/diagnosis"
)

func TestToAppError_DiagnosisErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		category   ErrorCategory
		httpStatus int
	}{
		{
			name:       "unknown answer is unprocessable",
			err:        &diagnosis.UnknownAnswerError{Question: "q3", Answer: "Maybe"},
			category:   CategoryValidation,
			httpStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "incomplete submission is unprocessable",
			err:        &diagnosis.IncompleteSubmissionError{Question: "q7"},
			category:   CategoryValidation,
			httpStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown theme is not found",
			err:        &diagnosis.UnknownThemeError{ID: "astrology"},
			category:   CategoryNotFound,
			httpStatus: http.StatusNotFound,
		},
		{
			name:       "unmapped category is a configuration error",
			err:        &diagnosis.UnmappedCategoryError{Theme: "factory", Category: "Ghost"},
			category:   CategoryConfiguration,
			httpStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ToAppError(tt.err)

			require.NotNil(t, appErr)
			assert.Equal(t, tt.category, appErr.Category)
			assert.Equal(t, tt.httpStatus, appErr.HTTPStatus)
		})
	}
}

func TestToAppError_WrappedDiagnosisError(t *testing.T) {
	wrapped := fmt.Errorf("scoring submission: %w",
		&diagnosis.UnknownAnswerError{Question: "q1", Answer: "Nope"})

	appErr := ToAppError(wrapped)

	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
}

func TestToAppError_PassesThroughAppError(t *testing.T) {
	original := NewNotFoundError("theme not found", nil)

	appErr := ToAppError(original)

	assert.Same(t, original, appErr)
}

func TestToAppError_NetworkAndTimeout(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category ErrorCategory
	}{
		{"connection refused", errors.New("dial tcp: connection refused"), CategoryNetwork},
		{"timeout string", errors.New("i/o timeout"), CategoryTimeout},
		{"context deadline", context.DeadlineExceeded, CategoryTimeout},
		{"context canceled", context.Canceled, CategoryTimeout},
		{"anything else", errors.New("boom"), CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ToAppError(tt.err)

			assert.Equal(t, tt.category, appErr.Category)
		})
	}
}

func TestToAppError_Nil(t *testing.T) {
	assert.Nil(t, ToAppError(nil))
}

func TestAppError_ErrorString(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "validation",
			err:      NewValidationError("company is required"),
			expected: "[VALIDATION_ERROR] company is required",
		},
		{
			name:     "not found",
			err:      NewNotFoundError("theme not found", nil),
			expected: "[NOT_FOUND] theme not found",
		},
		{
			name:     "unauthorized",
			err:      NewUnauthorizedError("admin token required"),
			expected: "[UNAUTHORIZED] admin token required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewSubmissionError(t *testing.T) {
	cause := &diagnosis.IncompleteSubmissionError{Question: "q4"}

	appErr := NewSubmissionError(cause.Error(), cause)

	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
	assert.Equal(t, CategoryValidation, appErr.Category)
}

func TestNewRateLimitError(t *testing.T) {
	appErr := NewRateLimitError("1s")

	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPStatus)
	assert.Equal(t, CategoryRateLimit, appErr.Category)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"network errors retry", NewNetworkError("down", nil), true},
		{"timeouts retry", NewTimeoutError("slow", nil), true},
		{"validation does not", NewValidationError("bad"), false},
		{"not found does not", NewNotFoundError("missing", nil), false},
		{"plain errors do not", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryableError(tt.err))
		})
	}
}
