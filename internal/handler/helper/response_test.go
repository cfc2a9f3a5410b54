package helper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
)

func TestNewErrorResponse(t *testing.T) {
	testCases := []struct {
		status  int
		message string
	}{
		{http.StatusBadRequest, "Bad request"},
		{http.StatusUnauthorized, "Unauthorized"},
		{http.StatusForbidden, "Forbidden"},
		{http.StatusNotFound, "Not found"},
		{http.StatusMethodNotAllowed, "Method not allowed"},
		{http.StatusUnprocessableEntity, "Unprocessable"},
		{http.StatusTooManyRequests, "Too many requests"},
		{http.StatusInternalServerError, "Server error"},
		{http.StatusTeapot, "I'm a teapot"},
	}

	for _, tc := range testCases {
		resp := NewErrorResponse(tc.status)
		assert.False(t, resp.Success)
		assert.Equal(t, tc.status, resp.Error)
		assert.Equal(t, tc.message, resp.Message)
	}
}

func TestStatusFromError(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{apperrors.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("wrap: %w", apperrors.ErrValidation), http.StatusUnprocessableEntity},
		{apperrors.ErrBadRequest, http.StatusBadRequest},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{apperrors.ErrForbidden, http.StatusForbidden},
		{apperrors.ErrConflict, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.status, StatusFromError(tc.err), tc.err.Error())
	}
}
