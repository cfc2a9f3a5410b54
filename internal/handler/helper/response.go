package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
)

// ErrorResponse: единый формат ответа об ошибке
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusConflict:            "Conflict",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusTooManyRequests:     "Too many requests",
	http.StatusInternalServerError: "Server error",
	http.StatusServiceUnavailable:  "Service unavailable",
}

// NewErrorResponse возвращает тело ответа для HTTP-статуса
func NewErrorResponse(status int) ErrorResponse {
	message, ok := statusMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	return ErrorResponse{Success: false, Error: status, Message: message}
}

// AbortWithStatus прерывает цепочку обработчиков и отвечает ошибкой
func AbortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status))
}

// StatusFromError сопоставляет ошибку сервиса с HTTP-статусом
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
