package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (нет токена, неверный токен).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у токена нет нужного разрешения.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrBadRequest используется, когда запрос не удалось разобрать (нет тела, нет обязательного поля).
	ErrBadRequest = errors.New("bad request")

	// ErrConflict используется для конфликтов состояния.
	ErrConflict = errors.New("resource state conflict")
)
