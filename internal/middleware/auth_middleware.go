package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz/pkg/auth"
)

// ClaimsKey: ключ контекста Gin с разрешениями проверенного токена
const ClaimsKey = "permissionClaims"

// PermissionMiddleware проверяет bearer-токен и наличие разрешения.
// Без верификатора проверка выключена и все запросы пропускаются.
type PermissionMiddleware struct {
	verifier *auth.PermissionVerifier
}

// NewPermissionMiddleware создает middleware. verifier может быть nil.
func NewPermissionMiddleware(verifier *auth.PermissionVerifier) *PermissionMiddleware {
	return &PermissionMiddleware{verifier: verifier}
}

// Enabled сообщает, включена ли проверка разрешений
func (m *PermissionMiddleware) Enabled() bool {
	return m.verifier != nil
}

// RequirePermission пропускает запрос, только если у токена есть permission
func (m *PermissionMiddleware) RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.Authorize(c, permission); err != nil {
			_ = c.Error(err)
			helper.AbortWithStatus(c, helper.StatusFromError(err))
			return
		}
		c.Next()
	}
}

// Authorize проверяет разрешение внутри обработчика, когда маршрут
// защищен только в одной из своих веток.
// Возвращает ошибку, оборачивающую ErrUnauthorized или ErrForbidden.
func (m *PermissionMiddleware) Authorize(c *gin.Context, permission string) error {
	if m.verifier == nil {
		return nil
	}

	token, err := bearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return err
	}

	claims, err := m.verifier.Parse(token)
	if err != nil {
		return err
	}
	if !claims.Has(permission) {
		return fmt.Errorf("%w: permission %q not granted", apperrors.ErrForbidden, permission)
	}

	c.Set(ClaimsKey, claims)
	return nil
}

// bearerToken извлекает токен из заголовка вида "Bearer {token}"
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("%w: authorization header is expected", apperrors.ErrUnauthorized)
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", fmt.Errorf("%w: authorization header must be Bearer {token}", apperrors.ErrUnauthorized)
	}
	return parts[1], nil
}
