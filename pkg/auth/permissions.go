package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
)

// Разрешения, которые проверяет API
const (
	PermissionPostQuestions   = "post:questions"
	PermissionDeleteQuestions = "delete:questions"
	PermissionExportQuestions = "get:questions-export"
)

// PermissionClaims содержит список разрешений владельца токена
type PermissionClaims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Has проверяет наличие разрешения
func (c *PermissionClaims) Has(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// PermissionVerifier проверяет и выпускает HS256 токены с разрешениями
type PermissionVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewPermissionVerifier создает верификатор. issuer и audience проверяются, только если заданы.
func NewPermissionVerifier(secret, issuer, audience string) (*PermissionVerifier, error) {
	if secret == "" {
		return nil, errors.New("permission verifier requires a non-empty secret")
	}
	return &PermissionVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}, nil
}

// Parse проверяет подпись и срок действия токена.
// Любая ошибка оборачивает apperrors.ErrUnauthorized.
func (v *PermissionVerifier) Parse(tokenString string) (*PermissionClaims, error) {
	claims := &PermissionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, fmt.Errorf("%w: token is malformed", apperrors.ErrUnauthorized)
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				return nil, fmt.Errorf("%w: token is expired", apperrors.ErrUnauthorized)
			case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				return nil, fmt.Errorf("%w: token signature is invalid", apperrors.ErrUnauthorized)
			}
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", apperrors.ErrUnauthorized)
	}
	if v.audience != "" && !claims.VerifyAudience(v.audience, true) {
		return nil, fmt.Errorf("%w: unexpected audience", apperrors.ErrUnauthorized)
	}
	return claims, nil
}

// Issue выпускает токен с разрешениями. Используется для служебных токенов и тестов.
func (v *PermissionVerifier) Issue(subject string, permissions []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &PermissionClaims{
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if v.audience != "" {
		claims.Audience = jwt.ClaimStrings{v.audience}
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign permission token: %w", err)
	}
	return token, nil
}
