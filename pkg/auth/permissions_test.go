package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
)

func TestNewPermissionVerifier_RequiresSecret(t *testing.T) {
	_, err := NewPermissionVerifier("", "", "")
	assert.Error(t, err)
}

func TestPermissionVerifier_IssueAndParse(t *testing.T) {
	v, err := NewPermissionVerifier("s3cret", "trivia", "trivia-admin")
	require.NoError(t, err)

	token, err := v.Issue("admin", []string{PermissionDeleteQuestions}, time.Hour)
	require.NoError(t, err)

	claims, err := v.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.True(t, claims.Has(PermissionDeleteQuestions))
	assert.False(t, claims.Has(PermissionPostQuestions))
}

func TestPermissionVerifier_Rejects(t *testing.T) {
	v, err := NewPermissionVerifier("s3cret", "trivia", "trivia-admin")
	require.NoError(t, err)

	other, err := NewPermissionVerifier("another", "trivia", "trivia-admin")
	require.NoError(t, err)
	foreign, err := other.Issue("admin", nil, time.Hour)
	require.NoError(t, err)

	expired, err := v.Issue("admin", nil, -time.Minute)
	require.NoError(t, err)

	wrongAudience, err := NewPermissionVerifier("s3cret", "trivia", "someone-else")
	require.NoError(t, err)
	otherAud, err := wrongAudience.Issue("admin", nil, time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &PermissionClaims{})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{"мусор вместо токена", "not-a-token"},
		{"чужая подпись", foreign},
		{"истекший токен", expired},
		{"другая аудитория", otherAud},
		{"алгоритм none", unsigned},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := v.Parse(tc.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}
}
