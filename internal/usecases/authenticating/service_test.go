package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims *domain.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestService_ValidateToken(t *testing.T) {
	s := NewService(&config.Config{Auth: config.Auth{Secret: testSecret}})

	valid := &domain.Claims{
		UserID:      7,
		UserRoleID:  domain.RoleOperator,
		UserClients: []int64{1, 3},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("token válido", func(t *testing.T) {
		claims, err := s.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), valid))
		require.NoError(t, err)

		assert.Equal(t, 7, claims.UserID)
		assert.True(t, claims.CanAccessClient(3))
		assert.False(t, claims.CanAccessClient(2))
	})

	t.Run("token expirado", func(t *testing.T) {
		expired := *valid
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

		_, err := s.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), &expired))
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		_, err := s.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte("outro"), valid))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		_, err := s.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
